// Package domain contains the core domain models for transform resolution:
// entities, property references, expression trees and matrices.
package domain

import "strconv"

// Property keys with first-class meaning.
const (
	// KeyTransform holds an entity's transform expression.
	KeyTransform = "transform"
	// KeyTransformed holds the resolved matrix written back for other collaborators.
	KeyTransformed = "transformed"
)

// EntityID is an opaque, stable identifier of an entity in the host document.
// The zero value never identifies an entity.
type EntityID uint64

// NoEntity is the zero EntityID.
const NoEntity EntityID = 0

// String returns the decimal form of the identifier.
func (id EntityID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// PropRef identifies a concrete property of a concrete entity.
type PropRef struct {
	EntityID EntityID
	Key      string
}

// String returns "<id>.<key>".
func (p PropRef) String() string {
	return p.EntityID.String() + "." + p.Key
}

// EntitySelector names an entity relative to the owner of an expression.
type EntitySelector string

// Selectors resolved relative to the owning entity.
const (
	SelectThis   EntitySelector = "this"
	SelectParent EntitySelector = "parent"
)

// IsRelative reports whether the selector is resolved relative to the owner.
func (s EntitySelector) IsRelative() bool {
	return s == SelectThis || s == SelectParent
}

// NamedPropRef is a symbolic reference to another entity's property.
type NamedPropRef struct {
	Entity EntitySelector
	Key    string
}

// String returns "<selector>.<key>".
func (n NamedPropRef) String() string {
	return string(n.Entity) + "." + n.Key
}

// Entity describes an entity as known to the document.
type Entity struct {
	ID     EntityID
	Name   string
	Parent EntityID
}
