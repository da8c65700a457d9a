// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/xform/internal/core/domain"

// Document is the host document the resolver reads from and writes back to.
//
//go:generate mockgen -source=document.go -destination=mocks/mock_document.go -package=mocks
type Document interface {
	// PropertyExpression returns the expression stored under key on the entity.
	// It returns domain.ErrPropertyNotFound if the property is absent.
	PropertyExpression(id domain.EntityID, key string) (domain.Expression, error)

	// SetProperty stores value under key on the entity.
	SetProperty(id domain.EntityID, key string, value domain.Expression) error

	// RemoveProperty deletes key from the entity. Removing an absent property
	// is not an error.
	RemoveProperty(id domain.EntityID, key string) error

	// ResolveNamedPropRef maps a symbolic reference, interpreted relative to owner,
	// to a concrete property.
	ResolveNamedPropRef(owner domain.EntityID, ref domain.NamedPropRef) (domain.PropRef, error)
}

// Directory gives name-based access to the entities of a document.
type Directory interface {
	// Lookup returns the entity with the given name.
	Lookup(name string) (domain.EntityID, error)
	// EntityName returns the name of the entity.
	EntityName(id domain.EntityID) (string, error)
	// Entities returns every entity sorted by name.
	Entities() []domain.Entity
}

// SceneStore is a document that can be synchronised with a parsed scene and
// reports the properties that changed since the last drain.
type SceneStore interface {
	Document
	Directory

	// Apply synchronises the document with scene.
	Apply(scene *domain.Scene) error
	// TakeChanges drains the properties changed since the previous call.
	TakeChanges() []domain.PropRef
}
