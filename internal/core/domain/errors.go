package domain

import "go.trai.ch/zerr"

var (
	// ErrPropertyNotFound is returned when a property is missing or unreadable on an entity.
	ErrPropertyNotFound = zerr.New("property not found")

	// ErrReferenceResolution is returned when a dependency reference cannot be resolved to a concrete property.
	ErrReferenceResolution = zerr.New("failed to resolve dependency reference")

	// ErrTypeCoercion is returned when a resolved value cannot be coerced to a matrix.
	ErrTypeCoercion = zerr.New("value cannot be coerced to a matrix")

	// ErrWriteBack is returned when writing the derived transformed property fails.
	ErrWriteBack = zerr.New("failed to write back transformed property")

	// ErrCycleDetected is returned when an expression depends on itself through references.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrEntityNotFound is returned when a requested entity does not exist in the document.
	ErrEntityNotFound = zerr.New("entity not found")

	// ErrMissingEntityName is returned when a scene entity has no name.
	ErrMissingEntityName = zerr.New("missing entity name")

	// ErrInvalidEntityName is returned when an entity name contains invalid characters or is reserved.
	ErrInvalidEntityName = zerr.New("entity name can only contain alphanumeric characters, hyphens and underscores")

	// ErrDuplicateEntityName is returned when two entities in a scene share a name.
	ErrDuplicateEntityName = zerr.New("duplicate entity name")

	// ErrInvalidExpression is returned when a scene expression cannot be decoded.
	ErrInvalidExpression = zerr.New("invalid expression")

	// ErrDocumentReadFailed is returned when the scene file cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read scene file")

	// ErrDocumentParseFailed is returned when the scene file cannot be parsed.
	ErrDocumentParseFailed = zerr.New("failed to parse scene file")

	// ErrStoreWriteFailed is returned when the document store rejects a write.
	ErrStoreWriteFailed = zerr.New("failed to write to document store")

	// ErrDispatchLimit is returned when change dispatch does not settle.
	ErrDispatchLimit = zerr.New("change dispatch did not settle")

	// ErrResolveFailed is returned when one or more requested transforms could not be resolved.
	ErrResolveFailed = zerr.New("failed to resolve transforms")
)
