package ports

import "go.trai.ch/xform/internal/core/domain"

// Coercer resolves every dependency reference in an expression and coerces the
// result to a matrix.
//
//go:generate mockgen -source=coercer.go -destination=mocks/mock_coercer.go -package=mocks
type Coercer interface {
	// ResolveMatrix evaluates expr, owned by owner, against doc.
	ResolveMatrix(doc Document, owner domain.EntityID, expr domain.Expression) (domain.Matrix, error)
}
