// Package coerce implements the generic resolve-and-coerce path: dependency
// references are replaced by the values they point to, and the resulting
// concrete value is converted to a matrix.
package coerce

import (
	"errors"
	"strings"
	"time"

	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultScriptTimeout bounds the run time of a single script node.
const DefaultScriptTimeout = time.Second

// Coercer implements ports.Coercer.
type Coercer struct {
	scriptTimeout time.Duration
	cel           *celCache
}

var _ ports.Coercer = (*Coercer)(nil)

// New creates a Coercer.
func New() *Coercer {
	return &Coercer{
		scriptTimeout: DefaultScriptTimeout,
		cel:           newCELCache(),
	}
}

// WithScriptTimeout overrides the time limit of script nodes.
func (c *Coercer) WithScriptTimeout(d time.Duration) *Coercer {
	c.scriptTimeout = d
	return c
}

// ResolveMatrix resolves every dependency reference in expr relative to
// owner and coerces the result to a matrix.
func (c *Coercer) ResolveMatrix(doc ports.Document, owner domain.EntityID, expr domain.Expression) (domain.Matrix, error) {
	resolved, err := ResolveDependencies(doc, owner, expr)
	if err != nil {
		return domain.Matrix{}, err
	}
	m, err := c.ToMatrix(resolved)
	if err != nil {
		return domain.Matrix{}, zerr.With(err, "entity", owner.String())
	}
	return m, nil
}

// ResolveDependencies returns a copy of expr in which every dependency
// reference is replaced by the referenced property's value. Referenced values
// are resolved relative to the entity that owns them.
func ResolveDependencies(doc ports.Document, owner domain.EntityID, expr domain.Expression) (domain.Expression, error) {
	r := dependencyResolver{doc: doc, visiting: make(map[domain.PropRef]struct{})}
	return r.resolve(owner, expr)
}

type dependencyResolver struct {
	doc      ports.Document
	visiting map[domain.PropRef]struct{}
	path     []domain.PropRef
}

func (r *dependencyResolver) resolve(owner domain.EntityID, expr domain.Expression) (domain.Expression, error) {
	switch e := expr.(type) {
	case domain.Reference:
		return r.follow(owner, e.Ref)
	case domain.Array:
		out := make(domain.Array, len(e))
		for i, item := range e {
			v, err := r.resolve(owner, item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case domain.Object:
		out := make(domain.Object, len(e))
		for k, item := range e {
			v, err := r.resolve(owner, item)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case domain.Typed:
		data, err := r.resolve(owner, e.Data)
		if err != nil {
			return nil, err
		}
		return domain.Typed{Tag: e.Tag, Data: data}, nil
	case nil:
		return domain.Nil{}, nil
	default:
		return expr, nil
	}
}

func (r *dependencyResolver) follow(owner domain.EntityID, ref domain.NamedPropRef) (domain.Expression, error) {
	target, err := r.doc.ResolveNamedPropRef(owner, ref)
	if err != nil {
		if !errors.Is(err, domain.ErrReferenceResolution) {
			err = errors.Join(domain.ErrReferenceResolution, err)
		}
		return nil, zerr.With(zerr.With(err, "entity", owner.String()), "ref", ref.String())
	}

	if _, busy := r.visiting[target]; busy {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrCycleDetected, "reference depends on itself"),
			"cycle", r.cyclePath(target),
		)
	}

	value, err := r.doc.PropertyExpression(target.EntityID, target.Key)
	if err != nil {
		return nil, zerr.With(
			zerr.With(errors.Join(domain.ErrReferenceResolution, err), "entity", owner.String()),
			"ref", ref.String(),
		)
	}

	r.visiting[target] = struct{}{}
	r.path = append(r.path, target)
	defer func() {
		delete(r.visiting, target)
		r.path = r.path[:len(r.path)-1]
	}()

	return r.resolve(target.EntityID, value)
}

func (r *dependencyResolver) cyclePath(target domain.PropRef) string {
	parts := make([]string, 0, len(r.path)+1)
	started := false
	for _, p := range r.path {
		if p == target {
			started = true
		}
		if started {
			parts = append(parts, p.String())
		}
	}
	parts = append(parts, target.String())
	return strings.Join(parts, " -> ")
}
