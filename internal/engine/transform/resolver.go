// Package transform resolves entity transform expressions into matrices and
// keeps the resolved matrices cached until the underlying property changes.
package transform

import (
	"errors"
	"slices"
	"strings"

	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/zerr"
)

// TagMul is the composition operator tag.
const TagMul = "mul"

// Resolver owns the per-entity matrix cache.
//
// A Resolver is not safe for concurrent use. The host serialises calls and
// grants exclusive access to the document for the duration of each call.
type Resolver struct {
	coercer ports.Coercer
	logger  ports.Logger
	metrics ports.ResolverMetrics
	lenient bool

	cache map[domain.EntityID]domain.Matrix

	// resolving marks entities whose resolution is in progress; stack keeps
	// the same entities in call order for cycle reporting.
	resolving map[domain.EntityID]struct{}
	stack     []domain.EntityID

	// dependents maps an entity to the entities whose transforms read it.
	dependents map[domain.EntityID]map[domain.EntityID]struct{}
	// dependencies is the reverse of dependents.
	dependencies map[domain.EntityID]map[domain.EntityID]struct{}

	// failed holds entities whose last resolution failed. They are retried
	// whenever a transform changes, since a missing target may have appeared.
	failed map[domain.EntityID]struct{}
}

// NewResolver creates a Resolver with an empty cache.
// A nil metrics sink disables metrics.
func NewResolver(coercer ports.Coercer, logger ports.Logger, metrics ports.ResolverMetrics) *Resolver {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Resolver{
		coercer:      coercer,
		logger:       logger,
		metrics:      metrics,
		cache:        make(map[domain.EntityID]domain.Matrix),
		resolving:    make(map[domain.EntityID]struct{}),
		dependents:   make(map[domain.EntityID]map[domain.EntityID]struct{}),
		dependencies: make(map[domain.EntityID]map[domain.EntityID]struct{}),
		failed:       make(map[domain.EntityID]struct{}),
	}
}

// WithLenient enables the identity fallback: a failed Resolve logs a warning
// and returns the identity matrix instead of an error. Nothing is cached for
// the failed entity and its previous transformed value is removed.
func (r *Resolver) WithLenient(lenient bool) *Resolver {
	r.lenient = lenient
	return r
}

// Cached returns the cached matrix for id, if any.
func (r *Resolver) Cached(id domain.EntityID) (domain.Matrix, bool) {
	m, ok := r.cache[id]
	return m, ok
}

// Resolve returns the matrix of the entity's transform property.
//
// On a cache miss the expression is evaluated, the result is written back to
// the document under the transformed key and then cached. Failed resolutions
// are never cached and leave no transformed value behind.
func (r *Resolver) Resolve(doc ports.Document, id domain.EntityID) (domain.Matrix, error) {
	m, err := r.resolve(doc, id)
	if err == nil {
		return m, nil
	}
	if err := r.settle(id, err); err != nil {
		return domain.Matrix{}, err
	}
	return domain.Identity(), nil
}

// settle applies the error policy to a failed resolution. It returns nil when
// the lenient fallback applies.
func (r *Resolver) settle(id domain.EntityID, err error) error {
	if !r.lenient {
		r.metrics.Failure()
		return err
	}
	r.metrics.Fallback()
	r.logger.Warn("falling back to identity transform for entity " + id.String() + ": " + err.Error())
	return nil
}

// Evaluate computes the matrix of expr owned by owner without touching the
// owner's cache entry. References followed here are not recorded as
// dependencies of owner.
func (r *Resolver) Evaluate(doc ports.Document, owner domain.EntityID, expr domain.Expression) (domain.Matrix, error) {
	return r.evaluate(doc, owner, expr, false)
}

func (r *Resolver) resolve(doc ports.Document, id domain.EntityID) (domain.Matrix, error) {
	if m, ok := r.cache[id]; ok {
		r.metrics.CacheHit()
		return m, nil
	}

	if _, busy := r.resolving[id]; busy {
		return domain.Matrix{}, zerr.With(
			zerr.Wrap(domain.ErrCycleDetected, "transform depends on itself"),
			"cycle", r.cyclePath(id),
		)
	}
	r.metrics.CacheMiss()

	r.resolving[id] = struct{}{}
	r.stack = append(r.stack, id)
	defer func() {
		delete(r.resolving, id)
		r.stack = r.stack[:len(r.stack)-1]
	}()

	expr, err := doc.PropertyExpression(id, domain.KeyTransform)
	if err != nil {
		if !errors.Is(err, domain.ErrPropertyNotFound) {
			err = errors.Join(domain.ErrPropertyNotFound, err)
		}
		// Without a transform there is nothing to retry or depend on.
		delete(r.failed, id)
		r.forgetDependencies(id)
		return domain.Matrix{}, withDropped(doc, id, zerr.With(err, "entity", id.String()))
	}

	// Edges are rediscovered on every evaluation.
	r.forgetDependencies(id)

	m, err := r.evaluate(doc, id, domain.Clone(expr), true)
	if err != nil {
		r.failed[id] = struct{}{}
		return domain.Matrix{}, withDropped(doc, id, err)
	}

	if err := doc.SetProperty(id, domain.KeyTransformed, domain.MatrixValue(m)); err != nil {
		r.failed[id] = struct{}{}
		return domain.Matrix{}, zerr.With(errors.Join(domain.ErrWriteBack, err), "entity", id.String())
	}

	delete(r.failed, id)
	r.cache[id] = m
	return m, nil
}

// withDropped removes the derived matrix of an entity that no longer
// resolves and returns err, joined with the removal failure if any.
func withDropped(doc ports.Document, id domain.EntityID, err error) error {
	if rmErr := doc.RemoveProperty(id, domain.KeyTransformed); rmErr != nil {
		return errors.Join(err, zerr.With(errors.Join(domain.ErrWriteBack, rmErr), "entity", id.String()))
	}
	return err
}

// evaluate computes expr for owner. With track set, followed references are
// recorded as dependencies of owner.
func (r *Resolver) evaluate(doc ports.Document, owner domain.EntityID, expr domain.Expression, track bool) (domain.Matrix, error) {
	r.metrics.Evaluation()

	switch e := expr.(type) {
	case domain.Typed:
		if e.Tag != TagMul {
			break
		}
		items, ok := e.Data.(domain.Array)
		if !ok {
			return domain.Matrix{}, zerr.With(
				zerr.Wrap(domain.ErrTypeCoercion, "mul expects a sequence of expressions"),
				"entity", owner.String(),
			)
		}
		acc := domain.Identity()
		for _, item := range items {
			m, err := r.evaluate(doc, owner, item, track)
			if err != nil {
				return domain.Matrix{}, err
			}
			acc = acc.Mul4(m)
		}
		return acc, nil

	case domain.Reference:
		if e.Ref.Key != domain.KeyTransform {
			break
		}
		target, err := doc.ResolveNamedPropRef(owner, e.Ref)
		if err != nil {
			if !errors.Is(err, domain.ErrReferenceResolution) {
				err = errors.Join(domain.ErrReferenceResolution, err)
			}
			return domain.Matrix{}, zerr.With(zerr.With(err, "entity", owner.String()), "ref", e.Ref.String())
		}
		if track {
			r.recordDependency(owner, target.EntityID)
		}
		return r.resolve(doc, target.EntityID)
	}

	return r.coercer.ResolveMatrix(doc, owner, expr)
}

// OnPropertyChanged drops the cache entries of every entity whose transform
// changed, together with every entity that depends on them, and then
// re-resolves them eagerly along with the entities that failed before.
// Failures are logged and do not stop the batch. An entity whose transform
// was removed is forgotten silently.
func (r *Resolver) OnPropertyChanged(doc ports.Document, refs []domain.PropRef) {
	var changed []domain.EntityID
	seen := make(map[domain.EntityID]struct{})
	for _, ref := range refs {
		if ref.Key != domain.KeyTransform {
			continue
		}
		if _, dup := seen[ref.EntityID]; dup {
			continue
		}
		seen[ref.EntityID] = struct{}{}
		changed = append(changed, ref.EntityID)
	}
	if len(changed) == 0 {
		return
	}

	affected := r.transitiveDependents(changed, seen)
	retries := r.retries(seen)

	dropped := 0
	for _, id := range slices.Concat(changed, affected) {
		if _, ok := r.cache[id]; ok {
			delete(r.cache, id)
			dropped++
		}
	}
	r.metrics.Invalidation(dropped)

	for _, id := range slices.Concat(changed, affected, retries) {
		_, err := r.resolve(doc, id)
		if err == nil || transformRemoved(doc, id, err) {
			continue
		}
		if err := r.settle(id, err); err != nil {
			r.logger.Error(zerr.Wrap(err, "failed to re-resolve transform of entity "+id.String()))
		}
	}
}

// retries returns the failed entities not in seen, sorted by id.
func (r *Resolver) retries(seen map[domain.EntityID]struct{}) []domain.EntityID {
	var out []domain.EntityID
	for id := range r.failed {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// transformRemoved reports whether err stems from id itself having no
// transform, as opposed to one of its references.
func transformRemoved(doc ports.Document, id domain.EntityID, err error) bool {
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		return false
	}
	_, err = doc.PropertyExpression(id, domain.KeyTransform)
	return errors.Is(err, domain.ErrPropertyNotFound)
}

// transitiveDependents returns the dependents of roots not already in seen,
// sorted by id.
func (r *Resolver) transitiveDependents(roots []domain.EntityID, seen map[domain.EntityID]struct{}) []domain.EntityID {
	var out []domain.EntityID
	queue := slices.Clone(roots)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for dep := range r.dependents[id] {
			if _, ok := seen[dep]; ok {
				continue
			}
			seen[dep] = struct{}{}
			out = append(out, dep)
			queue = append(queue, dep)
		}
	}
	slices.Sort(out)
	return out
}

func (r *Resolver) recordDependency(from, to domain.EntityID) {
	if r.dependents[to] == nil {
		r.dependents[to] = make(map[domain.EntityID]struct{})
	}
	r.dependents[to][from] = struct{}{}

	if r.dependencies[from] == nil {
		r.dependencies[from] = make(map[domain.EntityID]struct{})
	}
	r.dependencies[from][to] = struct{}{}
}

func (r *Resolver) forgetDependencies(id domain.EntityID) {
	for to := range r.dependencies[id] {
		delete(r.dependents[to], id)
		if len(r.dependents[to]) == 0 {
			delete(r.dependents, to)
		}
	}
	delete(r.dependencies, id)
}

func (r *Resolver) cyclePath(id domain.EntityID) string {
	start := slices.Index(r.stack, id)
	path := make([]string, 0, len(r.stack)-start+1)
	for _, e := range r.stack[start:] {
		path = append(path, e.String())
	}
	path = append(path, id.String())
	return strings.Join(path, " -> ")
}

type nopMetrics struct{}

func (nopMetrics) CacheHit()        {}
func (nopMetrics) CacheMiss()       {}
func (nopMetrics) Evaluation()      {}
func (nopMetrics) Invalidation(int) {}
func (nopMetrics) Failure()         {}
func (nopMetrics) Fallback()        {}
