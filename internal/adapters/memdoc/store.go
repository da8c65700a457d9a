// Package memdoc implements the host document on top of an in-memory
// hashicorp/go-memdb database.
package memdoc

import (
	"cmp"
	"errors"
	"slices"
	"sync"

	memdb "github.com/hashicorp/go-memdb"
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	tableEntities   = "entities"
	tableProperties = "properties"

	indexID     = "id"
	indexName   = "name"
	indexEntity = "entity"
)

// entityRecord is the row stored in the entities table.
type entityRecord struct {
	ID     domain.EntityID
	Name   string
	Parent domain.EntityID
}

// propertyRecord is the row stored in the properties table.
type propertyRecord struct {
	EntityID    domain.EntityID
	Key         string
	Value       domain.Expression
	Fingerprint uint64
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableEntities: {
				Name: tableEntities,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "ID"},
					},
					indexName: {
						Name:         indexName,
						Unique:       true,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "Name"},
					},
				},
			},
			tableProperties: {
				Name: tableProperties,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:   indexID,
						Unique: true,
						Indexer: &memdb.CompoundIndex{
							Indexes: []memdb.Indexer{
								&memdb.UintFieldIndex{Field: "EntityID"},
								&memdb.StringFieldIndex{Field: "Key"},
							},
						},
					},
					indexEntity: {
						Name:    indexEntity,
						Indexer: &memdb.UintFieldIndex{Field: "EntityID"},
					},
				},
			},
		},
	}
}

// Store is an in-memory document. Every write is tracked and the affected
// properties are queued until TakeChanges drains them.
type Store struct {
	db *memdb.MemDB

	mu      sync.Mutex
	nextID  domain.EntityID
	pending []domain.PropRef
}

var _ ports.SceneStore = (*Store)(nil)

// NewStore creates an empty document.
func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create document database")
	}
	return &Store{db: db}, nil
}

// CreateEntity adds a named entity under parent, which may be domain.NoEntity.
func (s *Store) CreateEntity(name string, parent domain.EntityID) (domain.EntityID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn := s.db.Txn(true)
	defer txn.Abort()

	id, err := s.insertEntity(txn, name, parent)
	if err != nil {
		return domain.NoEntity, err
	}
	txn.Commit()
	return id, nil
}

func (s *Store) insertEntity(txn *memdb.Txn, name string, parent domain.EntityID) (domain.EntityID, error) {
	if name != "" {
		existing, err := txn.First(tableEntities, indexName, name)
		if err != nil {
			return domain.NoEntity, errors.Join(domain.ErrStoreWriteFailed, err)
		}
		if existing != nil {
			return domain.NoEntity, zerr.With(zerr.Wrap(domain.ErrDuplicateEntityName, "failed to create entity"), "name", name)
		}
	}
	if parent != domain.NoEntity {
		if _, err := getEntity(txn, parent); err != nil {
			return domain.NoEntity, err
		}
	}

	s.nextID++
	rec := &entityRecord{ID: s.nextID, Name: name, Parent: parent}
	if err := txn.Insert(tableEntities, rec); err != nil {
		return domain.NoEntity, errors.Join(domain.ErrStoreWriteFailed, err)
	}
	return rec.ID, nil
}

// Lookup returns the entity with the given name.
func (s *Store) Lookup(name string) (domain.EntityID, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableEntities, indexName, name)
	if err != nil || raw == nil {
		return domain.NoEntity, zerr.With(zerr.Wrap(domain.ErrEntityNotFound, "failed to look up entity"), "name", name)
	}
	return raw.(*entityRecord).ID, nil
}

// EntityName returns the name of the entity.
func (s *Store) EntityName(id domain.EntityID) (string, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	rec, err := getEntity(txn, id)
	if err != nil {
		return "", err
	}
	return rec.Name, nil
}

// Entities returns every entity sorted by name.
func (s *Store) Entities() []domain.Entity {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableEntities, indexID)
	if err != nil {
		return nil
	}
	var out []domain.Entity
	for raw := it.Next(); raw != nil; raw = it.Next() {
		rec := raw.(*entityRecord)
		out = append(out, domain.Entity{ID: rec.ID, Name: rec.Name, Parent: rec.Parent})
	}
	slices.SortFunc(out, func(a, b domain.Entity) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// PropertyExpression returns the expression stored under key on the entity.
func (s *Store) PropertyExpression(id domain.EntityID, key string) (domain.Expression, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableProperties, indexID, id, key)
	if err != nil || raw == nil {
		return nil, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrPropertyNotFound, "failed to read property"), "entity", id.String()),
			"key", key,
		)
	}
	return raw.(*propertyRecord).Value, nil
}

// SetProperty stores value under key on the entity. Writing an expression
// equal to the stored one is a no-op and does not produce a change.
func (s *Store) SetProperty(id domain.EntityID, key string, value domain.Expression) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn := s.db.Txn(true)
	defer txn.Abort()
	txn.TrackChanges()

	if _, err := getEntity(txn, id); err != nil {
		return err
	}
	if err := putProperty(txn, id, key, value); err != nil {
		return err
	}
	txn.Commit()
	s.record(txn.Changes())
	return nil
}

// RemoveProperty deletes the property if present.
func (s *Store) RemoveProperty(id domain.EntityID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn := s.db.Txn(true)
	defer txn.Abort()
	txn.TrackChanges()

	raw, err := txn.First(tableProperties, indexID, id, key)
	if err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, err)
	}
	if raw == nil {
		return nil
	}
	if err := txn.Delete(tableProperties, raw); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, err)
	}
	txn.Commit()
	s.record(txn.Changes())
	return nil
}

// ResolveNamedPropRef maps a symbolic reference to a concrete property.
// "this" names the owner, "parent" the owner's parent and anything else an
// entity by name.
func (s *Store) ResolveNamedPropRef(owner domain.EntityID, ref domain.NamedPropRef) (domain.PropRef, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	fail := func(msg string) (domain.PropRef, error) {
		return domain.PropRef{}, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrReferenceResolution, msg), "entity", owner.String()),
			"ref", ref.String(),
		)
	}

	switch ref.Entity {
	case domain.SelectThis:
		if _, err := getEntity(txn, owner); err != nil {
			return fail("owner does not exist")
		}
		return domain.PropRef{EntityID: owner, Key: ref.Key}, nil
	case domain.SelectParent:
		rec, err := getEntity(txn, owner)
		if err != nil {
			return fail("owner does not exist")
		}
		if rec.Parent == domain.NoEntity {
			return fail("entity has no parent")
		}
		return domain.PropRef{EntityID: rec.Parent, Key: ref.Key}, nil
	}

	raw, err := txn.First(tableEntities, indexName, string(ref.Entity))
	if err != nil || raw == nil {
		return fail("no entity with that name")
	}
	return domain.PropRef{EntityID: raw.(*entityRecord).ID, Key: ref.Key}, nil
}

// TakeChanges drains the properties changed since the previous call, in the
// order they were first changed.
func (s *Store) TakeChanges() []domain.PropRef {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}
	seen := make(map[domain.PropRef]struct{}, len(s.pending))
	out := make([]domain.PropRef, 0, len(s.pending))
	for _, ref := range s.pending {
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	s.pending = nil
	return out
}

// record queues the properties touched by a committed transaction.
// Callers hold s.mu.
func (s *Store) record(changes memdb.Changes) {
	for i := range changes {
		c := &changes[i]
		if c.Table != tableProperties {
			continue
		}
		obj := c.After
		if c.Deleted() {
			obj = c.Before
		}
		rec := obj.(*propertyRecord)
		s.pending = append(s.pending, domain.PropRef{EntityID: rec.EntityID, Key: rec.Key})
	}
}

func getEntity(txn *memdb.Txn, id domain.EntityID) (*entityRecord, error) {
	raw, err := txn.First(tableEntities, indexID, id)
	if err != nil || raw == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrEntityNotFound, "failed to read entity"), "entity", id.String())
	}
	return raw.(*entityRecord), nil
}

func putProperty(txn *memdb.Txn, id domain.EntityID, key string, value domain.Expression) error {
	if value == nil {
		value = domain.Nil{}
	}
	fp := domain.Fingerprint(value)

	raw, err := txn.First(tableProperties, indexID, id, key)
	if err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, err)
	}
	if raw != nil && raw.(*propertyRecord).Fingerprint == fp {
		return nil
	}

	rec := &propertyRecord{EntityID: id, Key: key, Value: domain.Clone(value), Fingerprint: fp}
	if err := txn.Insert(tableProperties, rec); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, err)
	}
	return nil
}
