package memdoc

import (
	"errors"
	"maps"
	"slices"

	memdb "github.com/hashicorp/go-memdb"
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/zerr"
)

// Apply synchronises the document with scene in a single transaction.
//
// Entities are matched by name. Missing entities are created, parents are
// updated, changed properties are written and properties or entities that no
// longer appear in the scene are deleted. The derived transformed property is
// left alone. An existing entity whose parent changed is reported as a
// transform change so parent-relative references are re-evaluated.
func (s *Store) Apply(scene *domain.Scene) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn := s.db.Txn(true)
	defer txn.Abort()
	txn.TrackChanges()

	ids := make(map[string]domain.EntityID, len(scene.Entities))
	created := make(map[domain.EntityID]struct{})
	var reparented []domain.PropRef

	for _, spec := range scene.Entities {
		raw, err := txn.First(tableEntities, indexName, spec.Name)
		if err != nil {
			return errors.Join(domain.ErrStoreWriteFailed, err)
		}
		if raw != nil {
			ids[spec.Name] = raw.(*entityRecord).ID
			continue
		}
		id, err := s.insertEntity(txn, spec.Name, domain.NoEntity)
		if err != nil {
			return err
		}
		ids[spec.Name] = id
		created[id] = struct{}{}
	}

	for _, spec := range scene.Entities {
		id := ids[spec.Name]
		parent := domain.NoEntity
		if spec.Parent != "" {
			p, ok := ids[spec.Parent]
			if !ok {
				return zerr.With(zerr.With(zerr.Wrap(domain.ErrEntityNotFound, "unknown parent"), "name", spec.Parent), "child", spec.Name)
			}
			parent = p
		}

		rec, err := getEntity(txn, id)
		if err != nil {
			return err
		}
		if rec.Parent != parent {
			if err := txn.Insert(tableEntities, &entityRecord{ID: id, Name: rec.Name, Parent: parent}); err != nil {
				return errors.Join(domain.ErrStoreWriteFailed, err)
			}
			_, isNew := created[id]
			_, hasTransform := spec.Properties[domain.KeyTransform]
			if !isNew && hasTransform {
				reparented = append(reparented, domain.PropRef{EntityID: id, Key: domain.KeyTransform})
			}
		}

		if err := syncProperties(txn, id, spec.Properties); err != nil {
			return err
		}
	}

	if err := deleteMissing(txn, ids); err != nil {
		return err
	}

	txn.Commit()
	s.record(txn.Changes())
	s.pending = append(s.pending, reparented...)
	return nil
}

func syncProperties(txn *memdb.Txn, id domain.EntityID, props map[string]domain.Expression) error {
	for _, key := range slices.Sorted(maps.Keys(props)) {
		if err := putProperty(txn, id, key, props[key]); err != nil {
			return zerr.With(err, "key", key)
		}
	}

	it, err := txn.Get(tableProperties, indexEntity, id)
	if err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, err)
	}
	var stale []*propertyRecord
	for raw := it.Next(); raw != nil; raw = it.Next() {
		rec := raw.(*propertyRecord)
		if rec.Key == domain.KeyTransformed {
			continue
		}
		if _, ok := props[rec.Key]; !ok {
			stale = append(stale, rec)
		}
	}
	for _, rec := range stale {
		if err := txn.Delete(tableProperties, rec); err != nil {
			return errors.Join(domain.ErrStoreWriteFailed, err)
		}
	}
	return nil
}

func deleteMissing(txn *memdb.Txn, keep map[string]domain.EntityID) error {
	it, err := txn.Get(tableEntities, indexID)
	if err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, err)
	}
	var gone []*entityRecord
	for raw := it.Next(); raw != nil; raw = it.Next() {
		rec := raw.(*entityRecord)
		if _, ok := keep[rec.Name]; !ok {
			gone = append(gone, rec)
		}
	}

	for _, rec := range gone {
		if _, err := txn.DeleteAll(tableProperties, indexEntity, rec.ID); err != nil {
			return errors.Join(domain.ErrStoreWriteFailed, err)
		}
		if err := txn.Delete(tableEntities, rec); err != nil {
			return errors.Join(domain.ErrStoreWriteFailed, err)
		}
	}
	return nil
}
