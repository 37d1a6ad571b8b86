package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/fieldsync/internal/client/storage"
	"github.com/iudanet/fieldsync/internal/models"
)

const (
	keyOperationTemplates = "operations"
	keySparePartTemplates = "spare_parts"
)

// SaveOperationTemplates caches operation templates pulled from the portal
func (s *Storage) SaveOperationTemplates(ctx context.Context, templates []models.OperationTemplate) error {
	return s.putTemplates(keyOperationTemplates, templates)
}

// GetOperationTemplates returns cached operation templates
func (s *Storage) GetOperationTemplates(ctx context.Context) ([]models.OperationTemplate, error) {
	var templates []models.OperationTemplate
	if err := s.getTemplates(keyOperationTemplates, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// SaveSparePartTemplates caches spare part templates pulled from the portal
func (s *Storage) SaveSparePartTemplates(ctx context.Context, templates []models.SparePartTemplate) error {
	return s.putTemplates(keySparePartTemplates, templates)
}

// GetSparePartTemplates returns cached spare part templates
func (s *Storage) GetSparePartTemplates(ctx context.Context) ([]models.SparePartTemplate, error) {
	var templates []models.SparePartTemplate
	if err := s.getTemplates(keySparePartTemplates, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (s *Storage) putTemplates(key string, v any) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s templates: %w", key, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTemplates)
		if bucket == nil {
			return fmt.Errorf("templates bucket not found")
		}
		if err := bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save %s templates: %w", key, err)
		}
		return nil
	})
}

func (s *Storage) getTemplates(key string, dst any) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTemplates)
		if bucket == nil {
			return fmt.Errorf("templates bucket not found")
		}
		data := bucket.Get([]byte(key))
		if data == nil {
			// Шаблоны еще не загружались
			return nil
		}
		if err := json.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("failed to unmarshal %s templates: %w", key, err)
		}
		return nil
	})
}
