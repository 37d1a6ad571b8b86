package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/fieldsync/internal/client/storage"
	"github.com/iudanet/fieldsync/internal/models"
)

// LoadUsers returns the persisted user collection in stored order
func (s *Storage) LoadUsers(ctx context.Context) ([]models.User, error) {
	return loadAll[models.User](s, bucketUsers)
}

// ReplaceUsers atomically replaces the whole user collection
func (s *Storage) ReplaceUsers(ctx context.Context, users []models.User) error {
	return replaceAll(s, bucketUsers, users)
}

// LoadTickets returns the persisted ticket collection in stored order
func (s *Storage) LoadTickets(ctx context.Context) ([]models.ServiceTicket, error) {
	return loadAll[models.ServiceTicket](s, bucketTickets)
}

// ReplaceTickets atomically replaces the whole ticket collection
func (s *Storage) ReplaceTickets(ctx context.Context, tickets []models.ServiceTicket) error {
	return replaceAll(s, bucketTickets, tickets)
}

// seqKey ключ записи: порядковый номер в big-endian, чтобы курсор
// возвращал записи в том же порядке, в каком их сохранили
func seqKey(i int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(i))
	return key
}

// replaceAll пересоздает bucket и записывает коллекцию в одной транзакции.
// При ошибке транзакция откатывается и прежняя коллекция остается на месте.
func replaceAll[T any](s *Storage, name []byte, items []T) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем до открытия транзакции
	encoded := make([][]byte, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal %s entry: %w", name, err)
		}
		encoded = append(encoded, data)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(name) != nil {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to clear %s bucket: %w", name, err)
			}
		}
		bucket, err := tx.CreateBucket(name)
		if err != nil {
			return fmt.Errorf("failed to create %s bucket: %w", name, err)
		}
		for i, data := range encoded {
			if err := bucket.Put(seqKey(i), data); err != nil {
				return fmt.Errorf("failed to save %s entry: %w", name, err)
			}
		}
		return nil
	})
}

func loadAll[T any](s *Storage, name []byte) ([]T, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var items []T
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", name)
		}

		items = make([]T, 0, bucket.Stats().KeyN)
		return bucket.ForEach(func(k, v []byte) error {
			var item T
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal %s entry: %w", name, err)
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}
