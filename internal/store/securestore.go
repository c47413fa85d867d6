package store

import (
	"context"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/workconnect/workconnect-core/internal/metrics"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	metaSalt  = "salt"
	metaCheck = "check"
)

// checkValue is sealed and stored on first open so that a later open with a
// different passphrase fails immediately instead of on the first Get.
var checkValue = []byte("workconnect")

type item struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

func (item) TableName() string { return "store_items" }

type metaItem struct {
	Name  string `gorm:"primaryKey"`
	Value []byte
}

func (metaItem) TableName() string { return "store_meta" }

// SecureStore is the on-device persistence substrate: a single sqlite table
// of key -> sealed blob, values encrypted at rest.
type SecureStore struct {
	db  *gorm.DB
	box *secretBox
}

func Open(path string, passphrase string) (*SecureStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open store database")
	}

	if err = db.AutoMigrate(item{}, metaItem{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate store schema")
	}

	box, err := unlock(db, passphrase)
	if err != nil {
		return nil, err
	}

	return &SecureStore{db: db, box: box}, nil
}

func unlock(db *gorm.DB, passphrase string) (*secretBox, error) {

	salt, err := loadMeta(db, metaSalt)
	if err != nil {
		return nil, err
	}

	if salt == nil {
		if salt, err = newSalt(); err != nil {
			return nil, err
		}
		box, err := newSecretBox(passphrase, salt)
		if err != nil {
			return nil, err
		}
		check, err := box.seal(checkValue)
		if err != nil {
			return nil, err
		}
		if err = saveMeta(db, metaSalt, salt); err != nil {
			return nil, err
		}
		if err = saveMeta(db, metaCheck, check); err != nil {
			return nil, err
		}
		return box, nil
	}

	box, err := newSecretBox(passphrase, salt)
	if err != nil {
		return nil, err
	}

	check, err := loadMeta(db, metaCheck)
	if err != nil {
		return nil, err
	}
	if _, err = box.open(check); err != nil {
		return nil, errors.New("store passphrase does not match the existing database")
	}

	return box, nil
}

func loadMeta(db *gorm.DB, name string) ([]byte, error) {
	var m metaItem
	err := db.First(&m, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to read store metadata")
	}
	return m.Value, nil
}

func saveMeta(db *gorm.DB, name string, value []byte) error {
	return errors.Wrap(db.Save(&metaItem{Name: name, Value: value}).Error,
		"failed to write store metadata")
}

func (s *SecureStore) Get(ctx context.Context, key string) ([]byte, error) {
	metrics.StoreReadsCounter.Inc()

	var it item
	err := s.db.WithContext(ctx).First(&it, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read key %v", key)
	}
	return s.box.open(it.Value)
}

func (s *SecureStore) Set(ctx context.Context, key string, value []byte) error {
	metrics.StoreWritesCounter.Inc()

	sealed, err := s.box.seal(value)
	if err != nil {
		return err
	}
	return errors.Wrapf(s.db.WithContext(ctx).Save(&item{Key: key, Value: sealed}).Error,
		"failed to write key %v", key)
}

func (s *SecureStore) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(s.db.WithContext(ctx).Delete(&item{}, "key = ?", key).Error,
		"failed to delete key %v", key)
}

// Vacuum reclaims space freed by overwritten blobs. Scheduled by the store
// maintenance service.
func (s *SecureStore) Vacuum(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec("VACUUM").Error
}

func (s *SecureStore) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
