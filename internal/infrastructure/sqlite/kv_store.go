// Package sqlite guarda el documento de cuentas en un archivo SQLite local vía GORM.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jhoicas/bike-ledgers/internal/domain"
	"github.com/jhoicas/bike-ledgers/internal/domain/repository"
	"github.com/jhoicas/bike-ledgers/pkg/logger"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

type kvRecord struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (kvRecord) TableName() string { return "kv_store" }

// KVStore implementación de KeyValueStore sobre SQLite.
type KVStore struct {
	db *gorm.DB
}

// Open abre (o crea) el archivo SQLite en path y migra la tabla.
func Open(path string, log *logger.Logger) (*KVStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: NewGormLogger(log)})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %q: %w", path, err)
	}
	return NewKVStore(db)
}

// NewKVStore usa una conexión GORM existente.
func NewKVStore(db *gorm.DB) (*KVStore, error) {
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("migrar kv_store: %w", err)
	}
	return &KVStore{db: db}, nil
}

// Get devuelve el valor guardado bajo key o domain.ErrNotFound.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec kvRecord
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get kv %q: %w", key, err)
	}
	return rec.Value, nil
}

// Put reemplaza el valor completo de key.
func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	rec := kvRecord{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("put kv %q: %w", key, err)
	}
	return nil
}

// Close cierra la conexión subyacente.
func (s *KVStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
