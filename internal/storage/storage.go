package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-ledger/internal/config"
	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/storage/sqlconfig"
)

// StateKey is the versioned key the aggregate is saved under. Bumping it
// abandons whatever was saved under the previous key.
const StateKey = "bluefinance_pro_data_v10"

// ErrNotFound is returned by KeyValueStore.Load when nothing is saved under
// the key.
var ErrNotFound = errors.New("storage: key not found")

// KeyValueStore is a durable map from keys to opaque blobs.
//
//go:generate mockery --name KeyValueStore --output mock_KeyValueStore.go
type KeyValueStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Storage persists the ledger aggregate as one JSON document.
type Storage struct {
	Store  KeyValueStore
	Logger *logrus.Logger
}

func New(store KeyValueStore, logger *logrus.Logger) *Storage {
	return &Storage{Store: store, Logger: logger}
}

// NewStorage opens the backend selected by the configuration.
func NewStorage(ctx context.Context, env *config.Config, logger *logrus.Logger) (*Storage, error) {
	var store KeyValueStore
	switch env.Storage.Backend {
	case config.BackendMemory:
		store = NewMemoryStore()
	case config.BackendFile:
		fileStore, err := NewFileStore(env.Storage.Dir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	case config.BackendPostgres:
		table, err := sqlconfig.OpenPostgres(ctx, env.Postgres.DSN())
		if err != nil {
			return nil, err
		}
		store = sqlStore{table: table}
	case config.BackendSQLite:
		table, err := sqlconfig.OpenSQLite(ctx, env.SQLite.Path)
		if err != nil {
			return nil, err
		}
		store = sqlStore{table: table}
	case config.BackendGCS:
		gcsStore, err := NewGCSStore(ctx, env.GCS.Bucket)
		if err != nil {
			return nil, err
		}
		store = gcsStore
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", env.Storage.Backend)
	}

	logger.WithField("backend", env.Storage.Backend).Info("Storage.NewStorage.opened")
	return New(store, logger), nil
}

// Load returns the saved aggregate. A missing, unreadable or malformed
// document is logged and replaced by the seed dataset, so Load always
// returns a usable state.
func (s *Storage) Load(ctx context.Context) *ledger.State {
	log := s.Logger.WithField("key", StateKey)

	data, err := s.Store.Load(ctx, StateKey)
	if errors.Is(err, ErrNotFound) {
		log.Info("Storage.Load.empty, using seed data")
		return ledger.Seed()
	}
	if err != nil {
		log.WithError(err).Error("Storage.Load.read failed, using seed data")
		return ledger.Seed()
	}

	state, err := DecodeState(data)
	if err != nil {
		log.WithError(err).Warn("Storage.Load.invalid data, using seed data")
		return ledger.Seed()
	}

	log.WithFields(logrus.Fields{
		"transactions": len(state.Transactions),
		"accounts":     len(state.Accounts),
	}).Info("Storage.Load.complete")
	return state
}

// Save writes the whole aggregate under StateKey.
func (s *Storage) Save(ctx context.Context, state *ledger.State) error {
	data, err := EncodeState(state)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := s.Store.Save(ctx, StateKey, data); err != nil {
		return fmt.Errorf("storage: save %s: %w", StateKey, err)
	}

	s.Logger.WithFields(logrus.Fields{
		"bytes":  len(data),
		"saveMs": time.Since(start).Milliseconds(),
	}).Debug("Storage.Save.complete")
	return nil
}

// Close releases the backend if it holds resources.
func (s *Storage) Close() error {
	if closer, ok := s.Store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// sqlStore adapts a snapshot table to KeyValueStore.
type sqlStore struct {
	table sqlconfig.ISnapshotTable
}

func (s sqlStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.table.Find(ctx, key)
	if errors.Is(err, sqlconfig.ErrNoSnapshot) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s sqlStore) Save(ctx context.Context, key string, data []byte) error {
	return s.table.Upsert(ctx, key, data)
}

func (s sqlStore) Close() error {
	if closer, ok := s.table.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
