package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/berrythewa/c2f/pkg/utils"
)

const (
	historyBucket    = "history"
	defaultKeepItems = 500
)

// BoltStorage keeps the save history in a bbolt database. Keys are the
// bucket sequence, so key order is insertion order.
type BoltStorage struct {
	db        *bbolt.DB
	logger    *zap.Logger
	keepItems int
}

// StorageConfig holds configuration for BoltStorage initialization
type StorageConfig struct {
	DBPath    string
	Logger    *zap.Logger
	KeepItems int // records kept after each save, <= 0 for the default
}

// NewBoltStorage opens (creating if needed) the history database
func NewBoltStorage(config StorageConfig) (*BoltStorage, error) {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	keep := config.KeepItems
	if keep <= 0 {
		keep = defaultKeepItems
	}

	// bbolt mmaps its file, so this cannot go through an afero.Fs
	if err := os.MkdirAll(filepath.Dir(config.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := bbolt.Open(config.DBPath, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(historyBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	logger.Debug("History storage initialized",
		zap.String("db_path", config.DBPath),
		zap.Int("keep_items", keep))

	return &BoltStorage{db: db, logger: logger, keepItems: keep}, nil
}

// SaveRecord appends a record and drops the oldest ones beyond keepItems
func (s *BoltStorage) SaveRecord(record *Record) error {
	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(historyBucket))

		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate key: %w", err)
		}
		if err := b.Put(itob(seq), encoded); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		s.logger.Debug("Saved history record",
			zap.String("id", record.ID),
			zap.String("filename", record.Filename),
			zap.String("type", string(record.Type)))

		return s.trim(b)
	})
}

// trim deletes the oldest records until at most keepItems remain
func (s *BoltStorage) trim(b *bbolt.Bucket) error {
	var keys [][]byte
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		keys = append(keys, append([]byte(nil), k...))
	}

	excess := len(keys) - s.keepItems
	if excess <= 0 {
		return nil
	}
	for _, k := range keys[:excess] {
		if err := b.Delete(k); err != nil {
			return fmt.Errorf("failed to trim history: %w", err)
		}
	}
	s.logger.Debug("Trimmed history", zap.Int("removed", excess))
	return nil
}

// GetHistory returns records matching options, newest first unless
// options.Reverse is set. Undecodable records are skipped.
func (s *BoltStorage) GetHistory(options HistoryOptions) ([]*Record, error) {
	var records []*Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(historyBucket)).Cursor()

		first, next := c.Last, c.Prev
		if options.Reverse {
			first, next = c.First, c.Next
		}

		for k, v := first(); k != nil; k, v = next() {
			var record Record
			if err := json.Unmarshal(v, &record); err != nil {
				s.logger.Warn("Failed to unmarshal record", zap.Error(err), zap.Binary("key", k))
				continue
			}
			if !utils.ValidID(record.ID) {
				s.logger.Warn("Skipping record with invalid id", zap.String("id", record.ID), zap.Binary("key", k))
				continue
			}
			if !options.matches(&record) {
				continue
			}
			records = append(records, &record)
			if options.Limit > 0 && len(records) >= options.Limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return records, nil
}

// Clear removes every record and returns how many there were
func (s *BoltStorage) Clear() (int, error) {
	var removed int
	err := s.db.Update(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(historyBucket)).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			removed++
		}
		if err := tx.DeleteBucket([]byte(historyBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(historyBucket))
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	s.logger.Info("History cleared", zap.Int("removed", removed))
	return removed, nil
}

// Close closes the database connection
func (s *BoltStorage) Close() error {
	return s.db.Close()
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
