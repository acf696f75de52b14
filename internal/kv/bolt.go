// Package kv keeps small values in a bbolt file. It backs the best-score slot
// when the player picks --best-store bolt.
package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	bolt "go.etcd.io/bbolt"

	"github.com/vovakirdan/colormatch/internal/paths"
	"github.com/vovakirdan/colormatch/internal/slot"
)

const bucketName = "colormatch"

// ErrLocked is returned when another process holds the database.
var ErrLocked = errors.New("kv: database is in use by another process")

// DB is an open bbolt file with the colormatch bucket.
type DB struct {
	bolt *bolt.DB
}

// Open opens or creates the bbolt file at path.
func Open(path string) (*DB, error) {
	path, err := paths.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("kv: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kv: cannot create directory %s: %w", dir, err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 200 * time.Millisecond})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("kv: cannot open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kv: cannot create bucket: %w", err)
	}

	return &DB{bolt: db}, nil
}

// Close closes the file.
func (d *DB) Close() error {
	return d.bolt.Close()
}

// GetValue returns the value stored under key and whether it exists.
func (d *DB) GetValue(key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := d.bolt.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v != nil {
			value = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("kv: cannot read %q: %w", key, err)
	}
	return value, found, nil
}

// SetValue stores value under key.
func (d *DB) SetValue(key, value string) error {
	err := d.bolt.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("kv: cannot write %q: %w", key, err)
	}
	return nil
}

// DeleteValue removes key.
func (d *DB) DeleteValue(key string) error {
	err := d.bolt.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("kv: cannot delete %q: %w", key, err)
	}
	return nil
}

// Slot returns the best-score slot kept under key. A nil logger discards
// messages.
func (d *DB) Slot(key string, logger *log.Logger) *slot.Slot {
	return slot.New(d, key, logger)
}

var _ slot.Backend = (*DB)(nil)
