// ABOUTME: Badger-backed collection store, the localStorage analogue
// ABOUTME: Whole-array JSON load/save keyed by collection name
package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/dgraph-io/badger/v3"
	"github.com/oklog/ulid/v2"
)

// Collection keys. Each value is a JSON-serialized array (or a single
// object for the session/sync singletons).
const (
	colAccounts           = "accounts"
	colActivities         = "activities"
	colInternalActivities = "internalActivities"
	colUsers              = "users"
	colSalesReps          = "globalSalesReps"
	colIndustries         = "industries"
	colRegions            = "regions"
	colSession            = "session"
	colSyncState          = "syncState"
)

type Store struct {
	db *badger.DB
}

// DefaultPath returns the XDG-compliant store location.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "ptrack", "store")
}

// Open opens (or creates) the store at path and seeds default collections
// on first run.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	s := &Store{db: db}
	if err := s.seed(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// OpenInMemory opens an isolated in-memory store for tests.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory store: %w", err)
	}

	s := &Store{db: db}
	if err := s.seed(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// NewID generates an opaque record id: a ULID, which carries a millisecond
// timestamp component plus random suffix. Uniqueness is probabilistic.
func NewID() string {
	return ulid.Make().String()
}

// load reads a collection into v. Absent keys leave v untouched, so callers
// get the zero value (empty slice) for collections that were never written.
func (s *Store) load(key string, v interface{}) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// save overwrites a collection entirely.
func (s *Store) save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *Store) delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (s *Store) has(key string) (bool, error) {
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

func now() time.Time {
	return time.Now().UTC()
}
