// Package store persists suite history in an embedded badger key-value
// database. One record per completed suite, JSON-encoded, saved under a
// prefixed timestamp-derived key that is never overwritten.
package store

import (
	"encoding/json"
	"fmt"
	"sort"

	badger "github.com/dgraph-io/badger/v2"
	"github.com/probelab/browsercheck/internal/suite"
	"github.com/sirupsen/logrus"
)

// keyPrefix namespaces suite records inside the database.
const keyPrefix = "suite/"

// Options configures the store.
type Options struct {
	// Dir is the database directory. Ignored when InMemory is set.
	Dir string
	// InMemory keeps the database off disk, for tests.
	InMemory bool
}

// Store is a durable suite history.
type Store struct {
	db  *badger.DB
	log logrus.FieldLogger
}

// Open opens (creating if necessary) the history database.
func Open(log logrus.FieldLogger, opts Options) (*Store, error) {
	badgerOpts := badger.DefaultOptions(opts.Dir).
		WithInMemory(opts.InMemory).
		WithLogger(nil)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	return &Store{
		db:  db,
		log: log.WithField("component", "result_store"),
	}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists a suite under a unique key derived from its timestamp and
// ID. Existing entries are never overwritten; suites are never mutated in
// place.
func (s *Store) Save(st *suite.Suite) error {
	value, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding suite: %w", err)
	}

	key := fmt.Sprintf("%s%d/%s", keyPrefix, st.Timestamp.UnixMilli(), st.ID)

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("persisting suite: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"key":   key,
		"score": st.OverallScore,
	}).Debug("suite saved")

	return nil
}

// LoadAll retrieves every persisted suite, newest first. Entries that fail
// to decode are skipped with a warning so one corrupted record never blocks
// the rest of the history.
func (s *Store) LoadAll() ([]*suite.Suite, error) {
	var suites []*suite.Suite

	err := s.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(iterOpts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()

			err := item.Value(func(value []byte) error {
				var st suite.Suite
				if decodeErr := json.Unmarshal(value, &st); decodeErr != nil {
					s.log.WithError(decodeErr).
						WithField("key", string(item.Key())).
						Warn("skipping corrupted history entry")

					return nil
				}

				suites = append(suites, &st)

				return nil
			})
			if err != nil {
				return fmt.Errorf("reading history entry %s: %w", item.Key(), err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(suites, func(i, j int) bool {
		return suites[i].Timestamp.After(suites[j].Timestamp)
	})

	return suites, nil
}
