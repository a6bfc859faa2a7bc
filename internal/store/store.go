package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"noted/internal/types"
)

var (
	bucketState = []byte("state")
	keySession  = []byte("session")
	keyTheme    = []byte("theme")
)

// Store is the durable client-local state: the persisted session and the
// theme preference, each under a fixed key. Absence of a key means
// "no session" / "default theme".
type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Session returns the persisted session, or nil when none is stored.
func (s *Store) Session() (*types.Session, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(bucketState).Get(keySession)
		if value != nil {
			raw = append([]byte{}, value...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var session types.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	if session.Token == "" {
		return nil, nil
	}
	return &session, nil
}

func (s *Store) SaveSession(session *types.Session) error {
	if session == nil {
		return errors.New("session is required")
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put(keySession, raw)
	})
}

func (s *Store) ClearSession() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Delete(keySession)
	})
}

// DarkMode reports the stored theme preference; absent means light.
func (s *Store) DarkMode() (bool, error) {
	dark := false
	err := s.db.View(func(tx *bolt.Tx) error {
		dark = string(tx.Bucket(bucketState).Get(keyTheme)) == "dark"
		return nil
	})
	return dark, err
}

func (s *Store) SaveDarkMode(dark bool) error {
	value := "light"
	if dark {
		value = "dark"
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put(keyTheme, []byte(value))
	})
}
