// Package storage is the single owner of entity reads and writes. Handlers
// never touch gorm directly; every miss, conflict and unavailable-database
// condition is reported through the sentinel errors below.
package storage

import (
	"errors"
	"strings"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

var (
	// ErrUnavailable is returned by writes when no database is configured.
	// Reads degrade to absent/empty instead.
	ErrUnavailable = errors.New("storage: database not available")

	// ErrNotFound marks a single-record miss.
	ErrNotFound = errors.New("storage: record not found")

	// ErrConflict marks a uniqueness violation (tracking ID, license,
	// invoice number, one-per-order rows).
	ErrConflict = errors.New("storage: constraint violation")
)

// Store bundles the database handle with an optional Redis cache for public
// tracking lookups. Construct with New; a nil db yields a degraded store.
type Store struct {
	db    *gorm.DB
	cache *redis.Client
}

// New builds a Store. cache may be nil, in which case tracking lookups always
// hit the database.
func New(db *gorm.DB, cache *redis.Client) *Store {
	return &Store{db: db, cache: cache}
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	// Fallback for drivers that do not translate uniqueness errors.
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key") {
		return ErrConflict
	}
	return err
}
