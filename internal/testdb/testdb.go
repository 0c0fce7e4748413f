// Package testdb provides an in-memory SQLite database with the schema
// applied, for store and use case tests.
package testdb

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/just-nibble/codehost/internal/repository"
	"github.com/just-nibble/codehost/pkg/config"
	"github.com/just-nibble/codehost/pkg/log"
	"gorm.io/gorm"
)

var seq atomic.Int64

// New opens a fresh database that is closed when the test finishes. A single
// connection is used so the in-memory database lives as long as the pool.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.DBConfig{
		Driver:          config.DriverSQLite,
		SQLitePath:      fmt.Sprintf("file:codehost_test_%d?mode=memory&cache=shared", seq.Add(1)),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}
	db, err := repository.Open(context.Background(), cfg, log.NewWithWriter(io.Discard, "error", "json"))
	if err != nil {
		t.Fatalf("testdb.New: open database: %v", err)
	}
	t.Cleanup(func() { _ = repository.Close(db) })

	if err := repository.Migrate(db); err != nil {
		t.Fatalf("testdb.New: auto migrate: %v", err)
	}
	return db
}

// NewStore is New wrapped in a repository.Store.
func NewStore(t *testing.T) repository.Store {
	t.Helper()
	return repository.NewGormStore(New(t))
}
