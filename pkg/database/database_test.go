package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/glebarez/go-sqlite"

	"github.com/daouest/factureme/pkg/logger"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(`CREATE TABLE invoice_sequences (owner_id TEXT PRIMARY KEY, last_value INTEGER NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return New(db, logger.Discard())
}

func countRows(t *testing.T, d *Database) int {
	t.Helper()
	var n int
	if err := d.DB().QueryRow(`SELECT COUNT(*) FROM invoice_sequences`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestWithTx_Commits(t *testing.T) {
	d := newTestDatabase(t)

	err := d.WithTx(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO invoice_sequences (owner_id, last_value) VALUES ('a', 1)`)
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := countRows(t, d); got != 1 {
		t.Fatalf("expected 1 row, got %d", got)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	d := newTestDatabase(t)
	boom := errors.New("boom")

	err := d.WithTx(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO invoice_sequences (owner_id, last_value) VALUES ('a', 1)`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got := countRows(t, d); got != 0 {
		t.Fatalf("expected rollback, found %d rows", got)
	}
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	d := newTestDatabase(t)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = d.WithTx(context.Background(), func(tx *sql.Tx) error {
			_, _ = tx.Exec(`INSERT INTO invoice_sequences (owner_id, last_value) VALUES ('a', 1)`)
			panic("handler exploded")
		})
	}()

	if got := countRows(t, d); got != 0 {
		t.Fatalf("expected rollback, found %d rows", got)
	}
}

func TestPing(t *testing.T) {
	d := newTestDatabase(t)
	if err := d.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
