package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	pim "github.com/stephenafamo/bob/dialect/psql/im"
	psm "github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/sqlite"
	sim "github.com/stephenafamo/bob/dialect/sqlite/im"
	ssm "github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"
	_ "modernc.org/sqlite"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"

	snapshotsTable = "ledger_snapshots"
	keyColumn      = "key"
	payloadColumn  = "payload"
	updatedColumn  = "updated_at"
)

var ErrNoSnapshot = errors.New("sqlconfig: no snapshot for key")

// ISnapshotTable stores one document per key in ledger_snapshots.
//
//go:generate mockery --name ISnapshotTable --output mock_ISnapshotTable.go
type ISnapshotTable interface {
	Find(ctx context.Context, key string) ([]byte, error)
	Upsert(ctx context.Context, key string, payload []byte) error
}

// SnapshotTable provides access to the ledger_snapshots table on either
// PostgreSQL or SQLite.
type SnapshotTable struct {
	db      *sql.DB
	exec    bob.Executor
	dialect string
	now     func() time.Time
}

// Ensure SnapshotTable implements ISnapshotTable at compile time.
var _ ISnapshotTable = (*SnapshotTable)(nil)

// NewSnapshotTable wraps an open database whose schema is already migrated.
func NewSnapshotTable(db *sql.DB, dialect string) (*SnapshotTable, error) {
	if dialect != DialectPostgres && dialect != DialectSQLite {
		return nil, fmt.Errorf("sqlconfig: unsupported dialect %q", dialect)
	}
	return &SnapshotTable{
		db:      db,
		exec:    bob.NewDB(db),
		dialect: dialect,
		now:     time.Now,
	}, nil
}

// OpenPostgres migrates and opens the PostgreSQL database at dsn.
func OpenPostgres(ctx context.Context, dsn string) (*SnapshotTable, error) {
	if _, err := Migrate(DialectPostgres, dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlconfig: sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlconfig: ping: %w", err)
	}

	return NewSnapshotTable(db, DialectPostgres)
}

// OpenSQLite creates, migrates and opens the SQLite database file at path.
func OpenSQLite(ctx context.Context, path string) (*SnapshotTable, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlconfig: create %s: %w", dir, err)
		}
	}

	if _, err := Migrate(DialectSQLite, "sqlite://"+path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlconfig: sql.Open: %w", err)
	}
	// A single connection serializes writers on the file.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlconfig: ping: %w", err)
	}

	return NewSnapshotTable(db, DialectSQLite)
}

// Find returns the payload stored under key, or ErrNoSnapshot.
func (t *SnapshotTable) Find(ctx context.Context, key string) ([]byte, error) {
	var query bob.Query
	switch t.dialect {
	case DialectPostgres:
		query = psql.Select(
			psm.Columns(psql.Quote(payloadColumn)),
			psm.From(psql.Quote(snapshotsTable)),
			psm.Where(psql.Quote(keyColumn).EQ(psql.Arg(key))),
		)
	default:
		query = sqlite.Select(
			ssm.Columns(sqlite.Quote(payloadColumn)),
			ssm.From(sqlite.Quote(snapshotsTable)),
			ssm.Where(sqlite.Quote(keyColumn).EQ(sqlite.Arg(key))),
		)
	}

	payload, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("sqlconfig: select %s: %w", key, err)
	}
	return []byte(payload), nil
}

// Upsert inserts the payload under key or replaces the existing one.
func (t *SnapshotTable) Upsert(ctx context.Context, key string, payload []byte) error {
	var query bob.Query
	switch t.dialect {
	case DialectPostgres:
		query = psql.Insert(
			pim.Into(psql.Quote(snapshotsTable), keyColumn, payloadColumn, updatedColumn),
			pim.Values(psql.Arg(key, string(payload), t.now().UTC())),
			pim.OnConflict(keyColumn).DoUpdate(
				pim.SetExcluded(payloadColumn, updatedColumn),
			),
		)
	default:
		query = sqlite.Insert(
			sim.Into(sqlite.Quote(snapshotsTable), keyColumn, payloadColumn, updatedColumn),
			sim.Values(sqlite.Arg(key, string(payload), t.now().UTC())),
			sim.OnConflict(keyColumn).DoUpdate(
				sim.SetExcluded(payloadColumn, updatedColumn),
			),
		)
	}

	if _, err := bob.Exec(ctx, t.exec, query); err != nil {
		return fmt.Errorf("sqlconfig: upsert %s: %w", key, err)
	}
	return nil
}

func (t *SnapshotTable) Close() error {
	return t.db.Close()
}
