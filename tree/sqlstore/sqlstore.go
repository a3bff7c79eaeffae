/*
Package sqlstore provides an implementation of tree.Store that keeps
encoded trees on a table of an SQL database. SQLite3 and PostgreSQL
databases are supported.
*/
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Import of postgres driver
	_ "github.com/lib/pq"
	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbanos/arbor/tree"
)

/*
Dialect holds the statements a store runs on a particular kind
of SQL database. The table name is substituted for %s on each one.
*/
type Dialect struct {
	Driver string
	Create string
	Upsert string
	Select string
	Delete string
}

// SQLite3 is the Dialect for SQLite3 databases
var SQLite3 = Dialect{
	Driver: "sqlite3",
	Create: `CREATE TABLE IF NOT EXISTS "%s" (name TEXT PRIMARY KEY, data BLOB NOT NULL)`,
	Upsert: `INSERT INTO "%s" (name, data) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
	Select: `SELECT data FROM "%s" WHERE name = ?`,
	Delete: `DELETE FROM "%s" WHERE name = ?`,
}

// Postgres is the Dialect for PostgreSQL databases
var Postgres = Dialect{
	Driver: "postgres",
	Create: `CREATE TABLE IF NOT EXISTS "%s" (name TEXT PRIMARY KEY, data BYTEA NOT NULL)`,
	Upsert: `INSERT INTO "%s" (name, data) VALUES ($1, $2) ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
	Select: `SELECT data FROM "%s" WHERE name = $1`,
	Delete: `DELETE FROM "%s" WHERE name = $1`,
}

type sqlStore struct {
	db      *sql.DB
	dialect Dialect
	table   string
}

/*
Open takes a context, a Dialect, the data source name of a database
and a table name, and returns a tree.Store that works on that table,
creating it if it does not exist. An error is returned if the database
cannot be opened or the table cannot be created.
*/
func Open(ctx context.Context, dialect Dialect, dsn, table string) (tree.Store, error) {
	if strings.ContainsAny(table, `"`) {
		return nil, fmt.Errorf(`table name '%s' contains invalid character '"'`, table)
	}
	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, err
	}
	_, err = db.ExecContext(ctx, fmt.Sprintf(dialect.Create, table))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ensuring %s table exists: %v", table, err)
	}
	return &sqlStore{db, dialect, table}, nil
}

func (ss *sqlStore) Put(ctx context.Context, name string, data []byte) error {
	_, err := ss.db.ExecContext(ctx, ss.statement(ss.dialect.Upsert), name, data)
	if err != nil {
		return fmt.Errorf("storing tree %q: %v", name, err)
	}
	return nil
}

func (ss *sqlStore) Get(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := ss.db.QueryRowContext(ctx, ss.statement(ss.dialect.Select), name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %v", name, err)
	}
	return data, nil
}

func (ss *sqlStore) Delete(ctx context.Context, name string) error {
	_, err := ss.db.ExecContext(ctx, ss.statement(ss.dialect.Delete), name)
	if err != nil {
		return fmt.Errorf("deleting tree %q: %v", name, err)
	}
	return nil
}

func (ss *sqlStore) Close(ctx context.Context) error {
	return ss.db.Close()
}

func (ss *sqlStore) statement(format string) string {
	return fmt.Sprintf(format, ss.table)
}
