package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx used by repositories. Both a pool and an
// open transaction satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Conn is what DB needs from the underlying connection. *pgxpool.Pool
// satisfies it, and so does a pgxmock pool in repository tests.
type Conn interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

type DB struct {
	Conn
}

func NewPostgreSQLDB(dsn string) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	config.MaxConns = 25
	config.MinConns = 5

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return &DB{Conn: pool}, nil
}

// NewWithConn wraps an existing connection, used by tests.
func NewWithConn(conn Conn) *DB {
	return &DB{Conn: conn}
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Begin(ctx)
}

type txKey struct{}

// WithTx returns a context carrying an open transaction. Repositories
// reached through this context run their statements on the transaction.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFrom extracts the transaction from the context, if any.
func TxFrom(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}
