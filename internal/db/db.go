// Package db owns the PostgreSQL pool and the scoped-connection primitives
// every data-touching operation goes through. A connection is checked out per
// call and released on every exit path; nothing holds one across unrelated
// work.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Querier is the subset of sqlx both *sqlx.Conn and *sqlx.Tx satisfy. Callers
// inside Serialize/Transaction closures see only this.
type Querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
}

// Config holds the connection parameters for the store.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	PoolSize int
}

// Connector wraps the pooled database handle.
type Connector struct {
	db *sqlx.DB
}

// Connect opens the pool and verifies connectivity.
func Connect(ctx context.Context, cfg Config) (*Connector, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database,
	)
	pool, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if cfg.PoolSize > 0 {
		pool.SetMaxOpenConns(cfg.PoolSize)
	}
	pool.SetConnMaxIdleTime(5 * time.Minute)

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Connector{db: pool}, nil
}

// NewConnector wraps an existing handle. Used by tests.
func NewConnector(db *sqlx.DB) *Connector {
	return &Connector{db: db}
}

// Close closes the pool.
func (c *Connector) Close() error {
	return c.db.Close()
}

// Serialize checks out one connection, runs fn on it, and returns the
// connection to the pool whatever happens — success, error, or panic. No
// transaction is opened.
func (c *Connector) Serialize(ctx context.Context, fn func(q Querier) error) error {
	conn, err := c.db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()
	return fn(conn)
}

// Transaction runs fn inside a single transaction: commit when fn returns nil,
// rollback when it returns an error or panics. The underlying connection is
// released on every exit path.
func (c *Connector) Transaction(ctx context.Context, fn func(q Querier) error) (err error) {
	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Println("[ERR] Rollback after panic failed:", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Println("[ERR] Rollback failed:", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
