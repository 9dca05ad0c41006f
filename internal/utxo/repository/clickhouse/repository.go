package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, network model.Network, err error, started time.Time)
	}
	// Conn is the subset of the ClickHouse connection the repository uses.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		Exec(ctx context.Context, query string, args ...any) error
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}
	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}
)

// Repository persists the ledger of one network.
type Repository struct {
	conn    Conn
	network model.Network
	metrics Metrics
	now     func() time.Time

	versionMu   sync.Mutex
	lastVersion uint64
}

func NewRepository(dsn string, network model.Network, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if network == "" {
		return nil, errors.New("network is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: &driverConn{conn: conn}, network: network, metrics: metrics, now: time.Now}, nil
}

func (r *Repository) Close() error {
	return r.conn.Close()
}

// version orders rows of the replacing output table; later writes win. Versions strictly increase
// even when the wall clock steps back.
func (r *Repository) version() uint64 {
	now := r.now
	if now == nil {
		now = time.Now
	}
	v := uint64(now().UnixNano())

	r.versionMu.Lock()
	defer r.versionMu.Unlock()
	if v <= r.lastVersion {
		v = r.lastVersion + 1
	}
	r.lastVersion = v
	return v
}

type driverConn struct {
	conn driver.Conn
}

func (c *driverConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return c.conn.Query(ctx, query, args...)
}

func (c *driverConn) Exec(ctx context.Context, query string, args ...any) error {
	return c.conn.Exec(ctx, query, args...)
}

func (c *driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

func (c *driverConn) Close() error {
	return c.conn.Close()
}
