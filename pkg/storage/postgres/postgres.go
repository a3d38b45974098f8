package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotConnected is returned while no pool is available.
var ErrNotConnected = errors.New("postgres: not connected")

// Connect opens a pgx connection pool and performs a Ping to ensure connectivity.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	// Reasonable defaults
	config.MaxConns = 10
	config.MinConns = 0
	config.MaxConnLifetime = time.Hour
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// Handle owns the current pool and replaces it when the database comes back.
// Readers always get the latest pool or ErrNotConnected.
type Handle struct {
	dsn       string
	pool      atomic.Pointer[pgxpool.Pool]
	mu        sync.Mutex // serializes (re)connects
	onConnect func(ctx context.Context) error

	// ready is set once onConnect succeeded for the current pool
	ready bool

	connect func(ctx context.Context, dsn string) (*pgxpool.Pool, error)
	ping    func(ctx context.Context, p *pgxpool.Pool) error
}

// NewHandle creates a disconnected handle. onConnect, if set, runs after every
// successful (re)connect, e.g. to bootstrap the schema, and is retried by
// later Ensure calls until it succeeds.
func NewHandle(dsn string, onConnect func(ctx context.Context) error) *Handle {
	return &Handle{
		dsn:       dsn,
		onConnect: onConnect,
		connect:   Connect,
		ping:      func(ctx context.Context, p *pgxpool.Pool) error { return p.Ping(ctx) },
	}
}

// SetOnConnect replaces the connect hook. Call before the first Ensure.
func (h *Handle) SetOnConnect(fn func(ctx context.Context) error) { h.onConnect = fn }

// Pool returns the current pool.
func (h *Handle) Pool() (*pgxpool.Pool, error) {
	if p := h.pool.Load(); p != nil {
		return p, nil
	}
	return nil, ErrNotConnected
}

// Ensure pings the current pool, reconnects when it is missing or dead and
// runs the connect hook if it has not succeeded yet.
func (h *Handle) Ensure(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if p := h.pool.Load(); p != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := h.ping(pingCtx, p)
		cancel()
		if err != nil {
			log.Printf("[postgres] ping failed, reconnecting: %v", err)
			h.pool.Store(nil)
			h.ready = false
			p.Close()
		}
	}

	if h.pool.Load() == nil {
		pool, err := h.connect(ctx, h.dsn)
		if err != nil {
			return err
		}
		h.pool.Store(pool)
		h.ready = false
		log.Println("[postgres] connected")
	}

	if h.ready {
		return nil
	}
	if h.onConnect != nil {
		if err := h.onConnect(ctx); err != nil {
			return fmt.Errorf("on connect: %w", err)
		}
	}
	h.ready = true
	return nil
}

// Close releases the current pool.
func (h *Handle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ready = false
	if p := h.pool.Swap(nil); p != nil {
		p.Close()
	}
}
