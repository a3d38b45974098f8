package checkers

import (
	"context"
	"time"

	"github.com/artem13815/jobmatch/pkg/storage/postgres"
)

type PostgresChecker struct {
	db *postgres.Handle
}

func NewPostgresChecker(db *postgres.Handle) *PostgresChecker {
	return &PostgresChecker{db: db}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	pool, err := c.db.Pool()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return pool.Ping(ctx)
}
