package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExecutor struct{ name string }

func (s *stubExecutor) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (s *stubExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (s *stubExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (s *stubExecutor) Commit() error   { return nil }
func (s *stubExecutor) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	pool := &stubExecutor{name: "pool"}
	tx := &stubExecutor{name: "tx"}

	ctx := context.Background()
	assert.Same(t, pool, GetExecutor(ctx, pool))
	assert.False(t, IsInTransaction(ctx))

	txCtx := WithTx(ctx, tx)
	assert.Same(t, tx, GetExecutor(txCtx, pool))
	assert.True(t, IsInTransaction(txCtx))
}
