package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkuglocal/campus-backend/pkg/ctxs"
	pgpkg "github.com/kkuglocal/campus-backend/pkg/postgres"
)

type txStub struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *txStub) Commit(ctx context.Context) error {
	t.committed = true
	return t.commitErr
}

func (t *txStub) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type beginnerStub struct {
	tx       *txStub
	beginErr error
}

func (b *beginnerStub) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestWithTx(t *testing.T) {
	t.Parallel()

	t.Run("commits and puts the tx in context", func(t *testing.T) {
		t.Parallel()

		tx := &txStub{}
		err := pgpkg.WithTx(t.Context(), &beginnerStub{tx: tx}, func(ctx context.Context, got pgx.Tx) error {
			assert.Same(t, tx, got)
			ctxTx, ok := ctxs.Tx(ctx)
			require.True(t, ok)
			assert.Same(t, tx, ctxTx)
			return nil
		})
		require.NoError(t, err)
		assert.True(t, tx.committed)
		assert.False(t, tx.rolledBack)
	})

	t.Run("fn error rolls back", func(t *testing.T) {
		t.Parallel()

		fnErr := errors.New("insert failed")
		tx := &txStub{}
		err := pgpkg.WithTx(t.Context(), &beginnerStub{tx: tx}, func(ctx context.Context, _ pgx.Tx) error {
			return fnErr
		})
		require.ErrorIs(t, err, fnErr)
		assert.True(t, tx.rolledBack)
		assert.False(t, tx.committed)
	})

	t.Run("commit failure is reported", func(t *testing.T) {
		t.Parallel()

		commitErr := errors.New("connection reset")
		tx := &txStub{commitErr: commitErr}
		err := pgpkg.WithTx(t.Context(), &beginnerStub{tx: tx}, func(ctx context.Context, _ pgx.Tx) error {
			return nil
		})
		require.ErrorIs(t, err, commitErr)
	})

	t.Run("begin failure is reported", func(t *testing.T) {
		t.Parallel()

		beginErr := errors.New("pool exhausted")
		err := pgpkg.WithTx(t.Context(), &beginnerStub{beginErr: beginErr}, func(ctx context.Context, _ pgx.Tx) error {
			t.Fatal("fn must not run without a transaction")
			return nil
		})
		require.ErrorIs(t, err, beginErr)
	})
}
