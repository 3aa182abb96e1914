//go:build integration

package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"oba/internal/consentdata/store"
	"oba/pkg/platform/sentinel"
	txcontext "oba/pkg/platform/tx"
	"oba/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgresStore(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "aspsp_consent_data"))
}

func (s *PostgresStoreSuite) TestUpsertAndBatchDelete() {
	ctx := context.Background()

	s.Require().NoError(s.store.Put(ctx, "ENC_1", "v1"))
	s.Require().NoError(s.store.Put(ctx, "ENC_1", "v2"))
	s.Require().NoError(s.store.Put(ctx, "ENC_2", "v1"))

	got, err := s.store.Get(ctx, "ENC_1")
	s.Require().NoError(err)
	s.Equal("v2", got)

	s.Require().NoError(s.store.Delete(ctx, "ENC_1", "ENC_2", "ENC_3"))
	_, err = s.store.Get(ctx, "ENC_1")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

// TestConcurrentWritesLastWriteWins verifies concurrent upserts on one key
// leave exactly one complete value.
func (s *PostgresStoreSuite) TestConcurrentWritesLastWriteWins() {
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.store.Put(ctx, "ENC_C", "value")
		}()
	}
	wg.Wait()

	got, err := s.store.Get(ctx, "ENC_C")
	s.Require().NoError(err)
	s.Equal("value", got)
}

func (s *PostgresStoreSuite) TestJoinsCallerTransaction() {
	ctx := context.Background()
	tx, err := s.postgres.DB.BeginTx(ctx, nil)
	s.Require().NoError(err)

	txCtx := txcontext.WithTx(ctx, tx)
	s.Require().NoError(s.store.Put(txCtx, "ENC_TX", "pending"))
	got, err := s.store.Get(txCtx, "ENC_TX")
	s.Require().NoError(err)
	s.Equal("pending", got)

	s.Require().NoError(tx.Rollback())
	_, err = s.store.Get(ctx, "ENC_TX")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestRunnerRollsBackFailedPurge() {
	ctx := context.Background()
	s.Require().NoError(s.store.Put(ctx, "ENC_1", "v1"))
	s.Require().NoError(s.store.Put(ctx, "ENC_2", "v1"))
	runner := txcontext.NewSQLRunner(s.postgres.DB, 0)

	boom := errors.New("second batch failed")
	err := runner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.Delete(ctx, "ENC_1"); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)
	_, err = s.store.Get(ctx, "ENC_1")
	s.Require().NoError(err)

	s.Require().NoError(runner.RunInTx(ctx, func(ctx context.Context) error {
		return s.store.Delete(ctx, "ENC_1", "ENC_2")
	}))
	_, err = s.store.Get(ctx, "ENC_2")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
