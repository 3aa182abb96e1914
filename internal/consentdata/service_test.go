package consentdata_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"oba/internal/consentdata"
	"oba/internal/consentdata/store"
	"oba/internal/sca"
	dErrors "oba/pkg/domain-errors"
	"oba/pkg/platform/sentinel"
)

type ServiceSuite struct {
	suite.Suite
	ctx   context.Context
	store *store.InMemoryStore
	svc   *consentdata.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = store.NewInMemoryStore()
	svc, err := consentdata.New(s.store, consentdata.WithMaxLoginAttempts(3))
	s.Require().NoError(err)
	s.svc = svc
}

func (s *ServiceSuite) TestSaveAndLoad() {
	resp := &sca.GlobalScaResponse{
		AuthorisationID: "AUTH_1",
		ScaStatus:       sca.StatusScaMethodSelected,
		Bearer:          &sca.BearerToken{AccessToken: "tok-1"},
	}
	s.Require().NoError(s.svc.Save(s.ctx, "ENC_123", resp))

	loaded, err := s.svc.Load(s.ctx, "ENC_123")
	s.Require().NoError(err)
	s.Equal(resp, loaded)

	raw, err := s.store.Get(s.ctx, "ENC_123")
	s.Require().NoError(err)
	decoded, err := base64.StdEncoding.DecodeString(raw)
	s.Require().NoError(err)
	var doc map[string]any
	s.Require().NoError(json.Unmarshal(decoded, &doc))
	s.Equal("tok-1", doc["bearerToken"].(map[string]any)["access_token"])
}

func (s *ServiceSuite) TestLoadMissing() {
	_, err := s.svc.Load(s.ctx, "nope")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *ServiceSuite) TestCorruptBlobIsConversionError() {
	s.Require().NoError(s.store.Put(s.ctx, "ENC_123", "!!not base64!!"))
	_, err := s.svc.Load(s.ctx, "ENC_123")
	s.True(dErrors.HasCode(err, dErrors.CodeConversion))
}

func (s *ServiceSuite) TestLoginCounterCountsDownAndSurvivesSave() {
	failed, err := s.svc.IsFailedLogin(s.ctx, "ENC_123")
	s.Require().NoError(err)
	s.False(failed)

	left, err := s.svc.UpdateLoginFailedCount(s.ctx, "ENC_123")
	s.Require().NoError(err)
	s.Equal(2, left)

	s.Require().NoError(s.svc.Save(s.ctx, "ENC_123", &sca.GlobalScaResponse{ScaStatus: sca.StatusPSUIdentified}))

	left, err = s.svc.UpdateLoginFailedCount(s.ctx, "ENC_123")
	s.Require().NoError(err)
	s.Equal(1, left)

	left, err = s.svc.UpdateLoginFailedCount(s.ctx, "ENC_123")
	s.Require().NoError(err)
	s.Equal(0, left)

	failed, err = s.svc.IsFailedLogin(s.ctx, "ENC_123")
	s.Require().NoError(err)
	s.True(failed)

	left, err = s.svc.UpdateLoginFailedCount(s.ctx, "ENC_123")
	s.Require().NoError(err)
	s.Equal(0, left, "counter does not go negative")

	resp, err := s.svc.Load(s.ctx, "ENC_123")
	s.Require().NoError(err)
	s.Equal(sca.StatusPSUIdentified, resp.ScaStatus)
}

func (s *ServiceSuite) TestPurge() {
	s.Require().NoError(s.svc.Save(s.ctx, "A", &sca.GlobalScaResponse{}))
	s.Require().NoError(s.svc.Save(s.ctx, "B", &sca.GlobalScaResponse{}))

	s.Require().NoError(s.svc.Purge(s.ctx, "A", "B"))

	_, err := s.svc.Load(s.ctx, "A")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

// batchStore records delete batches and fails the batch numbered failAt.
type batchStore struct {
	*store.InMemoryStore
	batches [][]string
	failAt  int
}

func (b *batchStore) Delete(ctx context.Context, ids ...string) error {
	b.batches = append(b.batches, ids)
	if b.failAt > 0 && len(b.batches) == b.failAt {
		return errors.New("delete failed")
	}
	return b.InMemoryStore.Delete(ctx, ids...)
}

// countingRunner counts units of work.
type countingRunner struct {
	runs int
	err  error
}

func (r *countingRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.runs++
	r.err = fn(ctx)
	return r.err
}

func purgeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("ENC_%d", i)
	}
	return ids
}

func (s *ServiceSuite) TestPurgeBatchesInsideOneUnitOfWork() {
	backend := &batchStore{InMemoryStore: store.NewInMemoryStore()}
	runner := &countingRunner{}
	svc, err := consentdata.New(backend, consentdata.WithTxRunner(runner))
	s.Require().NoError(err)

	s.Require().NoError(svc.Purge(s.ctx, purgeIDs(1001)...))

	s.Equal(1, runner.runs)
	s.Require().Len(backend.batches, 3)
	s.Len(backend.batches[0], 500)
	s.Len(backend.batches[1], 500)
	s.Len(backend.batches[2], 1)
}

func (s *ServiceSuite) TestPurgeStopsAtFailedBatch() {
	backend := &batchStore{InMemoryStore: store.NewInMemoryStore(), failAt: 2}
	runner := &countingRunner{}
	svc, err := consentdata.New(backend, consentdata.WithTxRunner(runner))
	s.Require().NoError(err)

	err = svc.Purge(s.ctx, purgeIDs(1200)...)
	s.True(dErrors.HasCode(err, dErrors.CodeConnection))
	s.Error(runner.err)
	s.Len(backend.batches, 2)
}

type failingStore struct{}

func (failingStore) Put(context.Context, string, string) error { return errors.New("down") }
func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("down")
}
func (failingStore) Delete(context.Context, ...string) error { return errors.New("down") }

func (s *ServiceSuite) TestStoreFailureIsConnectionError() {
	svc, err := consentdata.New(failingStore{})
	s.Require().NoError(err)

	err = svc.Save(s.ctx, "ENC_123", &sca.GlobalScaResponse{})
	s.True(dErrors.HasCode(err, dErrors.CodeConnection))

	_, err = svc.IsFailedLogin(s.ctx, "ENC_123")
	s.True(dErrors.HasCode(err, dErrors.CodeConnection))
}
