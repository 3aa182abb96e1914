// Package consentdata persists the SCA response between browser round trips.
//
// The latest GlobalScaResponse (bearer token included) is serialised to
// base64 JSON and stored under the encrypted resource id. The same blob
// carries the failed-login counter for the session.
package consentdata

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"time"

	"oba/internal/platform/metrics"
	"oba/internal/sca"
	dErrors "oba/pkg/domain-errors"
	"oba/pkg/platform/sentinel"
	"oba/pkg/platform/tx"
)

// purgeBatch bounds the ids sent to the store in one delete.
const purgeBatch = 500

// Store keeps opaque blobs keyed by encrypted resource id.
type Store interface {
	Put(ctx context.Context, encryptedID, blob string) error
	// Get returns sentinel.ErrNotFound when nothing is stored.
	Get(ctx context.Context, encryptedID string) (string, error)
	Delete(ctx context.Context, encryptedIDs ...string) error
}

// Blob is the JSON document stored for one session.
type Blob struct {
	sca.GlobalScaResponse
	LoginAttemptsLeft *int `json:"loginAttemptsLeft,omitempty"`
}

// Service reads and writes session blobs.
type Service struct {
	store       Store
	maxAttempts int
	backend     string
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tx          tx.Runner
}

// Option configures a Service.
type Option func(*Service)

func WithMaxLoginAttempts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTxRunner makes multi-batch purges atomic on transactional backends.
func WithTxRunner(r tx.Runner) Option {
	return func(s *Service) {
		if r != nil {
			s.tx = r
		}
	}
}

func WithMetrics(m *metrics.Metrics, backend string) Option {
	return func(s *Service) {
		s.metrics = m
		s.backend = backend
	}
}

// New creates a service over store. Default login budget is 3 attempts.
func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("consent data store is required")
	}
	s := &Service{
		store:       store,
		maxAttempts: 3,
		backend:     "unknown",
		logger:      slog.Default(),
		tx:          tx.NopRunner{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Save stores resp for encryptedID, keeping the session's login counter.
func (s *Service) Save(ctx context.Context, encryptedID string, resp *sca.GlobalScaResponse) error {
	current, err := s.read(ctx, encryptedID)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return err
	}
	next := Blob{}
	if resp != nil {
		next.GlobalScaResponse = *resp
	}
	if current != nil {
		next.LoginAttemptsLeft = current.LoginAttemptsLeft
	}
	return s.write(ctx, encryptedID, &next)
}

// Load returns the stored SCA response. Returns an error wrapping
// sentinel.ErrNotFound when the session has no data.
func (s *Service) Load(ctx context.Context, encryptedID string) (*sca.GlobalScaResponse, error) {
	blob, err := s.read(ctx, encryptedID)
	if err != nil {
		return nil, err
	}
	resp := blob.GlobalScaResponse
	return &resp, nil
}

// IsFailedLogin reports whether the session has no login attempts left.
func (s *Service) IsFailedLogin(ctx context.Context, encryptedID string) (bool, error) {
	blob, err := s.read(ctx, encryptedID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return blob.LoginAttemptsLeft != nil && *blob.LoginAttemptsLeft <= 0, nil
}

// UpdateLoginFailedCount consumes one login attempt and returns how many remain.
func (s *Service) UpdateLoginFailedCount(ctx context.Context, encryptedID string) (int, error) {
	blob, err := s.read(ctx, encryptedID)
	if errors.Is(err, sentinel.ErrNotFound) {
		blob, err = &Blob{}, nil
	}
	if err != nil {
		return 0, err
	}

	left := s.maxAttempts
	if blob.LoginAttemptsLeft != nil {
		left = *blob.LoginAttemptsLeft
	}
	left = max(left-1, 0)
	blob.LoginAttemptsLeft = &left

	if err := s.write(ctx, encryptedID, blob); err != nil {
		return 0, err
	}
	return left, nil
}

// Purge removes stored data for the given sessions in batches of purgeBatch
// ids, all inside one unit of work.
func (s *Service) Purge(ctx context.Context, encryptedIDs ...string) error {
	if len(encryptedIDs) == 0 {
		return nil
	}
	start := time.Now()
	defer s.metrics.ObserveConsentData(s.backend, "delete", start)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for batch := range slices.Chunk(encryptedIDs, purgeBatch) {
			if err := s.store.Delete(ctx, batch...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeConnection, "failed to purge consent data")
	}
	return nil
}

func (s *Service) read(ctx context.Context, encryptedID string) (*Blob, error) {
	start := time.Now()
	raw, err := s.store.Get(ctx, encryptedID)
	s.metrics.ObserveConsentData(s.backend, "get", start)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodeConnection, "failed to read consent data")
	}
	if raw == "" {
		return nil, sentinel.ErrNotFound
	}
	return Decode(raw)
}

func (s *Service) write(ctx context.Context, encryptedID string, blob *Blob) error {
	encoded, err := Encode(blob)
	if err != nil {
		return err
	}
	start := time.Now()
	err = s.store.Put(ctx, encryptedID, encoded)
	s.metrics.ObserveConsentData(s.backend, "put", start)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to store consent data", "error", err)
		return dErrors.Wrap(err, dErrors.CodeConnection, "failed to store consent data")
	}
	return nil
}

// Encode serialises blob to base64 JSON.
func Encode(blob *Blob) (string, error) {
	raw, err := json.Marshal(blob)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeConversion, "could not serialise consent data")
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode parses a base64 JSON blob.
func Decode(encoded string) (*Blob, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeConversion, "could not decode consent data")
	}
	var blob Blob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeConversion, "could not parse consent data")
	}
	return &blob, nil
}
