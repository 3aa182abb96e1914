package store

import (
	"context"
	"errors"
	"log/slog"

	"oba/pkg/platform/circuit"
	"oba/pkg/platform/sentinel"
)

// Backend is the store contract shared by all backends.
type Backend interface {
	Put(ctx context.Context, encryptedID, blob string) error
	Get(ctx context.Context, encryptedID string) (string, error)
	Delete(ctx context.Context, encryptedIDs ...string) error
}

// FallbackStore serves from a secondary store while the primary's circuit is open.
// The primary is still tried on every call so the circuit can close again.
type FallbackStore struct {
	primary  Backend
	fallback Backend
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

// NewFallbackStore wraps primary with fallback.
func NewFallbackStore(primary, fallback Backend, breaker *circuit.Breaker, logger *slog.Logger) *FallbackStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackStore{primary: primary, fallback: fallback, breaker: breaker, logger: logger}
}

func (s *FallbackStore) Put(ctx context.Context, encryptedID, blob string) error {
	err := s.primary.Put(ctx, encryptedID, blob)
	if err == nil {
		s.success(ctx)
		return nil
	}
	if s.failure(ctx, err) {
		return s.fallback.Put(ctx, encryptedID, blob)
	}
	return err
}

func (s *FallbackStore) Get(ctx context.Context, encryptedID string) (string, error) {
	blob, err := s.primary.Get(ctx, encryptedID)
	if err == nil || errors.Is(err, sentinel.ErrNotFound) {
		s.success(ctx)
		if err != nil && s.breaker.IsOpen() {
			return s.fallback.Get(ctx, encryptedID)
		}
		return blob, err
	}
	if s.failure(ctx, err) {
		return s.fallback.Get(ctx, encryptedID)
	}
	return "", err
}

func (s *FallbackStore) Delete(ctx context.Context, encryptedIDs ...string) error {
	_ = s.fallback.Delete(ctx, encryptedIDs...)
	err := s.primary.Delete(ctx, encryptedIDs...)
	if err == nil {
		s.success(ctx)
		return nil
	}
	if s.failure(ctx, err) {
		return nil
	}
	return err
}

func (s *FallbackStore) success(ctx context.Context) {
	if _, change := s.breaker.RecordSuccess(); change.Closed {
		s.logger.InfoContext(ctx, "consent data primary store recovered", "breaker", s.breaker.Name())
	}
}

func (s *FallbackStore) failure(ctx context.Context, err error) bool {
	useFallback, change := s.breaker.RecordFailure()
	if change.Opened {
		s.logger.WarnContext(ctx, "consent data primary store failing, using fallback",
			"breaker", s.breaker.Name(),
			"error", err,
		)
	}
	return useFallback
}
