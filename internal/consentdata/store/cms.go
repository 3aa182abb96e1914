package store

import (
	"context"
	"errors"

	"oba/pkg/platform/sentinel"
)

// ConsentDataClient is the subset of the CMS client the CMS store uses.
type ConsentDataClient interface {
	UpdateAspspConsentData(ctx context.Context, encryptedID, base64Blob string) error
	ReadAspspConsentData(ctx context.Context, encryptedID string) (string, error)
	DeleteAspspConsentData(ctx context.Context, encryptedID string) error
}

// CMSStore keeps blobs at the CMS consent data endpoint.
type CMSStore struct {
	client ConsentDataClient
}

// NewCMSStore wraps the CMS consent data client.
func NewCMSStore(client ConsentDataClient) *CMSStore {
	return &CMSStore{client: client}
}

func (s *CMSStore) Put(ctx context.Context, encryptedID, blob string) error {
	return s.client.UpdateAspspConsentData(ctx, encryptedID, blob)
}

func (s *CMSStore) Get(ctx context.Context, encryptedID string) (string, error) {
	return s.client.ReadAspspConsentData(ctx, encryptedID)
}

func (s *CMSStore) Delete(ctx context.Context, encryptedIDs ...string) error {
	var errs []error
	for _, id := range encryptedIDs {
		if err := s.client.DeleteAspspConsentData(ctx, id); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
