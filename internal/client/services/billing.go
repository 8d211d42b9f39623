package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/alans123s/billtrackery/internal/client/client"
	"github.com/alans123s/billtrackery/internal/client/models"
	"github.com/alans123s/billtrackery/internal/client/session"
	"github.com/alans123s/billtrackery/internal/logging"
)

// BillingService exposes the two authenticated data operations. Both check
// the local credential set first and fail with client.ErrNotAuthenticated
// without issuing a network call when anything is missing.
type BillingService interface {
	Sites(ctx context.Context) ([]models.Site, error)
	Bills(ctx context.Context, siteID string) ([]models.Bill, error)
}

type billingService struct {
	client client.Client
	store  *session.Store
	log    logging.Logger
}

func NewBillingService(c client.Client, store *session.Store, log logging.Logger) BillingService {
	return &billingService{client: c, store: store, log: log.With("component", "billing")}
}

// creds snapshots the session and validates the credential invariant locally.
func (b *billingService) creds() (models.Credentials, error) {
	sess := b.store.Read()
	if !sess.HasCredentials() {
		return models.Credentials{}, client.ErrNotAuthenticated
	}
	return sess.Credentials(), nil
}

func (b *billingService) Sites(ctx context.Context) ([]models.Site, error) {
	creds, err := b.creds()
	if err != nil {
		return nil, err
	}

	log := b.log.With("op", uuid.NewString())
	sites, err := b.client.SiteList(ctx, creds)
	if err != nil {
		// A 401 here leaves the local session untouched.
		log.Warn(ctx, "site list failed", "error", err)
		return nil, err
	}
	log.Debug(ctx, "site list fetched", "count", len(sites))
	return sites, nil
}

func (b *billingService) Bills(ctx context.Context, siteID string) ([]models.Bill, error) {
	creds, err := b.creds()
	if err != nil {
		return nil, err
	}

	log := b.log.With("op", uuid.NewString(), "site", siteID)
	bills, err := b.client.BillsHistory(ctx, creds, siteID)
	if err != nil {
		log.Warn(ctx, "bills history failed", "error", err)
		return nil, err
	}
	log.Debug(ctx, "bills history fetched", "count", len(bills))
	return bills, nil
}
