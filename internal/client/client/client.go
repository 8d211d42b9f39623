package client

import (
	"context"

	"github.com/alans123s/billtrackery/internal/client/models"
)

// Client is the remote surface of the billing backend. Exactly three
// operations exist; none of them retries, every failure is terminal
// for that call.
type Client interface {
	Close() error
	Login(ctx context.Context, document string, password string) (*models.LoginResult, error)
	SiteList(ctx context.Context, creds models.Credentials) ([]models.Site, error)
	BillsHistory(ctx context.Context, creds models.Credentials, siteID string) ([]models.Bill, error)
}
