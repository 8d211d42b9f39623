package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alans123s/billtrackery/internal/client/models"
)

// Sites fetches and lists the customer's installations. The printed index is
// what the bills command accepts as a selector.
func (a *App) Sites(ctx context.Context) error {
	sites, err := a.billing.Sites(ctx)
	if err != nil {
		return fail(err)
	}

	a.sites = sites
	if len(sites) == 0 {
		notify("Nenhuma instalação encontrada")
		return nil
	}
	printlnFn(renderSites(sites))
	return nil
}

// resolveSite maps a user-entered selector to a site from the last listing.
// Accepted forms: 1-based index, site id, or the id/contract pair. A bare id
// matching several contracts is ambiguous and rejected.
func (a *App) resolveSite(arg string) (*models.Site, error) {
	if len(a.sites) == 0 {
		return nil, fmt.Errorf("no sites listed")
	}
	if arg == "" {
		if len(a.sites) == 1 {
			return &a.sites[0], nil
		}
		return nil, fmt.Errorf("selector required")
	}

	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(a.sites) {
			return nil, fmt.Errorf("index out of range")
		}
		return &a.sites[n-1], nil
	}

	var matches []*models.Site
	for i := range a.sites {
		if a.sites[i].ID == arg || a.sites[i].Key() == arg {
			matches = append(matches, &a.sites[i])
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("no such site")
	default:
		return nil, fmt.Errorf("ambiguous site id")
	}
}
