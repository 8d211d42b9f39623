package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alans123s/billtrackery/internal/client/client"
	"github.com/alans123s/billtrackery/internal/client/export"
	"github.com/alans123s/billtrackery/internal/client/models"
	"github.com/alans123s/billtrackery/internal/logging"
)

// ---- fake services ----

type fakeAuth struct {
	session models.Session
}

func (f *fakeAuth) Login(ctx context.Context, document string, password []byte) (models.Session, error) {
	return f.session, nil
}
func (f *fakeAuth) Logout(ctx context.Context) error {
	f.session = models.Session{}
	return nil
}
func (f *fakeAuth) Restore(ctx context.Context) (models.Session, error) { return f.session, nil }
func (f *fakeAuth) Session() models.Session                             { return f.session }
func (f *fakeAuth) Close(ctx context.Context) error                     { return nil }

type fakeBilling struct {
	sites    []models.Site
	sitesErr error
	bills    []models.Bill
	billsErr error

	lastSiteID string
}

func (f *fakeBilling) Sites(ctx context.Context) ([]models.Site, error) {
	return f.sites, f.sitesErr
}

func (f *fakeBilling) Bills(ctx context.Context, siteID string) ([]models.Bill, error) {
	f.lastSiteID = siteID
	return f.bills, f.billsErr
}

func newTestApp(auth *fakeAuth, billing *fakeBilling) *App {
	return &App{
		auth:     auth,
		billing:  billing,
		exporter: export.NewExcelExporter(),
		log:      logging.NewTextLogger(io.Discard, false),
	}
}

// ---- tests ----

func TestApp_SitesListsAndCaches(t *testing.T) {
	lines := captureOutput(t)
	fb := &fakeBilling{sites: []models.Site{
		{ID: "1", Contract: "C1", SiteNumber: "SN1", Address: "Rua A", Status: "Active"},
	}}
	a := newTestApp(&fakeAuth{}, fb)

	require.NoError(t, a.Sites(context.Background()))
	assert.Len(t, a.sites, 1)

	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "SN1")
	assert.Contains(t, out, "Rua A")
}

func TestApp_SitesFailureShowsLocalizedMessage(t *testing.T) {
	lines := captureOutput(t)
	a := newTestApp(&fakeAuth{}, &fakeBilling{sitesErr: client.ErrNotAuthenticated})

	err := a.Sites(context.Background())
	require.ErrorIs(t, err, client.ErrNotAuthenticated)
	assert.Contains(t, strings.Join(*lines, "\n"), "Sessão não autenticada")
}

func TestApp_BillsFetchesSitesWhenListEmpty(t *testing.T) {
	captureOutput(t)
	fb := &fakeBilling{
		sites: []models.Site{{ID: "7", Contract: "C1", SiteNumber: "SN7"}},
		bills: []models.Bill{{BillIdentifier: "B1", Status: "Paid", DueDate: "2024-03-15"}},
	}
	a := newTestApp(&fakeAuth{}, fb)

	require.NoError(t, a.Bills(context.Background(), "1"))
	assert.Equal(t, "7", fb.lastSiteID)
	assert.Len(t, a.bills, 1)
	require.NotNil(t, a.selected)
	assert.Equal(t, "7", a.selected.ID)
}

func TestApp_ExportWithoutHistoryOnlyNotifies(t *testing.T) {
	lines := captureOutput(t)
	a := newTestApp(&fakeAuth{}, &fakeBilling{})

	require.NoError(t, a.Export(context.Background()))
	assert.Contains(t, strings.Join(*lines, "\n"), "Nenhum histórico carregado")
}

func TestApp_ExportWritesSpreadsheet(t *testing.T) {
	lines := captureOutput(t)
	t.Chdir(t.TempDir())

	a := newTestApp(&fakeAuth{}, &fakeBilling{})
	a.selected = &models.Site{SiteNumber: "SN9"}
	a.bills = []models.Bill{{BillIdentifier: "B1", Status: "Paid", DueDate: "2024-03-15", Value: 10}}

	require.NoError(t, a.Export(context.Background()))
	assert.Contains(t, strings.Join(*lines, "\n"), "historico_contas_SN9.xlsx")
}

func TestApp_LogoutForgetsViewState(t *testing.T) {
	captureOutput(t)
	a := newTestApp(&fakeAuth{session: models.Session{IsAuthenticated: true}}, &fakeBilling{})
	a.sites = []models.Site{{ID: "1"}}
	a.selected = &a.sites[0]
	a.bills = []models.Bill{{BillIdentifier: "B1"}}

	require.NoError(t, a.Logout(context.Background()))
	assert.Nil(t, a.sites)
	assert.Nil(t, a.selected)
	assert.Nil(t, a.bills)
	assert.False(t, a.isLoggedIn())
}

func TestApp_StatusUnauthenticated(t *testing.T) {
	lines := captureOutput(t)
	a := newTestApp(&fakeAuth{}, &fakeBilling{})

	require.NoError(t, a.Status(context.Background()))
	assert.Contains(t, strings.Join(*lines, "\n"), "Sessão não autenticada")
}

func TestApp_StatusAuthenticated(t *testing.T) {
	lines := captureOutput(t)
	a := newTestApp(&fakeAuth{session: models.Session{
		IsAuthenticated: true,
		AccessToken:     "opaque",
		Protocol:        "P",
		ProtocolID:      "PID",
		PartnerID:       "X",
		UserName:        "Ana",
		UserEmail:       "a@x.com",
	}}, &fakeBilling{})

	require.NoError(t, a.Status(context.Background()))
	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "a@x.com")
	assert.Contains(t, out, "PID")
}
