package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alans123s/billtrackery/internal/client/models"
)

const (
	testAPIKey  = "test-key"
	testChannel = "App"
)

var testCreds = models.Credentials{
	AccessToken: "T",
	Protocol:    "P",
	ProtocolID:  "PID",
	PartnerID:   "PARTNER",
}

// capturedRequest records what the server saw for header/body assertions.
type capturedRequest struct {
	header http.Header
	body   map[string]any
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*GraphQLClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewGraphQLClient(srv.URL, testAPIKey, testChannel, 5*time.Second)
	t.Cleanup(func() { _ = c.Close() })
	return c, srv
}

func captureHandler(t *testing.T, captured *capturedRequest, status int, response string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		captured.header = r.Header.Clone()
		var body map[string]any
		// decode errors surface through the body assertions in the test
		_ = json.NewDecoder(r.Body).Decode(&body)
		captured.body = body
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}
}

func TestLogin_Success(t *testing.T) {
	var captured capturedRequest
	resp := `{"data":{"login":{
		"token":{"accessToken":"T","refreshToken":"R"},
		"protocol":{"protocol":"P","protocolId":"PID","pId":"PARTNER","name":"Ana"},
		"user":{"name":"Ana","email":"a@x.com"}
	}}}`
	c, _ := newTestClient(t, captureHandler(t, &captured, http.StatusOK, resp))

	res, err := c.Login(context.Background(), "123", "abc")
	require.NoError(t, err)

	assert.Equal(t, "T", res.Token.AccessToken)
	assert.Equal(t, "R", res.Token.RefreshToken)
	assert.Equal(t, "P", res.Protocol.Protocol)
	assert.Equal(t, "PID", res.Protocol.ProtocolID)
	assert.Equal(t, "PARTNER", res.Protocol.PID)
	assert.Equal(t, "Ana", res.User.Name)
	assert.Equal(t, "a@x.com", res.User.Email)

	// Unauthenticated request: constant headers only, no bearer token.
	assert.Equal(t, "application/json", captured.header.Get("Content-Type"))
	assert.Equal(t, testAPIKey, captured.header.Get("api-key"))
	assert.Equal(t, testChannel, captured.header.Get("channel"))
	assert.Empty(t, captured.header.Get("Authorization"))

	assert.Equal(t, "Login", captured.body["operationName"])
	vars := captured.body["variables"].(map[string]any)["loginDTO"].(map[string]any)
	assert.Equal(t, "123", vars["document"])
	assert.Equal(t, "abc", vars["password"])
}

func TestLogin_MissingDataPath(t *testing.T) {
	var captured capturedRequest
	c, _ := newTestClient(t, captureHandler(t, &captured, http.StatusOK, `{"data":{}}`))

	_, err := c.Login(context.Background(), "123", "abc")
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSiteList_SendsAuthHeaders(t *testing.T) {
	var captured capturedRequest
	resp := `{"data":{"siteListByBusinessPartnerV2":{"sites":[
		{"id":"1","clientNumber":"CN","siteNumber":"SN","address":"Rua A","status":"Active","owner":true,"contract":"C1","contractAccount":"CA"}
	]}}}`
	c, _ := newTestClient(t, captureHandler(t, &captured, http.StatusOK, resp))

	sites, err := c.SiteList(context.Background(), testCreds)
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, models.Site{
		ID: "1", ClientNumber: "CN", SiteNumber: "SN", Address: "Rua A",
		Status: "Active", Owner: true, Contract: "C1", ContractAccount: "CA",
	}, sites[0])

	assert.Equal(t, "Bearer T", captured.header.Get("Authorization"))
	assert.Equal(t, "PARTNER", captured.header.Get("p-id"))
	assert.Equal(t, "P", captured.header.Get("protocol"))
	assert.Equal(t, "PID", captured.header.Get("protocol-id"))
	assert.Equal(t, "PF", captured.header.Get("protocol-type"))
	assert.Equal(t, testAPIKey, captured.header.Get("api-key"))
	assert.Equal(t, "SiteListByBusinessPartnerV2", captured.body["operationName"])
}

func TestSiteList_EmptyListIsNotAnError(t *testing.T) {
	var captured capturedRequest
	c, _ := newTestClient(t, captureHandler(t, &captured, http.StatusOK,
		`{"data":{"siteListByBusinessPartnerV2":{"sites":[]}}}`))

	sites, err := c.SiteList(context.Background(), testCreds)
	require.NoError(t, err)
	assert.Empty(t, sites)
}

func TestSiteList_MissingDataPath(t *testing.T) {
	var captured capturedRequest
	c, _ := newTestClient(t, captureHandler(t, &captured, http.StatusOK, `{"data":{"somethingElse":{}}}`))

	_, err := c.SiteList(context.Background(), testCreds)
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestBillsHistory_Success(t *testing.T) {
	var captured capturedRequest
	resp := `{"data":{"billsHistory":{"bills":[
		{"billIdentifier":"B1","status":"Paid","value":142.5,"referenceMonth":"03/2024",
		 "site":{"id":"1","contract":"C1"},"dueDate":"2024-03-15","consumption":250}
	]}}}`
	c, _ := newTestClient(t, captureHandler(t, &captured, http.StatusOK, resp))

	bills, err := c.BillsHistory(context.Background(), testCreds, "1")
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "B1", bills[0].BillIdentifier)
	assert.Equal(t, 142.5, bills[0].Value)
	assert.Equal(t, "C1", bills[0].Site.Contract)

	vars := captured.body["variables"].(map[string]any)["billsHistoryInput"].(map[string]any)
	assert.Equal(t, "1", vars["siteId"])
	assert.Equal(t, "BillsHistory", captured.body["operationName"])
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "401 invalid credentials", status: http.StatusUnauthorized, want: ErrInvalidCredentials},
		{name: "403 unauthorized", status: http.StatusForbidden, want: ErrUnauthorized},
		{name: "429 rate limited", status: http.StatusTooManyRequests, want: ErrRateLimited},
		{name: "500 server error", status: http.StatusInternalServerError, want: ErrServer},
		{name: "503 server error", status: http.StatusServiceUnavailable, want: ErrServer},
		{name: "404 unexpected", status: http.StatusNotFound, want: ErrUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured capturedRequest
			c, _ := newTestClient(t, captureHandler(t, &captured, tt.status, `{}`))

			_, err := c.SiteList(context.Background(), testCreds)
			require.ErrorIs(t, err, tt.want)

			_, err = c.Login(context.Background(), "123", "abc")
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPost_UndecodableBody(t *testing.T) {
	var captured capturedRequest
	c, _ := newTestClient(t, captureHandler(t, &captured, http.StatusOK, `not json`))

	_, err := c.BillsHistory(context.Background(), testCreds, "1")
	require.ErrorIs(t, err, ErrUnexpected)
}

func TestPost_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	c := NewGraphQLClient(srv.URL, testAPIKey, testChannel, time.Second)

	_, err := c.Login(context.Background(), "123", "abc")
	require.ErrorIs(t, err, ErrUnexpected)
}
