package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alans123s/billtrackery/internal/client/models"
)

// Header names and constant values the backend expects on every request.
const (
	headerAPIKey       = "api-key"
	headerChannel      = "channel"
	headerPartnerID    = "p-id"
	headerProtocol     = "protocol"
	headerProtocolID   = "protocol-id"
	headerProtocolType = "protocol-type"

	protocolTypePF = "PF"
)

// GraphQLClient talks to the single billing GraphQL endpoint over HTTPS.
type GraphQLClient struct {
	endpointURL string
	apiKey      string
	channel     string
	httpClient  *http.Client
}

// NewGraphQLClient builds a client for the given endpoint. A zero timeout
// leaves the transport without a deadline.
func NewGraphQLClient(endpointURL, apiKey, channel string, timeout time.Duration) *GraphQLClient {
	return &GraphQLClient{
		endpointURL: endpointURL,
		apiKey:      apiKey,
		channel:     channel,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type graphQLRequest struct {
	OperationName string `json:"operationName"`
	Variables     any    `json:"variables"`
	Query         string `json:"query"`
}

// post executes one GraphQL request and decodes the body into out.
// creds == nil sends an unauthenticated request (login only).
func (c *GraphQLClient) post(ctx context.Context, reqBody graphQLRequest, creds *models.Credentials, out any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("%w: encoding request: %v", ErrUnexpected, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: building request: %v", ErrUnexpected, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerChannel, c.channel)
	if creds != nil {
		req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
		req.Header.Set(headerPartnerID, creds.PartnerID)
		req.Header.Set(headerProtocol, creds.Protocol)
		req.Header.Set(headerProtocolID, creds.ProtocolID)
		req.Header.Set(headerProtocolType, protocolTypePF)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpected, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return mapStatus(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUnexpected, err)
	}
	return nil
}

// mapStatus converts an HTTP status into a failure category.
func mapStatus(code int) error {
	switch {
	case code == http.StatusUnauthorized:
		return ErrInvalidCredentials
	case code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code >= http.StatusInternalServerError:
		return ErrServer
	default:
		return fmt.Errorf("%w: status %d", ErrUnexpected, code)
	}
}

// Login authenticates with a document number and password. No prior auth.
func (c *GraphQLClient) Login(ctx context.Context, document string, password string) (*models.LoginResult, error) {
	reqBody := graphQLRequest{
		OperationName: loginOperationName,
		Variables: map[string]any{
			"loginDTO": map[string]string{
				"document": document,
				"password": password,
			},
		},
		Query: loginQuery,
	}

	var env struct {
		Data struct {
			Login *models.LoginResult `json:"login"`
		} `json:"data"`
	}
	if err := c.post(ctx, reqBody, nil, &env); err != nil {
		return nil, err
	}
	if env.Data.Login == nil {
		return nil, ErrInvalidResponse
	}
	return env.Data.Login, nil
}

// SiteList fetches every installation visible to the authenticated customer.
func (c *GraphQLClient) SiteList(ctx context.Context, creds models.Credentials) ([]models.Site, error) {
	reqBody := graphQLRequest{
		OperationName: siteListOperationName,
		Variables: map[string]any{
			"input": map[string]any{},
		},
		Query: siteListQuery,
	}

	var env struct {
		Data struct {
			SiteList *struct {
				Sites []models.Site `json:"sites"`
			} `json:"siteListByBusinessPartnerV2"`
		} `json:"data"`
	}
	if err := c.post(ctx, reqBody, &creds, &env); err != nil {
		return nil, err
	}
	if env.Data.SiteList == nil || env.Data.SiteList.Sites == nil {
		return nil, ErrInvalidResponse
	}
	return env.Data.SiteList.Sites, nil
}

// BillsHistory fetches the bill history of one site.
func (c *GraphQLClient) BillsHistory(ctx context.Context, creds models.Credentials, siteID string) ([]models.Bill, error) {
	reqBody := graphQLRequest{
		OperationName: billsHistoryOperationName,
		Variables: map[string]any{
			"billsHistoryInput": map[string]string{
				"siteId": siteID,
			},
		},
		Query: billsHistoryQuery,
	}

	var env struct {
		Data struct {
			BillsHistory *struct {
				Bills []models.Bill `json:"bills"`
			} `json:"billsHistory"`
		} `json:"data"`
	}
	if err := c.post(ctx, reqBody, &creds, &env); err != nil {
		return nil, err
	}
	if env.Data.BillsHistory == nil || env.Data.BillsHistory.Bills == nil {
		return nil, ErrInvalidResponse
	}
	return env.Data.BillsHistory.Bills, nil
}

// Close releases idle transport connections.
func (c *GraphQLClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
