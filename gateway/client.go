// Package gateway wraps every outbound call to the inventory backend.
// The client authenticates once at startup, attaches the bearer token to
// all subsequent requests, and reports transport failures as
// *TransportError values. No retries; an expired token surfaces as a
// failed call, exactly like any other HTTP error.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"inventario-admin/models"
)

// TransportError reports a network or HTTP-layer failure of one backend call
type TransportError struct {
	Op     string // "fetch products", "place order", ...
	Status int    // HTTP status, 0 for network-level failures
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client is the HTTP client for the inventory backend
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	log        logrus.FieldLogger

	mu    sync.RWMutex
	token string
}

// NewClient creates a Client for the backend at baseURL. Authenticate must
// be called before any catalog or order operation.
func NewClient(baseURL, username, password string, timeout time.Duration, log logrus.FieldLogger) *Client {
	return &Client{
		baseURL:    baseURL,
		username:   username,
		password:   password,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Authenticate obtains a bearer token from POST /Auth/token and stores it
// for all subsequent requests. There is no refresh: a later 401 is
// surfaced to the caller, not retried.
func (c *Client) Authenticate(ctx context.Context) error {
	body, err := json.Marshal(models.TokenRequest{Username: c.username, Password: c.password})
	if err != nil {
		return &TransportError{Op: "authenticate", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/Auth/token", bytes.NewReader(body))
	if err != nil {
		return &TransportError{Op: "authenticate", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "authenticate", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return &TransportError{Op: "authenticate", Status: resp.StatusCode, Err: fmt.Errorf("%s", respBody)}
	}

	var tok models.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return &TransportError{Op: "authenticate", Err: err}
	}

	c.mu.Lock()
	c.token = tok.Token
	c.mu.Unlock()

	c.log.Info("✅ Token de autenticación obtenido")
	return nil
}

// doJSON issues one request with the stored bearer token, optionally
// marshalling payload as the JSON body and decoding the response into out
// (when out is non-nil).
func (c *Client) doJSON(ctx context.Context, op, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return &TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("%s", respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Op: op, Err: err}
		}
	}
	return nil
}
