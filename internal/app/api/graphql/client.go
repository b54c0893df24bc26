// Package graphql is the transport to the remote project-management API.
//
// Every screen in this app reads and writes through this package; the client
// holds no data of its own. One endpoint serves named query/mutation
// operations over HTTP POST, and the same schema's subscriptions arrive over
// a websocket (see subscriptions.go).
//
// The server may return partial data together with errors. Callers get both:
// the decoded data (as far as it went) plus the server's error messages, and
// are expected to render whatever arrived rather than failing closed.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Client talks to one remote GraphQL endpoint.
type Client struct {
	httpURL string
	wsURL   string
	hc      *http.Client
	log     *zap.Logger
}

// New builds a client for the given HTTP and websocket endpoint URLs.
// The zero-value http.Client is used when hc is nil.
func New(httpURL, wsURL string, hc *http.Client, logger *zap.Logger) *Client {
	if hc == nil {
		hc = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpURL: httpURL,
		wsURL:   wsURL,
		hc:      hc,
		log:     logger,
	}
}

// request is the standard GraphQL POST envelope.
type request struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// serverError is one entry of the response-level errors list.
type serverError struct {
	Message string `json:"message"`
}

// response is the standard GraphQL response envelope. Data is decoded lazily
// so partial data survives alongside errors.
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []serverError   `json:"errors"`
}

// Do executes one named operation and decodes the data object into out.
//
// The returned slice holds server-reported error messages (one per violated
// rule); it can be non-empty while out is still partially populated. A
// non-nil error means the transport itself failed (network, bad status,
// undecodable body) and out is untouched.
func (c *Client) Do(ctx context.Context, operationName, document string, variables map[string]any, out any) ([]string, error) {
	body, err := json.Marshal(request{
		OperationName: operationName,
		Query:         document,
		Variables:     variables,
	})
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", operationName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.httpURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operationName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn("api request failed",
			zap.String("operation", operationName),
			zap.Error(err))
		return nil, fmt.Errorf("send %s: %w", operationName, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", operationName, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("api returned non-200",
			zap.String("operation", operationName),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%s: api returned status %d", operationName, resp.StatusCode)
	}

	var envelope response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", operationName, err)
	}

	var msgs []string
	for _, e := range envelope.Errors {
		msgs = append(msgs, e.Message)
	}

	if out != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return msgs, fmt.Errorf("decode %s data: %w", operationName, err)
		}
	}

	return msgs, nil
}

// Messages folds a transport error and server errors into one displayable
// list. Transport failures become a single generic entry, per the error
// taxonomy: the user sees "something broke", not a stack trace.
func Messages(serverErrs []string, err error) []string {
	if err != nil {
		return append([]string{"The server could not be reached. Please try again."}, serverErrs...)
	}
	return serverErrs
}
