package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"calcpad/internal/domain"
)

// HTTP is a calcpad API client.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base. A nil client uses
// http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// Press runs script against state on the server and returns the next state.
func (c *HTTP) Press(ctx context.Context, state domain.State, script string) (domain.State, error) {
	var out domain.PressResponse
	if err := c.post(ctx, "/api/press", domain.PressRequest{State: state, Script: script}, &out); err != nil {
		return domain.State{}, err
	}
	return out.State, nil
}

// Evaluate asks the server to evaluate a op b.
func (c *HTTP) Evaluate(ctx context.Context, a, b string, op domain.Operation) (string, error) {
	var out domain.EvaluateResponse
	if err := c.post(ctx, "/api/evaluate", domain.EvaluateRequest{A: a, B: b, Op: op}, &out); err != nil {
		return "", err
	}
	return out.Result, nil
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return statusError(http.MethodPost, path, resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// statusError builds an error from a non-2xx response, including the
// server's error message when the body carries one.
func statusError(method, path string, resp *http.Response) error {
	var body domain.ErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return fmt.Errorf("calcpad %s %s: %s: %s", method, path, resp.Status, body.Error)
	}
	return fmt.Errorf("calcpad %s %s: %s", method, path, resp.Status)
}

var _ domain.Calculator = (*HTTP)(nil)
