// Package api is the HTTP client for the feedbackhub JSON API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/feedbackhub/internal/common"
)

// Error is a non-2xx response. It unwraps to the common sentinel matching
// its status code so callers can use errors.Is.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
}

func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return common.ErrValidation
	case http.StatusUnauthorized:
		return common.ErrAuth
	case http.StatusForbidden:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusConflict:
		return common.ErrConflict
	default:
		return common.ErrInternal
	}
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetToken sets the bearer token sent with authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		if jerr := json.Unmarshal(data, &er); jerr != nil || er.Error == "" {
			er.Error = strings.TrimSpace(string(data))
		}
		return &Error{Status: resp.StatusCode, Message: er.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, r RegisterRequest) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", r, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	in := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Managers(ctx context.Context) ([]ManagerItem, error) {
	var out []ManagerItem
	err := c.do(ctx, http.MethodGet, "/auth/managers", nil, &out)
	return out, err
}

// SubmitFeedback returns the id of the created record.
func (c *Client) SubmitFeedback(ctx context.Context, r SubmitRequest) (int64, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodPost, "/feedback/ab", r, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) MyFeedback(ctx context.Context) ([]Feedback, error) {
	var out []Feedback
	err := c.do(ctx, http.MethodGet, "/feedback/me", nil, &out)
	return out, err
}

func (c *Client) Acknowledge(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/feedback/%d/ack", id), nil, nil)
}

func (c *Client) UpdateFeedback(ctx context.Context, id int64, r UpdateRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/feedback/%d", id), r, nil)
}

func (c *Client) Team(ctx context.Context) ([]Person, error) {
	var out []Person
	err := c.do(ctx, http.MethodGet, "/manager/team", nil, &out)
	return out, err
}

func (c *Client) Dashboard(ctx context.Context) ([]DashboardRow, error) {
	var out []DashboardRow
	err := c.do(ctx, http.MethodGet, "/manager/dashboard", nil, &out)
	return out, err
}

// EmployeeFeedback lists feedback about one of the caller's employees,
// newest first when history is set.
func (c *Client) EmployeeFeedback(ctx context.Context, employeeID int64, history bool) ([]Feedback, error) {
	path := fmt.Sprintf("/manager/employee/%d/feedback", employeeID)
	if history {
		path += "-history"
	}
	var out []Feedback
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// IsStatus reports whether err is an API error with the given status.
func IsStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == status
}
