package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"Courier/Models"
)

// Client talks to a running email service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SendResult is the relay outcome inside a successful response.
type SendResult struct {
	MessageID string `json:"messageId"`
}

// SendResponse is the body of a successful send.
type SendResponse struct {
	Message string     `json:"message"`
	Result  SendResult `json:"result"`
}

// SendEmail validates the draft, encodes it together with the
// attachments and posts it. A draft that fails validation is rejected
// before any request is made.
func (c *Client) SendEmail(ctx context.Context, draft Draft, attachments []Attachment) (*SendResponse, error) {
	if errs := draft.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("draft is not submittable: %s", joinFieldErrors(errs))
	}

	body, contentType, err := EncodeDraft(draft, attachments)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/send-email", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var out SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}
	return &out, nil
}

// GetEmails fetches every send record in creation order.
func (c *Client) GetEmails(ctx context.Context) ([]Models.Email, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/emails", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var emails []Models.Email
	if err := json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}
	return emails, nil
}

// GetEmail fetches one send record by identifier.
func (c *Client) GetEmail(ctx context.Context, id int) (*Models.Email, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/emails/%d", c.BaseURL, id), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var email Models.Email
	if err := json.NewDecoder(resp.Body).Decode(&email); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}
	return &email, nil
}

// responseError surfaces the server's message string unmodified when one
// is present.
func responseError(resp *http.Response) error {
	payload, _ := io.ReadAll(resp.Body)

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Message != "" {
		return errors.New(body.Message)
	}
	return fmt.Errorf("server responded with status %d", resp.StatusCode)
}

func joinFieldErrors(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, errs[field]))
	}
	return strings.Join(parts, "; ")
}
