package assignmenthttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/model/order"
	"partner/internal/core/ports"
	"partner/internal/pkg/errs"
)

// Client is the HTTP implementation of ports.AssignmentClient.
//
// Requests are executed exactly once. Retrying mutating operations would risk
// double submission on the service side, and the periodic refresh already
// recovers from transient read failures, so the client never retries on its
// own.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// HTTPError carries a non-2xx response from the assignment service.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("assignment service returned %d: %s", e.StatusCode, e.Message)
}

// NewClient creates a Client for the assignment service at baseURL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// ListOrders implements ports.AssignmentClient.
func (c *Client) ListOrders(
	ctx context.Context, partnerID kernel.UUID, statusFilter *order.Status,
) ([]*order.Order, error) {
	path := fmt.Sprintf("/api/v1/partners/%s/orders", partnerID)
	if statusFilter != nil {
		path += "?status=" + url.QueryEscape(statusFilter.String())
	}

	var dtos []orderDTO
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// Accept implements ports.AssignmentClient.
func (c *Client) Accept(ctx context.Context, assignmentID, partnerID kernel.UUID) (*order.Order, error) {
	path := fmt.Sprintf("/api/v1/assignments/%s/accept", assignmentID)
	body := acceptRequest{PartnerID: partnerID.String()}

	var dto orderDTO
	if err := c.doRequest(ctx, http.MethodPost, path, body, &dto); err != nil {
		return nil, c.mapNotFound(err, assignmentID)
	}

	return toDomain(dto)
}

// Reject implements ports.AssignmentClient.
func (c *Client) Reject(
	ctx context.Context, assignmentID, partnerID kernel.UUID, reason string,
) (kernel.UUID, error) {
	path := fmt.Sprintf("/api/v1/assignments/%s/reject", assignmentID)
	body := rejectRequest{PartnerID: partnerID.String(), Reason: reason}

	var resp rejectResponse
	if err := c.doRequest(ctx, http.MethodPost, path, body, &resp); err != nil {
		return kernel.UUID{}, c.mapNotFound(err, assignmentID)
	}

	return kernel.UUIDFromString(resp.AssignmentID)
}

// UpdateStatus implements ports.AssignmentClient.
func (c *Client) UpdateStatus(
	ctx context.Context, assignmentID, partnerID kernel.UUID, newStatus order.Status,
) (*order.Order, error) {
	path := fmt.Sprintf("/api/v1/assignments/%s/status", assignmentID)
	body := updateStatusRequest{PartnerID: partnerID.String(), Status: newStatus.String()}

	var dto orderDTO
	if err := c.doRequest(ctx, http.MethodPost, path, body, &dto); err != nil {
		return nil, c.mapNotFound(err, assignmentID)
	}

	return toDomain(dto)
}

// doRequest executes a single HTTP request and decodes the response into
// target. Non-2xx responses become an *HTTPError with the service's message.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, target any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp errorResponse
		if jsonErr := json.Unmarshal(respBody, &errResp); jsonErr != nil || errResp.Message == "" {
			errResp.Message = string(respBody)
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	if target != nil {
		if err := json.Unmarshal(respBody, target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// mapNotFound converts a 404 into the domain's not-found error so callers can
// match on errs.ErrObjectNotFound without knowing the transport.
func (c *Client) mapNotFound(err error, assignmentID kernel.UUID) error {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
		return errs.NewObjectNotFoundErrorWithCause("assignmentID", assignmentID, err)
	}
	return err
}

var _ ports.AssignmentClient = (*Client)(nil)
