// Package driverclient is the HTTP client the driver application uses to
// talk to the laundry service: listing errands, advancing them one step,
// and raising a bypass when counts disagree.
package driverclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/request"
	"launderly/internal/pkg/errs"
)

var (
	// ErrAdvanceInFlight is returned when an advance for the same request is
	// already on the wire. The caller should ignore the tap, not retry.
	ErrAdvanceInFlight = errors.New("advance already in flight for this request")

	// ErrRaiseInFlight is returned when a bypass raise for the same order is
	// already on the wire.
	ErrRaiseInFlight = errors.New("bypass raise already in flight for this order")

	// ErrStaleState is returned on a 409: the server state moved past the
	// client's view. The caller must refetch before acting again.
	ErrStaleState = errors.New("local request state is stale")
)

// RequestError is a non-2xx reply from the service that is not a staleness
// conflict. It carries the server's status code and message.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("laundry service returned %d: %s", e.StatusCode, e.Message)
}

// Client calls the laundry service HTTP API on behalf of a driver.
//
// Advance and RaiseBypass hold an in-process per-entity guard so that a
// double tap on the driver's button produces exactly one PATCH call. The
// guard is scoped to one request or one order at a time; calls for other
// entities proceed independently.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu       sync.Mutex
	inFlight map[kernel.UUID]struct{}
}

// NewClient creates a client for the service at baseURL.
// A nil httpClient falls back to a client with a 10 second timeout.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		inFlight:   make(map[kernel.UUID]struct{}),
	}, nil
}

type advanceBody struct {
	RequestID       string `json:"requestId"`
	Type            string `json:"type"`
	ExpectedVersion int    `json:"expectedVersion,omitempty"`
}

// Advance moves the errand one step along its path. expectedVersion is the
// version the driver last saw; pass 0 to skip the staleness token.
//
// While a call for requestID is on the wire, further calls for the same
// request fail immediately with ErrAdvanceInFlight and issue no network call.
// Calls for other requests are unaffected.
func (c *Client) Advance(ctx context.Context, requestID kernel.UUID, kind request.Kind, expectedVersion int) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	if err := kind.Validate(); err != nil {
		return err
	}

	if !c.acquire(requestID) {
		return ErrAdvanceInFlight
	}
	defer c.release(requestID)

	body := advanceBody{
		RequestID:       requestID.String(),
		Type:            kind.String(),
		ExpectedVersion: expectedVersion,
	}

	return c.do(ctx, http.MethodPatch, "/api/v1/request", body, http.StatusNoContent, nil)
}

type raiseBypassBody struct {
	OrderWorkerID string `json:"orderWorkerId"`
	BypassNote    string `json:"bypassNote"`
}

// RaiseBypass asks permission to process an order despite a count mismatch.
// The note is validated before any network call: blank notes never leave
// the device.
//
// While a call for orderID is on the wire, further calls for the same order
// fail immediately with ErrRaiseInFlight and issue no network call.
func (c *Client) RaiseBypass(ctx context.Context, orderID, orderWorkerID kernel.UUID, note string) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := orderWorkerID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(note) == "" {
		return errs.NewValueIsRequiredError("bypassNote")
	}

	if !c.acquire(orderID) {
		return ErrRaiseInFlight
	}
	defer c.release(orderID)

	body := raiseBypassBody{
		OrderWorkerID: orderWorkerID.String(),
		BypassNote:    note,
	}
	path := fmt.Sprintf("/api/v1/bypass/%s", orderID)

	return c.do(ctx, http.MethodPatch, path, body, http.StatusNoContent, nil)
}

// Request is one errand row as listed for the driver.
type Request struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customerName"`
	AddressLine  string    `json:"addressLine"`
	DistanceKm   float64   `json:"distanceKm"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RequestsPage is one page of errands plus the total row count.
type RequestsPage struct {
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PerPage  int       `json:"perPage"`
	Requests []Request `json:"requests"`
}

// ListRequests fetches a page of errands. kind filters by "pickup" or
// "delivery"; the empty string lists both. sortBy and order follow the
// service defaults when empty.
func (c *Client) ListRequests(ctx context.Context, kind string, page, perPage int, sortBy, order string) (RequestsPage, error) {
	params := url.Values{}
	if kind != "" {
		params.Set("type", kind)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		params.Set("perPage", strconv.Itoa(perPage))
	}
	if sortBy != "" {
		params.Set("sortBy", sortBy)
	}
	if order != "" {
		params.Set("order", order)
	}

	path := "/api/v1/request"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result RequestsPage
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &result); err != nil {
		return RequestsPage{}, err
	}
	return result, nil
}

func (c *Client) acquire(entityID kernel.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[entityID]; busy {
		return false
	}
	c.inFlight[entityID] = struct{}{}
	return true
}

func (c *Client) release(entityID kernel.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, entityID)
}

type errorReply struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// do issues one request and decodes the reply. A 409 becomes ErrStaleState,
// any other unexpected status becomes a *RequestError.
func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		if resp.StatusCode == http.StatusConflict {
			return ErrStaleState
		}

		var reply errorReply
		if decodeErr := json.NewDecoder(resp.Body).Decode(&reply); decodeErr != nil || reply.Message == "" {
			reply.Message = http.StatusText(resp.StatusCode)
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: reply.Message}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
