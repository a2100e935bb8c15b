// Package orderapi is the HTTP client side of the order gateway. It talks to
// the /v1/smart-orders and /v1/devices endpoints of a remote order service.
package orderapi

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
	"time"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase"
	"smartorders/internal/usecase/interfaces"
	"smartorders/pkg"
	"smartorders/pkg/reqctx"
)

var ErrUnauthorized = errors.New("order service rejected credentials")

// APIError is a non-2xx answer that has no more specific mapping.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("order service: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("order service: %d %s", e.Status, e.Message)
}

type Client struct {
	Base string
	HTTP *http.Client
}

var _ interfaces.IOrderGateway = (*Client)(nil)

func New(base string, timeout time.Duration) *Client {
	return &Client{
		Base: base,
		HTTP: &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListOrders(ctx context.Context) ([]entities.RemoteOrder, error) {
	var out []entities.RemoteOrder
	if err := c.do(ctx, http.MethodGet, "/v1/smart-orders", nil, &out, usecase.ErrOrderNotFound); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.RemoteOrder{}
	}
	return out, nil
}

// SaveOrder creates a draft record when id is 0, otherwise patches order id.
func (c *Client) SaveOrder(ctx context.Context, id int64, patch entities.OrderPatch) (entities.RemoteOrder, error) {
	var out entities.RemoteOrder
	err := c.do(ctx, http.MethodPut, "/v1/smart-orders/"+strconv.FormatInt(id, 10), patch, &out, usecase.ErrOrderNotFound)
	return out, err
}

func (c *Client) FormOrder(ctx context.Context, id int64) (entities.RemoteOrder, error) {
	var out entities.RemoteOrder
	err := c.do(ctx, http.MethodPut, "/v1/smart-orders/"+strconv.FormatInt(id, 10)+"/form", nil, &out, usecase.ErrOrderNotFound)
	return out, err
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/v1/smart-orders/"+strconv.FormatInt(id, 10), nil, nil, usecase.ErrOrderNotFound)
}

func (c *Client) ListDevices(ctx context.Context, filter entities.DeviceFilter) ([]entities.Device, error) {
	q := url.Values{}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Protocol != "" {
		q.Set("protocol", filter.Protocol)
	}
	path := "/v1/devices"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []entities.Device
	if err := c.do(ctx, http.MethodGet, path, nil, &out, usecase.ErrDeviceNotFound); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDevice(ctx context.Context, id int64) (entities.Device, error) {
	var out entities.Device
	err := c.do(ctx, http.MethodGet, "/v1/devices/"+strconv.FormatInt(id, 10), nil, &out, usecase.ErrDeviceNotFound)
	return out, err
}

// do sends body as JSON and decodes a 2xx answer into out. A 404 is reported
// as notFound.
func (c *Client) do(ctx context.Context, method, path string, body, out any, notFound error) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := reqctx.BearerFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return notFound
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return apiErr
	}
	var envelope pkg.HTTPError
	if json.Unmarshal(raw, &envelope) == nil && envelope.Message != "" {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
	}
	return apiErr
}
