// Package matching is the HTTP client of the remote matching service.
package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stpnv0/SlotMatcher/internal/metrics"
)

const defaultTimeout = 10 * time.Second

const (
	opListSlots      = "list slots"
	opSlotDetail     = "get slot detail"
	opListActivities = "list activities"
	opRegisterSlot   = "register slot"
)

// Endpoints holds the service base URL and optional per-operation overrides.
// An empty override falls back to BaseURL.
type Endpoints struct {
	BaseURL    string
	SlotList   string
	SlotDetail string
	Activities string
	Register   string
}

func (e Endpoints) pick(override string) string {
	if override != "" {
		return strings.TrimRight(override, "/")
	}
	return strings.TrimRight(e.BaseURL, "/")
}

type Client struct {
	endpoints Endpoints
	http      *resty.Client
}

func New(endpoints Endpoints, opts ...Option) (*Client, error) {
	if endpoints.BaseURL == "" {
		return nil, ErrNoEndpoint
	}

	c := &Client{
		endpoints: endpoints,
		http: resty.New().
			SetTimeout(defaultTimeout).
			SetHeader("Accept", "application/json"),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	return c, nil
}

func (c *Client) ListSlots(ctx context.Context, userID string) ([]domain.SlotSummary, error) {
	endpoint := fmt.Sprintf("%s/users/%s/calendars",
		c.endpoints.pick(c.endpoints.SlotList), url.PathEscape(userID))

	var items []CalendarItem
	if err := c.do(ctx, opListSlots, c.http.R().SetContext(ctx), resty.MethodGet, endpoint, &items); err != nil {
		return nil, err
	}

	res := make([]domain.SlotSummary, 0, len(items))
	for _, item := range items {
		res = append(res, toSummary(item))
	}

	return res, nil
}

func (c *Client) GetSlotDetail(ctx context.Context, userID, slotID string) (*domain.Slot, error) {
	endpoint := fmt.Sprintf("%s/users/%s/calendars/%s",
		c.endpoints.pick(c.endpoints.SlotDetail), url.PathEscape(userID), url.PathEscape(slotID))

	var detail CalendarDetail
	if err := c.do(ctx, opSlotDetail, c.http.R().SetContext(ctx), resty.MethodGet, endpoint, &detail); err != nil {
		return nil, err
	}

	slot := toSlot(slotID, detail)
	return &slot, nil
}

func (c *Client) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	endpoint := c.endpoints.pick(c.endpoints.Activities) + "/hobbies"

	var hobbies []Hobby
	if err := c.do(ctx, opListActivities, c.http.R().SetContext(ctx), resty.MethodGet, endpoint, &hobbies); err != nil {
		return nil, err
	}

	res := make([]domain.Activity, 0, len(hobbies))
	for _, h := range hobbies {
		res = append(res, toActivity(h))
	}

	return res, nil
}

func (c *Client) RegisterSlot(ctx context.Context, userID string, in domain.RegisterSlotInput) (*domain.Registration, error) {
	endpoint := c.endpoints.pick(c.endpoints.Register) + "/forms"

	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(toRegisterRequest(userID, in))

	var out RegisterResponse
	if err := c.do(ctx, opRegisterSlot, req, resty.MethodPost, endpoint, &out); err != nil {
		return nil, err
	}

	id := pickID(out.CalendarID, out.LegacyID)
	if id == "" {
		return nil, fmt.Errorf("%s: response carries no calendar id", opRegisterSlot)
	}

	status := statusOf(out.Status)
	if status == domain.SlotStatusUnknown {
		status = domain.SlotStatusRecruiting
	}

	return &domain.Registration{SlotID: id, Status: status}, nil
}

// do executes req and decodes a 2xx JSON body into out. A non-JSON body is a failure
// even with a 2xx status, so decoding is done here rather than through SetResult.
func (c *Client) do(ctx context.Context, op string, req *resty.Request, method, endpoint string, out any) (err error) {
	defer func() {
		outcome := metrics.OutcomeOK
		if err != nil {
			outcome = metrics.OutcomeError
		}
		metrics.RemoteRequestsTotal.WithLabelValues(op, outcome).Inc()
	}()

	if err = ctx.Err(); err != nil {
		return err
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !resp.IsSuccess() {
		return newStatusError(op, resp.StatusCode(), resp.Body())
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}

	return nil
}
