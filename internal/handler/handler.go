package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/stpnv0/SlotMatcher/internal/calendarfeed"
	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stpnv0/SlotMatcher/internal/handler/dto"
	"github.com/stpnv0/SlotMatcher/internal/navigation"
	"github.com/stpnv0/SlotMatcher/internal/registry"
	"github.com/stpnv0/SlotMatcher/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type SlotSvc interface {
	FetchActivityCatalog(ctx context.Context) []domain.Activity
	VenueCatalog(ctx context.Context, activityID string) ([]domain.Venue, error)
	FetchSlotList(ctx context.Context, userID string) []domain.SlotSummary
	FetchSlotDetail(ctx context.Context, userID, slotID string) (*domain.Slot, error)
	RegisterSlot(ctx context.Context, userID string, input domain.RegisterSlotInput) (*domain.Registration, error)
}

type WatchSvc interface {
	Start(ctx context.Context, userID, slotID string) (string, error)
	Get(id string) (*service.WatchSnapshot, error)
	Stop(id string) error
}

type CalendarEncoder interface {
	Encode(w io.Writer, userID string, slots []domain.SlotSummary) error
}

type Handler struct {
	slotService  SlotSvc
	watchService WatchSvc
	feed         CalendarEncoder
	navigator    *navigation.Navigator
}

func NewHandler(slotService SlotSvc, watchService WatchSvc, feed CalendarEncoder, navigator *navigation.Navigator) *Handler {
	return &Handler{
		slotService:  slotService,
		watchService: watchService,
		feed:         feed,
		navigator:    navigator,
	}
}

// Activities
func (h *Handler) ListActivities(c *ginext.Context) {
	activities := h.slotService.FetchActivityCatalog(c.Request.Context())

	resp := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, dto.ToActivityResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.slotService.VenueCatalog(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

// Calendar

func (h *Handler) GetCalendar(c *ginext.Context) {
	reg := h.loadRegistry(c)

	slots := reg.Slots()
	resp := make([]dto.SlotSummaryResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotSummaryResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ExportCalendar(c *ginext.Context) {
	reg := h.loadRegistry(c)

	var buf bytes.Buffer
	if err := h.feed.Encode(&buf, c.Param("userId"), reg.Slots()); err != nil {
		if errors.Is(err, calendarfeed.ErrEmptyFeed) {
			c.Status(http.StatusNoContent)
			return
		}
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

func (h *Handler) ResolveDate(c *ginext.Context) {
	date := c.Param("date")
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	reg := h.loadRegistry(c)
	route := h.navigator.Resolve(date, reg.Lookup(date))

	c.JSON(http.StatusOK, dto.ToRouteResponse(route))
}

// Slots

func (h *Handler) GetSlot(c *ginext.Context) {
	slot, err := h.slotService.FetchSlotDetail(c.Request.Context(), c.Param("userId"), c.Param("slotId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotDetailResponse(slot))
}

func (h *Handler) RegisterSlot(c *ginext.Context) {
	var req dto.RegisterSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterSlotInput{
		ActivityID:     req.ActivityID,
		Date:           req.Date,
		TimeOfDay:      domain.TimeOfDay(req.TimeOfDay),
		Intensity:      domain.Intensity(req.Intensity),
		OwnerGroupSize: req.OwnerGroupSize,
	}

	reg, err := h.slotService.RegisterSlot(c.Request.Context(), c.Param("userId"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

// Watches

func (h *Handler) StartWatch(c *ginext.Context) {
	id, err := h.watchService.Start(c.Request.Context(), c.Param("userId"), c.Param("slotId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.WatchCreatedResponse{ID: id})
}

func (h *Handler) GetWatch(c *ginext.Context) {
	snap, err := h.watchService.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWatchResponse(snap))
}

func (h *Handler) StopWatch(c *ginext.Context) {
	if err := h.watchService.Stop(c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Session

func (h *Handler) SignOut(c *ginext.Context) {
	route, err := h.navigator.SignOut(c.Request.Context())
	if err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "sign out failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRouteResponse(route))
}

func (h *Handler) loadRegistry(c *ginext.Context) *registry.Registry {
	reg := registry.New(h.slotService)
	reg.Load(c.Request.Context(), c.Param("userId"))
	return reg
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrWatchNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRegistrationFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: domain.ErrRegistrationFailed.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
