package backend

import (
	"context"
	"errors"
	"net/http"

	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stpnv0/SlotMatcher/internal/matching"
	"github.com/wb-go/wbf/ginext"
)

type MatchingSvc interface {
	ListHobbies(ctx context.Context) ([]*domain.Hobby, error)
	ListCalendars(ctx context.Context, userID string) ([]*domain.Calendar, error)
	Register(ctx context.Context, userID string, input domain.RegisterSlotInput) (*domain.Calendar, error)
	Detail(ctx context.Context, userID, calendarID string) (*domain.CalendarDetail, error)
}

// Handler speaks the matching service wire format shared with internal/matching.
type Handler struct {
	service MatchingSvc
}

func NewHandler(service MatchingSvc) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListHobbies(c *ginext.Context) {
	hobbies, err := h.service.ListHobbies(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]matching.Hobby, 0, len(hobbies))
	for _, hb := range hobbies {
		resp = append(resp, matching.Hobby{HobbyID: matching.ID(hb.ID), Name: hb.Name})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListCalendars(c *ginext.Context) {
	calendars, err := h.service.ListCalendars(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]matching.CalendarItem, 0, len(calendars))
	for _, cal := range calendars {
		status := string(cal.Status)
		resp = append(resp, matching.CalendarItem{
			CalendarID: matching.ID(cal.ID),
			Date:       cal.Date,
			Status:     &status,
		})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCalendar(c *ginext.Context) {
	d, err := h.service.Detail(c.Request.Context(), c.Param("userId"), c.Param("calendarId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCalendarDetail(d))
}

func (h *Handler) Register(c *ginext.Context) {
	var req matching.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": err.Error()})
		return
	}

	input := domain.RegisterSlotInput{
		ActivityID:     string(req.HobbyID),
		Date:           req.Date,
		TimeOfDay:      domain.TimeOfDay(req.TimeSlot),
		Intensity:      domain.Intensity(req.Intensity),
		OwnerGroupSize: req.Attendees,
	}

	cal, err := h.service.Register(c.Request.Context(), string(req.UserID), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := string(cal.Status)
	c.JSON(http.StatusCreated, matching.RegisterResponse{
		CalendarID: matching.ID(cal.ID),
		Status:     &status,
	})
}

func toCalendarDetail(d *domain.CalendarDetail) matching.CalendarDetail {
	attendees := d.Calendar.Attendees
	count := d.PoolCount
	status := string(d.Calendar.Status)

	shops := make([]matching.Shop, 0, len(d.Venues))
	for _, v := range d.Venues {
		shops = append(shops, matching.Shop{Name: v.Name, Address: v.Address})
	}

	return matching.CalendarDetail{
		UserID:      matching.ID(d.Calendar.UserID),
		HobbyID:     matching.ID(d.Calendar.HobbyID),
		Date:        d.Calendar.Date,
		TimeSlot:    string(d.Calendar.TimeSlot),
		Intensity:   string(d.Calendar.Intensity),
		MinCapacity: d.Hobby.MinCapacity,
		MaxCapacity: d.Hobby.MaxCapacity,
		Attendees:   &attendees,
		Count:       &count,
		Status:      &status,
		Shops:       shops,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, ginext.H{"error": err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, ginext.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
	}
}
