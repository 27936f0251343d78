// Package calendarfeed exports a user's slots as an iCalendar feed.
package calendarfeed

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stpnv0/SlotMatcher/internal/domain"
)

const (
	productID = "-//slotmatcher//EN"
	uidDomain = "slotmatcher"
)

// ErrEmptyFeed is returned when no slot has a usable date; an iCalendar
// object needs at least one component.
var ErrEmptyFeed = errors.New("calendar feed has no events")

type Encoder struct {
	now func() time.Time
}

type Option func(*Encoder)

func WithClock(now func() time.Time) Option {
	return func(e *Encoder) { e.now = now }
}

func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes one all-day event per slot. Slots with a date that does not
// parse are skipped.
func (e *Encoder) Encode(w io.Writer, userID string, slots []domain.SlotSummary) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	stamp := e.now().UTC()
	for _, s := range slots {
		day, err := time.Parse(domain.DateLayout, s.Date)
		if err != nil {
			continue
		}
		cal.Children = append(cal.Children, toEvent(userID, s, day, stamp))
	}
	if len(cal.Children) == 0 {
		return ErrEmptyFeed
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}

func toEvent(userID string, s domain.SlotSummary, day, stamp time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%s@%s", userID, s.ID, uidDomain))
	ve.Props.SetText(ical.PropSummary, fmt.Sprintf("Activity slot (%s)", s.Status))
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	ve.Props.SetDate(ical.PropDateTimeStart, day)
	ve.Props.SetDate(ical.PropDateTimeEnd, day.AddDate(0, 0, 1))
	ve.Props.SetText(ical.PropStatus, eventStatus(s.Status))
	return ve
}

func eventStatus(s domain.SlotStatus) string {
	switch s {
	case domain.SlotStatusMatched:
		return "CONFIRMED"
	case domain.SlotStatusClosed, domain.SlotStatusCancelled:
		return "CANCELLED"
	default:
		return "TENTATIVE"
	}
}
