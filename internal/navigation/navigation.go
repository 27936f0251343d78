// Package navigation decides which screen a selected calendar date leads to.
package navigation

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stpnv0/SlotMatcher/internal/domain"
)

type Target string

const (
	TargetRegistration Target = "register"
	TargetLifecycle    Target = "recruiting"
	TargetProposal     Target = "proposal"
	TargetSignIn       Target = "signin"
)

// Route carries the date and slot id through to the next screen untouched.
type Route struct {
	Target Target `json:"target"`
	Date   string `json:"date,omitempty"`
	SlotID string `json:"slot_id,omitempty"`
}

// Resolve is a pure function of the selected date and its slot projection.
// closed and cancelled slots reopen the date for registration.
func Resolve(date string, slot domain.SlotSummary) Route {
	r := Route{Date: date}

	switch slot.Status {
	case domain.SlotStatusRecruiting:
		r.Target = TargetLifecycle
	case domain.SlotStatusMatched:
		r.Target = TargetProposal
	default:
		r.Target = TargetRegistration
	}

	if slot.Status != domain.SlotStatusUnknown && slot.ID != "" {
		r.SlotID = slot.ID
	}

	return r
}

// Path renders the route the way the web client expects it.
func (r Route) Path() string {
	q := url.Values{}
	if r.Date != "" {
		q.Set("date", r.Date)
	}
	if r.SlotID != "" {
		q.Set("calendarId", r.SlotID)
	}

	if len(q) == 0 {
		return "/" + string(r.Target)
	}
	return fmt.Sprintf("/%s?%s", r.Target, q.Encode())
}

// SignOutFunc ends the user's session with the identity provider.
type SignOutFunc func(ctx context.Context) error

// Navigator holds the capabilities navigation needs beyond pure routing.
type Navigator struct {
	signOut SignOutFunc
}

func NewNavigator(signOut SignOutFunc) *Navigator {
	return &Navigator{signOut: signOut}
}

func (n *Navigator) Resolve(date string, slot domain.SlotSummary) Route {
	return Resolve(date, slot)
}

// SignOut runs the injected capability and, on success, routes to sign-in.
func (n *Navigator) SignOut(ctx context.Context) (Route, error) {
	if n.signOut != nil {
		if err := n.signOut(ctx); err != nil {
			return Route{}, fmt.Errorf("sign out: %w", err)
		}
	}
	return Route{Target: TargetSignIn}, nil
}
