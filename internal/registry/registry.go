// Package registry indexes one user's slots by calendar date.
package registry

import (
	"context"
	"sort"

	"github.com/stpnv0/SlotMatcher/internal/domain"
)

type slotLister interface {
	FetchSlotList(ctx context.Context, userID string) []domain.SlotSummary
}

// Registry is scoped to a single view and user; it is not safe for concurrent Load calls.
type Registry struct {
	lister slotLister
	byDate map[string]domain.SlotSummary
}

func New(lister slotLister) *Registry {
	return &Registry{
		lister: lister,
		byDate: map[string]domain.SlotSummary{},
	}
}

// Load replaces the index with the user's current slots.
// The first slot seen for a date wins; later duplicates are dropped.
func (r *Registry) Load(ctx context.Context, userID string) {
	slots := r.lister.FetchSlotList(ctx, userID)

	index := make(map[string]domain.SlotSummary, len(slots))
	for _, s := range slots {
		if _, ok := index[s.Date]; ok {
			continue
		}
		index[s.Date] = s
	}

	r.byDate = index
}

// Lookup matches dates by exact YYYY-MM-DD string; a miss yields status unknown.
func (r *Registry) Lookup(date string) domain.SlotSummary {
	if s, ok := r.byDate[date]; ok {
		return s
	}
	return domain.SlotSummary{Date: date, Status: domain.SlotStatusUnknown}
}

// Slots returns the indexed projections ordered by date.
func (r *Registry) Slots() []domain.SlotSummary {
	res := make([]domain.SlotSummary, 0, len(r.byDate))
	for _, s := range r.byDate {
		res = append(res, s)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Date < res[j].Date })
	return res
}
