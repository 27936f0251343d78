package matching

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stpnv0/SlotMatcher/internal/domain"
)

// ErrNoEndpoint means the service cannot start: there is nobody to match against.
var ErrNoEndpoint = errors.New("matching service endpoint is not configured")

const maxErrorBody = 512

// StatusError reports a non-2xx answer from the matching service.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func newStatusError(op string, code int, body []byte) *StatusError {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &StatusError{Operation: op, StatusCode: code, Body: string(body)}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d", e.Operation, e.StatusCode)
}

// Is lets a 404 on a detail lookup satisfy errors.Is(err, domain.ErrSlotNotFound).
func (e *StatusError) Is(target error) bool {
	return target == domain.ErrSlotNotFound &&
		e.Operation == opSlotDetail &&
		e.StatusCode == http.StatusNotFound
}
