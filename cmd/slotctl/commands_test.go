package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/SlotMatcher/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func TestLevelOf(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, levelOf("debug"))
	assert.Equal(t, logger.InfoLevel, levelOf("info"))
	assert.Equal(t, logger.ErrorLevel, levelOf("error"))
	assert.Equal(t, logger.WarnLevel, levelOf("warn"))
	assert.Equal(t, logger.WarnLevel, levelOf(""))
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("error")

	require.NoError(t, err)
	assert.NotNil(t, log)
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run(append([]string{"slotctl", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestRouteCommand(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/u1/calendars", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"calendarId": "S1", "date": "2025-06-01", "status": "recruiting"},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	out, err := runApp(t, "--base-url", srv.URL, "route", "--user", "u1", "--date", "2025-06-01")

	require.NoError(t, err)
	assert.Equal(t, "/recruiting?calendarId=S1&date=2025-06-01\n", out)
}

func TestRouteCommand_InvalidDate(t *testing.T) {
	_, err := runApp(t, "route", "--user", "u1", "--date", "06/01/2025")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
