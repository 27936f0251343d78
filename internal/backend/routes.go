package backend

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

func InitRouter(mode string, h *Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/hobbies", h.ListHobbies)
	router.GET("/users/:userId/calendars", h.ListCalendars)
	router.GET("/users/:userId/calendars/:calendarId", h.GetCalendar)
	router.POST("/forms", h.Register)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
