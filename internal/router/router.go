package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListActivities(c *ginext.Context)
	ListVenues(c *ginext.Context)
	GetCalendar(c *ginext.Context)
	ExportCalendar(c *ginext.Context)
	ResolveDate(c *ginext.Context)
	GetSlot(c *ginext.Context)
	RegisterSlot(c *ginext.Context)
	StartWatch(c *ginext.Context)
	GetWatch(c *ginext.Context)
	StopWatch(c *ginext.Context)
	SignOut(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Activities
		api.GET("/activities", h.ListActivities)
		api.GET("/activities/:id/venues", h.ListVenues)

		// Calendar
		api.GET("/users/:userId/calendar", h.GetCalendar)
		api.GET("/users/:userId/calendar.ics", h.ExportCalendar)
		api.GET("/users/:userId/calendar/:date/route", h.ResolveDate)

		// Slots
		api.GET("/users/:userId/slots/:slotId", h.GetSlot)
		api.POST("/users/:userId/slots", h.RegisterSlot)

		// Watches
		api.POST("/users/:userId/slots/:slotId/watch", h.StartWatch)
		api.GET("/watches/:id", h.GetWatch)
		api.DELETE("/watches/:id", h.StopWatch)

		// Session
		api.POST("/session/sign-out", h.SignOut)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
