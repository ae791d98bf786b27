package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListRooms(c *ginext.Context)
	ListMemberGrants(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ModifyBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListRoomBookings(c *ginext.Context)
	ListMemberBookings(c *ginext.Context)
	RegisterEntry(c *ginext.Context)
	EditEntry(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Rooms
		api.GET("/rooms", h.ListRooms)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListRoomBookings)
		api.PATCH("/bookings/:id", h.ModifyBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)

		// Members
		api.GET("/members/:id/grants", h.ListMemberGrants)
		api.GET("/members/:id/bookings", h.ListMemberBookings)

		// Entries (carnet check-ins)
		api.POST("/entries", h.RegisterEntry)
		api.PATCH("/entries/:id", h.EditEntry)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
