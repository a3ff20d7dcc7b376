package reservations

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jeomhps/hotel-reservations/internal/store"
)

// Package reservations provides the reservation HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type, its constructor and route table.
// The HTTP methods are implemented in dedicated files:
// - create.go: Handler.Create
// - list.go:   Handler.List
// - get.go:    Handler.Get
// - update.go: Handler.Update
// - delete.go: Handler.Delete
// - filter.go: Handler.FilterBy*

// Handler wires reservation endpoints to the in-memory store.
type Handler struct {
	store *store.Store
	log   *zap.Logger
}

// NewHandler returns a new reservations handler.
func NewHandler(s *store.Store, l *zap.Logger) *Handler {
	return &Handler{store: s, log: l}
}

// Register mounts every reservation route on rg.
func (h *Handler) Register(rg gin.IRouter) {
	rg.POST("/reservations", h.Create)
	rg.GET("/reservations", h.List)
	rg.GET("/reservations/:id", h.Get)
	rg.PUT("/reservations/:id", h.Update)
	rg.DELETE("/reservations/:id", h.Delete)

	filter := rg.Group("/reservations/filter")
	{
		filter.GET("/hotel", h.FilterByHotel)
		filter.GET("/dates", h.FilterByDateRange)
		filter.GET("/room-type", h.FilterByRoomType)
		filter.GET("/status", h.FilterByStatus)
		filter.GET("/guest-count", h.FilterByGuestCount)
	}
}
