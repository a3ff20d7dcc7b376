package reservations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/hotel-reservations/internal/handlers/common"
	"github.com/Jeomhps/hotel-reservations/internal/store"
)

// Each filter reads exactly one criterion from the query string and always
// answers 200 with a (possibly empty) list.

// FilterByHotel handles ?hotel=X.
func (h *Handler) FilterByHotel(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.FilterByHotel(c.Query("hotel")))
}

// FilterByDateRange handles ?startDate=A&endDate=B, both inclusive.
// A missing bound matches nothing.
func (h *Handler) FilterByDateRange(c *gin.Context) {
	start, okStart := c.GetQuery("startDate")
	end, okEnd := c.GetQuery("endDate")
	if !okStart || !okEnd {
		c.JSON(http.StatusOK, []store.Reservation{})
		return
	}
	c.JSON(http.StatusOK, h.store.FilterByDateRange(start, end))
}

// FilterByRoomType handles ?roomType=X.
func (h *Handler) FilterByRoomType(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.FilterByRoomType(c.Query("roomType")))
}

// FilterByStatus handles ?status=X.
func (h *Handler) FilterByStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.FilterByStatus(c.Query("status")))
}

// FilterByGuestCount handles ?guestCount=N. Only the leading integer is
// read ("2abc" is 2); a value without one matches nothing.
func (h *Handler) FilterByGuestCount(c *gin.Context) {
	n, ok := common.ParseLeadingInt(c.Query("guestCount"))
	if !ok {
		c.JSON(http.StatusOK, []store.Reservation{})
		return
	}
	c.JSON(http.StatusOK, h.store.FilterByGuestCount(n))
}
