package reservations

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// List returns all reservations in creation order.
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}
