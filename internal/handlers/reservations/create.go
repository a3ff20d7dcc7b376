package reservations

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jeomhps/hotel-reservations/internal/handlers/common"
	"github.com/Jeomhps/hotel-reservations/internal/store"
)

// Create stores a new reservation and returns it with its id.
// Fields are not validated: whatever is missing is stored empty.
func (h *Handler) Create(c *gin.Context) {
	var in store.NewReservation
	if !common.BindJSON(c, &in) {
		return
	}

	r := h.store.Create(in)
	h.log.Debug("reservation created", zap.Int("id", r.ID), zap.String("hotel", r.Hotel))
	c.JSON(http.StatusCreated, r)
}
