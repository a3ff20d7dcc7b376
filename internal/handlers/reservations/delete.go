package reservations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jeomhps/hotel-reservations/internal/handlers/common"
	"github.com/Jeomhps/hotel-reservations/internal/store"
)

// Delete removes a reservation by id. The removed record is returned
// wrapped in a one-element list next to a confirmation message.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := common.IntParam(c, "id")
	if !ok {
		common.NotFound(c)
		return
	}

	r, err := h.store.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		common.NotFound(c)
		return
	}
	h.log.Debug("reservation deleted", zap.Int("id", id))
	c.JSON(http.StatusOK, gin.H{
		"message":     common.MsgDeleted,
		"reservation": []store.Reservation{r},
	})
}
