package reservations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/hotel-reservations/internal/handlers/common"
	"github.com/Jeomhps/hotel-reservations/internal/store"
)

// Get returns a single reservation by id.
// An id without a leading integer can never match, so it is reported as
// not found.
func (h *Handler) Get(c *gin.Context) {
	id, ok := common.IntParam(c, "id")
	if !ok {
		common.NotFound(c)
		return
	}

	r, err := h.store.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		common.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, r)
}
