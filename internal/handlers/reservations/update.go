package reservations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jeomhps/hotel-reservations/internal/handlers/common"
	"github.com/Jeomhps/hotel-reservations/internal/store"
)

// Update modifies the fields present in the body and returns the result.
// KISS flow:
// 1) Resolve the id; an unknown id is not found whatever the body holds
// 2) Decode the partial body; absent fields stay nil, no body means {}
// 3) Apply it in the store, which leaves the record untouched on a miss
func (h *Handler) Update(c *gin.Context) {
	id, ok := common.IntParam(c, "id")
	if !ok {
		common.NotFound(c)
		return
	}
	if _, err := h.store.Get(id); errors.Is(err, store.ErrNotFound) {
		common.NotFound(c)
		return
	}

	var in store.ReservationUpdate
	if !common.BindJSON(c, &in) {
		return
	}

	r, err := h.store.Update(id, in)
	if errors.Is(err, store.ErrNotFound) { // deleted since the lookup
		common.NotFound(c)
		return
	}
	h.log.Debug("reservation updated", zap.Int("id", id), zap.Bool("empty_update", in.Empty()))
	c.JSON(http.StatusOK, r)
}
