package resources

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Create appends a new resource with the next id.
// An invalid body is rejected before the store is touched, so the id
// counter only moves on success.
func (h *Handler) Create(c *gin.Context) {
	in, ok := bindBody(c)
	if !ok {
		return
	}

	r, err := h.store.Create(c.Request.Context(), in.Name, in.Description)
	if err != nil {
		h.serverError(c, "create", err)
		return
	}
	h.log.Debug("resource created", zap.Int64("id", r.ID))
	c.JSON(http.StatusCreated, r)
}
