package resources

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get returns a single resource by id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	r, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, r)
}
