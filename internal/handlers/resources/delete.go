package resources

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Delete removes a resource by id and answers 204 with no body.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.storeError(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}
