package resources

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// List returns every resource in creation order.
func (h *Handler) List(c *gin.Context) {
	rs, err := h.store.List(c.Request.Context())
	if err != nil {
		h.serverError(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, rs)
}
