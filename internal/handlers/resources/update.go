package resources

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Update replaces name and description of an existing resource.
// Path and body are both validated before the lookup: a bad body
// against an unknown id is a 400, not a 404.
func (h *Handler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	in, ok := bindBody(c)
	if !ok {
		return
	}

	r, err := h.store.Update(c.Request.Context(), id, in.Name, in.Description)
	if err != nil {
		h.storeError(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, r)
}
