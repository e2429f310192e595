package resources

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/Jeomhps/resource-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// resourceBody is the create/update payload. Both fields are required
// non-empty strings; any other JSON type fails the decode.
type resourceBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// idParam binds :id; anything that does not parse as an integer is rejected.
type idParam struct {
	ID int64 `uri:"id"`
}

const notFoundMessage = "Resource not found"

// Register mounts the five resource routes on r.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/api/resources")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func bindID(c *gin.Context) (int64, bool) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		badRequest(c, "params/id must be integer")
		return 0, false
	}
	return p.ID, true
}

// bindBody decodes exactly one JSON object from the request and runs the
// binding validator over it. Anything after the object other than
// whitespace makes the whole body invalid.
func bindBody(c *gin.Context) (resourceBody, bool) {
	var in resourceBody
	if c.Request.Body == nil {
		badRequest(c, "body must be object")
		return resourceBody{}, false
	}
	dec := json.NewDecoder(c.Request.Body)
	if err := dec.Decode(&in); err != nil {
		badRequest(c, bodyErrorMessage(err))
		return resourceBody{}, false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		badRequest(c, "body is not valid JSON")
		return resourceBody{}, false
	}
	if err := binding.Validator.ValidateStruct(&in); err != nil {
		badRequest(c, bodyErrorMessage(err))
		return resourceBody{}, false
	}
	return in, true
}

// bodyErrorMessage turns decode and validator errors into a short
// "body/<field> ..." description.
func bodyErrorMessage(err error) string {
	var (
		verrs   validator.ValidationErrors
		typeErr *json.UnmarshalTypeError
		synErr  *json.SyntaxError
	)
	switch {
	case errors.As(err, &verrs):
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, "body/"+strings.ToLower(fe.Field())+" is required")
		}
		return strings.Join(msgs, ", ")
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return "body must be object"
		}
		return "body/" + typeErr.Field + " must be " + typeErr.Type.String()
	case errors.As(err, &synErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "body is not valid JSON"
	case errors.Is(err, io.EOF):
		return "body must be object"
	default:
		return err.Error()
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "message": msg})
}

func (h *Handler) storeError(c *gin.Context, op string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return
	}
	h.serverError(c, op, err)
}

func (h *Handler) serverError(c *gin.Context, op string, err error) {
	h.log.Error("store failure", zap.String("op", op), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
}
