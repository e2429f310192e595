package resources

import (
	"github.com/Jeomhps/resource-api/internal/store"
	"go.uber.org/zap"
)

// Package resources provides the /api/resources HTTP handlers.
//
// This file defines the handler type and constructor only.
// The HTTP methods are split into dedicated, focused files:
// - list.go:   Handler.List
// - get.go:    Handler.Get
// - create.go: Handler.Create
// - update.go: Handler.Update
// - delete.go: Handler.Delete
//
// Request shapes and the 400/404 payloads live in request.go.

// Handler wires resource endpoints to the store.
type Handler struct {
	store store.Store
	log   *zap.Logger
}

// New returns a new resources handler.
func New(s store.Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: s, log: log}
}
