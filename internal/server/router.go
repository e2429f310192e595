package server

import (
	"net/http"

	"github.com/Jeomhps/resource-api/internal/handlers/resources"
	"github.com/Jeomhps/resource-api/internal/middleware"
	"github.com/Jeomhps/resource-api/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter assembles middleware, ambient endpoints and the resource routes.
// Recovery sits innermost so a recovered panic still reaches the access
// log and the request counter as a 500.
func NewRouter(s store.Store, log *zap.Logger, m *middleware.Metrics) *gin.Engine {
	r := gin.New()
	// /api/resources/ is an unknown route, not a redirect.
	r.RedirectTrailingSlash = false
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(m.Middleware())
	r.Use(middleware.Recovery(log))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", m.Handler())

	resources.New(s, log.Named("resources")).Register(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "Route " + c.Request.Method + ":" + c.Request.URL.Path + " not found",
		})
	})
	return r
}
