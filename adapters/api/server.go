// Package api exposes the extractor tool over HTTP for the host runtime.
// It is plumbing around the invocation contract: pipeline failures still
// come back as a 200 with a single "Error: ..." text message, because the
// caller inspects message content only.
package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sheetex/app"
)

// Server is the HTTP front for the extractor tool.
type Server struct {
	router         *gin.Engine
	tool           *app.ExtractorTool
	maxUploadBytes int64
}

// NewServer builds the router and registers routes.
func NewServer(tool *app.ExtractorTool, maxUploadBytes int64) *Server {
	s := &Server{
		router:         gin.Default(),
		tool:           tool,
		maxUploadBytes: maxUploadBytes,
	}
	s.router.Use(requestID())
	s.router.GET("/healthz", s.handleHealth)
	s.router.POST("/v1/extract", s.handleExtract)
	return s
}

// Start runs the HTTP server on the given address, blocking until it stops.
func (s *Server) Start(addr string) error {
	log.Printf("[api] listening on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// requestID tags every request with a UUID so concurrent invocations can be
// told apart in the logs.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
