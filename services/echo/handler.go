// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/AleutianDeploy/pkg/logging"
)

// EchoResponse mirrors the Lambda proxy envelope: the payload is a
// JSON string in Body, not a nested object, so clients that already
// parse Lambda responses need no changes.
type EchoResponse struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// echoBody is the payload serialized into EchoResponse.Body.
type echoBody struct {
	Message string `json:"message"`
	Event   any    `json:"event"`
}

// Server holds the echo service dependencies.
type Server struct {
	logger *logging.Logger
}

// NewRouter builds the gin engine with all echo routes registered.
//
// Endpoints:
//
//	GET  /health  - Liveness probe
//	POST /invoke  - Echo the request event in a Lambda-style envelope
func NewRouter(logger *logging.Logger) *gin.Engine {
	if logger == nil {
		logger = logging.Default()
	}
	server := &Server{logger: logger}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "aleutian-echo"})
	})
	router.POST("/invoke", server.handleInvoke)

	return router
}

// handleInvoke echoes the request body back inside the envelope.
//
// An empty body is a valid invocation with a null event. A body that
// is not valid JSON is rejected, since the echoed event must survive
// re-serialization.
func (s *Server) handleInvoke(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body", "details": err.Error()})
		return
	}

	var event any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON event", "details": err.Error()})
			return
		}
	}

	body, err := json.Marshal(echoBody{Message: "Hello from Lambda!", Event: event})
	if err != nil {
		s.logger.Error("failed to serialize echo body", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize response"})
		return
	}

	s.logger.Info("echoed event", "bytes", len(raw))
	c.JSON(http.StatusOK, EchoResponse{StatusCode: http.StatusOK, Body: string(body)})
}
