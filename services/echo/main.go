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
	"os"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/AleutianDeploy/pkg/logging"
)

func main() {
	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(os.Getenv("ECHO_LOG_LEVEL")),
		Service: "echo",
		JSON:    true,
	})

	gin.SetMode(gin.ReleaseMode)
	router := NewRouter(logger)

	port := os.Getenv("ECHO_PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("starting echo service", "port", port)
	if err := router.Run(":" + port); err != nil {
		logger.Error("server failed", "error", err.Error())
		os.Exit(1)
	}
}
