package routes

import (
	"jobtracker_backend/internal/handlers"
	"jobtracker_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// APIPrefix is the versioned mount point. Resource routes are also served
// without it for clients that call /applications directly.
const APIPrefix = "/api/v1"

// RegisterRoutes mounts the resource routes behind the given protection
// middleware (auth first, then rate limiting) plus the public ops routes.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	protect ...gin.HandlerFunc,
) {
	RegisterPublicRoutes(ginRouter, appHandlers)

	for _, prefix := range []string{APIPrefix, ""} {
		group := ginRouter.Group(prefix)
		group.Use(protect...)
		{
			appHandlers.ApplicationHandler.RegisterRoutes(group)
			appHandlers.ReminderHandler.RegisterRoutes(group)
		}
		logger.Debug("resource routes registered", "prefix", prefix)
	}
}
