package routes

import (
	"oficina_facil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.GET("/url", h.AuthURL)
		auth.POST("/signin", h.Signin)
		auth.POST("/signout", h.Signout)
		auth.GET("/status", h.Status)
	}
}
