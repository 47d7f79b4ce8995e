package routes

import (
	"oficina_facil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSync      = "/sync"
	PathPlanilhas = "/planilhas"
)

func addSyncRoutes(rg *gin.RouterGroup, h *handlers.SyncHandler) {
	sync := rg.Group(PathSync)
	{
		sync.POST("", h.Sync)
		sync.GET("/status", h.Status)
		sync.DELETE("/error", h.ClearError)
		sync.POST("/conectividade", h.SetConnectivity)
	}

	planilhas := rg.Group(PathPlanilhas)
	{
		planilhas.POST("", h.CreatePlanilha)
		planilhas.PUT("/atual", h.SetPlanilha)
		planilhas.GET("/permissao", h.CheckPermissao)
	}
}
