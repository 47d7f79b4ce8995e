package routes

import (
	"oficina_facil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClientes   = "/clientes"
	PathVeiculos   = "/veiculos"
	PathOrdens     = "/ordens"
	PathFinanceiro = "/financeiro"
)

func addOficinaRoutes(rg *gin.RouterGroup, oficinaHandler *handlers.OficinaHandler, pagamentoHandler *handlers.PagamentoHandler) {
	clientes := rg.Group(PathClientes)
	{
		clientes.POST("", oficinaHandler.CreateCliente)
		clientes.GET("", oficinaHandler.ListClientes)
	}

	veiculos := rg.Group(PathVeiculos)
	{
		veiculos.POST("", oficinaHandler.CreateVeiculo)
		// ?cliente=<sheet title>
		veiculos.GET("", oficinaHandler.ListVeiculos)
	}

	ordens := rg.Group(PathOrdens)
	{
		ordens.POST("", oficinaHandler.CreateOrdemServico)
		// ?status=Aberta|Finalizada|Paga
		ordens.GET("", oficinaHandler.ListOrdensServico)
		ordens.PATCH("/:id/status", oficinaHandler.UpdateStatusOrdemServico)
		ordens.POST("/:id/pagamento", pagamentoHandler.CreatePagamentoByOSID)
		ordens.GET("/:id/pagamento", pagamentoHandler.GetPagamentoByOSID)
	}

	rg.GET(PathFinanceiro+"/resumo", oficinaHandler.GetResumoFinanceiro)
}
