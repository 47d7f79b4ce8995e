package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_facil/internal/adapter/http/dto/request"
	response "oficina_facil/internal/adapter/http/dto/response"
	"oficina_facil/internal/domain/entities"
	"oficina_facil/internal/usecase"
	"oficina_facil/internal/usecase/interfaces"
	"oficina_facil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOficinaPayload = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid payload", http.StatusBadRequest)
)

// OficinaHandler handles HTTP requests for customers, vehicles, service
// orders and the financial summary.
//
// Read endpoints never fail over storage faults: the use case falls back to
// cached data and surfaces the problem through the sync status endpoint.

type OficinaHandler struct {
	usecase usecase.IOficinaUseCase
}

func NewOficinaHandler(uc usecase.IOficinaUseCase) *OficinaHandler {
	return &OficinaHandler{usecase: uc}
}

func (h *OficinaHandler) CreateCliente(c *gin.Context) {
	var payload request.ClienteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOficinaPayload.HTTPStatus, errInvalidOficinaPayload.ToHTTPError())
		return
	}

	cliente, err := h.usecase.AdicionarCliente(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapOficinaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[oficina][handler] cliente created id=%s pendente=%v", cliente.ID, cliente.Pendente)

	c.JSON(http.StatusCreated, response.FromCliente(cliente))
}

func (h *OficinaHandler) ListClientes(c *gin.Context) {
	clientes := h.usecase.ObterClientes(c.Request.Context())
	c.JSON(http.StatusOK, response.FromClientes(clientes))
}

func (h *OficinaHandler) CreateVeiculo(c *gin.Context) {
	var payload request.VeiculoCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOficinaPayload.HTTPStatus, errInvalidOficinaPayload.ToHTTPError())
		return
	}

	veiculo, err := h.usecase.AdicionarVeiculo(c.Request.Context(), payload.ToEntity(), payload.ClienteSheetTitle)
	if err != nil {
		appErr := mapOficinaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[oficina][handler] veiculo created id=%s placa=%s pendente=%v", veiculo.ID, veiculo.Placa, veiculo.Pendente)

	c.JSON(http.StatusCreated, response.FromVeiculo(veiculo))
}

// ListVeiculos lists the vehicles of the customer named by the `cliente`
// query parameter (the customer's sheet title).
func (h *OficinaHandler) ListVeiculos(c *gin.Context) {
	sheetTitle := c.Query("cliente")
	if sheetTitle == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_CLIENTE", "Query parameter 'cliente' is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	veiculos := h.usecase.ObterVeiculosCliente(c.Request.Context(), sheetTitle)
	c.JSON(http.StatusOK, response.FromVeiculos(veiculos))
}

func (h *OficinaHandler) CreateOrdemServico(c *gin.Context) {
	var payload request.OrdemServicoCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOficinaPayload.HTTPStatus, errInvalidOficinaPayload.ToHTTPError())
		return
	}

	ordem, err := h.usecase.AdicionarOrdemServico(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapOficinaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[oficina][handler] ordem created id=%s status=%s pendente=%v", ordem.ID, ordem.Status, ordem.Pendente)

	c.JSON(http.StatusCreated, response.FromOrdemServico(ordem))
}

// ListOrdensServico lists service orders, optionally filtered by the
// `status` query parameter.
func (h *OficinaHandler) ListOrdensServico(c *gin.Context) {
	filtro := entities.OSStatus(c.Query("status"))
	ordens := h.usecase.ObterOrdensServico(c.Request.Context(), filtro)
	c.JSON(http.StatusOK, response.FromOrdensServico(ordens))
}

func (h *OficinaHandler) UpdateStatusOrdemServico(c *gin.Context) {
	osID := c.Param("id")

	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOficinaPayload.HTTPStatus, errInvalidOficinaPayload.ToHTTPError())
		return
	}

	ordem, err := h.usecase.AtualizarStatusOS(c.Request.Context(), osID, entities.OSStatus(payload.Status))
	if err != nil {
		appErr := mapOficinaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[oficina][handler] ordem status updated id=%s status=%s", ordem.ID, ordem.Status)

	c.JSON(http.StatusOK, response.FromOrdemServico(ordem))
}

func (h *OficinaHandler) GetResumoFinanceiro(c *gin.Context) {
	fin := h.usecase.ObterResumoFinanceiro(c.Request.Context())
	c.JSON(http.StatusOK, response.FromFinanceiro(fin))
}

func mapOficinaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClienteInvalido),
		errors.Is(err, usecase.ErrVeiculoInvalido),
		errors.Is(err, usecase.ErrOrdemInvalida),
		errors.Is(err, usecase.ErrStatusInvalido),
		errors.Is(err, usecase.ErrPlanilhaInvalida):
		return pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid payload", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrClienteNaoEncontrado):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente não encontrado", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrOSNaoEncontrada):
		return pkg.NewDomainErrorSimple("OS_NOT_FOUND", "Ordem de serviço não encontrada", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrNaoAutenticado):
		return pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Sessão Google inválida ou expirada", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrSemConexao):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Sem conexão com o armazenamento remoto", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
