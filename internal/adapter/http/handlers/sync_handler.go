package handlers

import (
	"log"
	"net/http"

	request "oficina_facil/internal/adapter/http/dto/request"
	response "oficina_facil/internal/adapter/http/dto/response"
	"oficina_facil/internal/usecase"
	"oficina_facil/pkg"

	"github.com/gin-gonic/gin"
)

// SyncHandler exposes the sync orchestrator surface: connectivity pushes,
// manual sync, status polling and spreadsheet selection.

type SyncHandler struct {
	usecase usecase.IOficinaUseCase
}

func NewSyncHandler(uc usecase.IOficinaUseCase) *SyncHandler {
	return &SyncHandler{usecase: uc}
}

func (h *SyncHandler) Sync(c *gin.Context) {
	res := h.usecase.SyncNow(c.Request.Context())
	c.JSON(http.StatusOK, response.FromResultadoSync(res))
}

func (h *SyncHandler) Status(c *gin.Context) {
	st := h.usecase.Status()
	c.JSON(http.StatusOK, response.SyncStatusResponse{
		Online:    st.Online,
		Syncing:   st.Syncing,
		Pendentes: st.Pendentes,
		Erro:      st.Erro,
	})
}

func (h *SyncHandler) ClearError(c *gin.Context) {
	h.usecase.LimparErro()
	c.Status(http.StatusNoContent)
}

func (h *SyncHandler) SetConnectivity(c *gin.Context) {
	var payload request.ConectividadeRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Online == nil {
		c.JSON(errInvalidOficinaPayload.HTTPStatus, errInvalidOficinaPayload.ToHTTPError())
		return
	}

	h.usecase.SetConnectivity(c.Request.Context(), *payload.Online)
	st := h.usecase.Status()
	c.JSON(http.StatusOK, response.SyncStatusResponse{
		Online:    st.Online,
		Syncing:   st.Syncing,
		Pendentes: st.Pendentes,
		Erro:      st.Erro,
	})
}

func (h *SyncHandler) CreatePlanilha(c *gin.Context) {
	var payload request.PlanilhaCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOficinaPayload.HTTPStatus, errInvalidOficinaPayload.ToHTTPError())
		return
	}

	id, err := h.usecase.CriarPlanilha(c.Request.Context(), payload.Nome)
	if err != nil {
		appErr := mapOficinaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sync][handler] planilha created id=%s", id)

	c.JSON(http.StatusCreated, response.PlanilhaResponse{ID: id})
}

func (h *SyncHandler) SetPlanilha(c *gin.Context) {
	var payload request.PlanilhaSetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOficinaPayload.HTTPStatus, errInvalidOficinaPayload.ToHTTPError())
		return
	}

	if err := h.usecase.DefinirPlanilha(payload.ID); err != nil {
		appErr := mapOficinaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sync][handler] planilha selected id=%s", payload.ID)

	c.JSON(http.StatusOK, response.PlanilhaResponse{ID: payload.ID})
}

func (h *SyncHandler) CheckPermissao(c *gin.Context) {
	ok := h.usecase.VerificarPermissao(c.Request.Context())
	if !ok {
		appErr := pkg.NewDomainErrorSimple("NO_PERMISSION", "Você não tem permissão para editar esta planilha", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.PermissaoResponse{TemPermissao: true})
}
