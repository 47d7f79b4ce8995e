package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "oficina_facil/internal/adapter/http/dto/response"
	"oficina_facil/internal/usecase"
	"oficina_facil/internal/usecase/interfaces"
	"oficina_facil/pkg"

	"github.com/gin-gonic/gin"
)

// PagamentoHandler handles HTTP requests for service-order payments.

type PagamentoHandler struct {
	usecase usecase.IPagamentoUseCase
}

func NewPagamentoHandler(uc usecase.IPagamentoUseCase) *PagamentoHandler {
	return &PagamentoHandler{usecase: uc}
}

// CreatePagamentoByOSID creates/approves a payment using the order id in path.
func (h *PagamentoHandler) CreatePagamentoByOSID(c *gin.Context) {
	osID := c.Param("id")
	log.Printf("[payment][handler] create start os_id=%s", osID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload os_id=%s err=%v", osID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload os_id=%s err=%v", osID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), osID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed os_id=%s err=%v", osID, err)
		appErr := mapPagamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success os_id=%s payment_id=%s status=%s", osID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPagamento(created))
}

// GetPagamentoByOSID returns the latest payment for a service order.
func (h *PagamentoHandler) GetPagamentoByOSID(c *gin.Context) {
	osID := c.Param("id")
	log.Printf("[payment][handler] get-by-os start os_id=%s", osID)

	pagamentos, err := h.usecase.ListByOSID(c.Request.Context(), osID)
	if err != nil {
		log.Printf("[payment][handler] get-by-os failed os_id=%s err=%v", osID, err)
		appErr := mapPagamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(pagamentos) == 0 {
		log.Printf("[payment][handler] get-by-os not-found os_id=%s", osID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := pagamentos[0]
	for _, p := range pagamentos[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-os success os_id=%s payment_id=%s status=%s", osID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromPagamento(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPagamentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPagamentoOSID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrOSNaoEncontrada):
		return pkg.NewDomainErrorSimple("OS_NOT_FOUND", "Ordem de serviço não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOSNaoFinalizada):
		return pkg.NewDomainErrorSimple("OS_NOT_FINISHED", "Ordem de serviço não finalizada", http.StatusConflict)
	case errors.Is(err, usecase.ErrPagamentoNaoEncontrado):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
