package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_facil/internal/adapter/http/handlers/mocks"
	"oficina_facil/internal/domain/entities"
	"oficina_facil/internal/usecase"
	"oficina_facil/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestPagamentoHandler_CreatePagamentoByOSID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/ordens/:id/pagamento", h.CreatePagamentoByOSID)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordens/OS1/pagamento", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("body read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/ordens/:id/pagamento", h.CreatePagamentoByOSID)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordens/OS1/pagamento", failingReadCloser{})
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			name     string
			err      error
			wantCode int
		}{
			{"not found", interfaces.ErrOSNaoEncontrada, http.StatusNotFound},
			{"not finished", usecase.ErrOSNaoFinalizada, http.StatusConflict},
			{"provider unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
			{"provider bad request", usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
			{"provider invalid users", usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
			{"internal", errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIPagamentoUseCase(ctrl)
				h := NewPagamentoHandler(uc)

				r := gin.New()
				r.POST("/v1/ordens/:id/pagamento", h.CreatePagamentoByOSID)

				uc.EXPECT().CreateAndApprove(gomock.Any(), "OS1", gomock.Any()).Return(entities.Pagamento{}, tc.err)

				req := httptest.NewRequest(http.MethodPost, "/v1/ordens/OS1/pagamento", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.wantCode {
					t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
				}
			})
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/ordens/:id/pagamento", h.CreatePagamentoByOSID)

		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), "OS1", gomock.Any()).
			Return(entities.Pagamento{ID: "mp-123", OSID: "OS1", Date: now, Status: entities.PagamentoStatusAprovado}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordens/OS1/pagamento", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body=%s)", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["payment_id"] != "mp-123" || body["os_id"] != "OS1" || body["status"] != "aprovado" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("mp_payload envelope is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/ordens/:id/pagamento", h.CreatePagamentoByOSID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "OS1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, payload json.RawMessage) (entities.Pagamento, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload must be json: %v", err)
				}
				if m["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %s", payload)
				}
				return entities.Pagamento{ID: "mp-1", OSID: "OS1"}, nil
			})

		envelope := `{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/ordens/OS1/pagamento", bytes.NewBufferString(envelope))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty body becomes an empty object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/ordens/:id/pagamento", h.CreatePagamentoByOSID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "OS1", json.RawMessage("{}")).
			Return(entities.Pagamento{ID: "mp-1", OSID: "OS1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordens/OS1/pagamento", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPagamentoHandler_GetPagamentoByOSID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.GET("/v1/ordens/:id/pagamento", h.GetPagamentoByOSID)

		uc.EXPECT().ListByOSID(gomock.Any(), "OS1").Return([]entities.Pagamento{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/ordens/OS1/pagamento", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("latest wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.GET("/v1/ordens/:id/pagamento", h.GetPagamentoByOSID)

		older := time.Now().UTC().Add(-time.Hour)
		newer := time.Now().UTC()
		uc.EXPECT().ListByOSID(gomock.Any(), "OS1").Return([]entities.Pagamento{
			{ID: "mp-old", OSID: "OS1", Date: older},
			{ID: "mp-new", OSID: "OS1", Date: newer},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/ordens/OS1/pagamento", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["payment_id"] != "mp-new" {
			t.Fatalf("expected latest payment, got %v", body)
		}
	})

	t.Run("invalid os id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPagamentoUseCase(ctrl)
		h := NewPagamentoHandler(uc)

		r := gin.New()
		r.GET("/v1/ordens/:id/pagamento", h.GetPagamentoByOSID)

		uc.EXPECT().ListByOSID(gomock.Any(), " ").Return(nil, usecase.ErrInvalidPagamentoOSID)

		req := httptest.NewRequest(http.MethodGet, "/v1/ordens/%20/pagamento", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
