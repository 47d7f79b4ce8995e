package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_facil/internal/adapter/http/handlers/mocks"
	"oficina_facil/internal/domain/entities"
	"oficina_facil/internal/usecase"
	"oficina_facil/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSyncHandler_Sync(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOficinaUseCase(ctrl)
	h := NewSyncHandler(uc)

	r := gin.New()
	r.POST("/v1/sync", h.Sync)

	uc.EXPECT().SyncNow(gomock.Any()).Return(entities.ResultadoSync{
		Success:       true,
		Message:       "2 operações sincronizadas, 1 pendentes",
		Sincronizadas: 2,
		Pendentes:     1,
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/sync", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["success"] != true || body["sincronizadas"] != float64(2) || body["pendentes"] != float64(1) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestSyncHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOficinaUseCase(ctrl)
	h := NewSyncHandler(uc)

	r := gin.New()
	r.GET("/v1/sync/status", h.Status)

	uc.EXPECT().Status().Return(usecase.SyncStatus{Online: false, Pendentes: 3, Erro: "Falha ao obter clientes. Usando dados em cache, se disponíveis."})

	req := httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["online"] != false || body["pendentes"] != float64(3) || body["erro"] == "" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestSyncHandler_ClearError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOficinaUseCase(ctrl)
	h := NewSyncHandler(uc)

	r := gin.New()
	r.DELETE("/v1/sync/error", h.ClearError)

	uc.EXPECT().LimparErro()

	req := httptest.NewRequest(http.MethodDelete, "/v1/sync/error", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestSyncHandler_SetConnectivity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing online flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOficinaUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.POST("/v1/sync/conectividade", h.SetConnectivity)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/conectividade", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("offline push", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOficinaUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.POST("/v1/sync/conectividade", h.SetConnectivity)

		uc.EXPECT().SetConnectivity(gomock.Any(), false)
		uc.EXPECT().Status().Return(usecase.SyncStatus{Online: false, Pendentes: 2})

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/conectividade", bytes.NewBufferString(`{"online":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["online"] != false || body["pendentes"] != float64(2) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestSyncHandler_Planilhas(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOficinaUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.POST("/v1/planilhas", h.CreatePlanilha)

		uc.EXPECT().CriarPlanilha(gomock.Any(), "Oficina do Zé").Return("sheet-7", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/planilhas", bytes.NewBufferString(`{"nome":"Oficina do Zé"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "sheet-7" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("create invalid name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOficinaUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.POST("/v1/planilhas", h.CreatePlanilha)

		uc.EXPECT().CriarPlanilha(gomock.Any(), "").Return("", usecase.ErrPlanilhaInvalida)

		req := httptest.NewRequest(http.MethodPost, "/v1/planilhas", bytes.NewBufferString(`{"nome":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("select", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOficinaUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.PUT("/v1/planilhas/atual", h.SetPlanilha)

		uc.EXPECT().DefinirPlanilha("sheet-42").Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/planilhas/atual", bytes.NewBufferString(`{"id":"sheet-42"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSyncHandler_CheckPermissao(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("granted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOficinaUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.GET("/v1/planilhas/permissao", h.CheckPermissao)

		uc.EXPECT().VerificarPermissao(gomock.Any()).Return(true)

		req := httptest.NewRequest(http.MethodGet, "/v1/planilhas/permissao", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOficinaUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.GET("/v1/planilhas/permissao", h.CheckPermissao)

		uc.EXPECT().VerificarPermissao(gomock.Any()).Return(false)

		req := httptest.NewRequest(http.MethodGet, "/v1/planilhas/permissao", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var httpErr pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if httpErr.Code != "NO_PERMISSION" {
			t.Fatalf("expected NO_PERMISSION, got %s", httpErr.Code)
		}
	})
}
