package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "bomserver/server/errors"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinRequestIDMiddleware())
	return router
}

// TestGinRequestIDMiddleware проверяет генерацию и проброс request ID
func TestGinRequestIDMiddleware(t *testing.T) {
	router := setupRouter()
	router.GET("/ping", func(c *gin.Context) {
		if GetRequestIDFromGin(c) == "" {
			t.Error("request ID should be present in gin context")
		}
		if GetRequestID(c.Request.Context()) == "" {
			t.Error("request ID should be present in request context")
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("response should carry X-Request-ID header")
	}
}

// TestGinRequestIDMiddleware_Existing проверяет сохранение входящего request ID
func TestGinRequestIDMiddleware_Existing(t *testing.T) {
	router := setupRouter()
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "client-supplied-id" {
		t.Errorf("X-Request-ID = %q, want client-supplied-id", got)
	}
}

// TestHandleGinError проверяет формирование JSON ответа из AppError
func TestHandleGinError(t *testing.T) {
	router := setupRouter()
	router.GET("/fail", func(c *gin.Context) {
		HandleGinError(c, apperrors.NewSchemaError("колонка PRICE не найдена", nil))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "колонка PRICE не найдена" {
		t.Errorf("error message = %q", resp.Error)
	}
	if resp.RequestID == "" {
		t.Error("error response should include request_id")
	}
}

// TestHandleGinError_Plain проверяет, что обычные ошибки не раскрывают детали
func TestHandleGinError_Plain(t *testing.T) {
	router := setupRouter()
	router.GET("/fail", func(c *gin.Context) {
		HandleGinError(c, errors.New("sqlite: disk I/O error"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "Внутренняя ошибка сервера" {
		t.Errorf("internal error details leaked: %q", resp.Error)
	}
}

// TestGinRateLimitMiddleware проверяет отказ при превышении лимита
func TestGinRateLimitMiddleware(t *testing.T) {
	router := setupRouter()
	router.Use(GinRateLimitMiddleware(1, 2))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	// Burst 2 пропускает первые запросы, дальше должен быть отказ
	if codes[0] != http.StatusOK {
		t.Errorf("first request should pass, got %d", codes[0])
	}
	rejected := 0
	for _, code := range codes {
		if code == http.StatusTooManyRequests {
			rejected++
		}
	}
	if rejected == 0 {
		t.Error("expected at least one 429 response")
	}
}

// TestGinCORSMiddleware проверяет CORS заголовки и OPTIONS
func TestGinCORSMiddleware(t *testing.T) {
	router := setupRouter()
	router.Use(GinCORSMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	router.ServeHTTP(w, req)

	if w.Code != 204 {
		t.Errorf("OPTIONS status = %d, want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS origin header missing")
	}
}
