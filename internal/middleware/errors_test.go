package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bvqadmin/montos-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

func serve(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var resp models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode envelope %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestErrorHandlerMapsDatabaseErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(true))
	r.GET("/sql", func(c *gin.Context) {
		c.Error(&pgconn.PgError{Code: "42601", Message: "syntax error"})
	})
	r.GET("/boom", func(c *gin.Context) {
		c.Error(errors.New("something unexpected"))
	})

	w, resp := serve(t, r, "/sql")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for database-reported error, got %d", w.Code)
	}
	if resp.Message != "Error en la consulta SQL" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Error == "" {
		t.Error("development mode should expose error detail")
	}

	w, resp = serve(t, r, "/boom")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for unexpected error, got %d", w.Code)
	}
	if resp.Message != "Error interno del servidor" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestErrorHandlerSuppressesDetailInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(false))
	r.GET("/boom", func(c *gin.Context) {
		c.Error(errors.New("secret internals"))
	})

	_, resp := serve(t, r, "/boom")
	if resp.Error != "" {
		t.Errorf("production must suppress detail, got %q", resp.Error)
	}
	if strings.Contains(resp.Message, "secret") {
		t.Errorf("detail leaked into message: %q", resp.Message)
	}
}

func TestNoRouteNamesPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(NoRoute())

	w, resp := serve(t, r, "/api/nope")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(resp.Message, "/api/nope") {
		t.Errorf("404 body should name the path, got %q", resp.Message)
	}
}

func TestRecoveryAnswersEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("handler bug")
	})

	w, resp := serve(t, r, "/panic")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if resp.Success {
		t.Error("expected failure envelope after panic")
	}
}
