package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) PingContext(ctx context.Context) error { return p.err }

type probeHandler struct{}

func (probeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/probe/:id", func(c *gin.Context) {
		id, ok := ParseID(c, "id")
		if !ok {
			return
		}
		switch id {
		case 1:
			OK(c, "fine", gin.H{"id": id})
		case 2:
			Fail(c, logger.NewNop(), &apperror.InsufficientStockError{ProductID: 5, ProductName: "Widget", Available: 1, Requested: 3})
		case 3:
			Fail(c, logger.NewNop(), apperror.BusinessRule("order %d is cancelled and cannot be modified", 9))
		case 4:
			panic("boom")
		default:
			Fail(c, logger.NewNop(), errors.New("db down"))
		}
	})
}

func newTestRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterConfig{ServiceName: "test", Debug: true}, logger.NewNop(), pinger{err: err}, probeHandler{})
}

func get(r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestHealth(t *testing.T) {
	w, body := get(newTestRouter(nil), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, StatusSuccess, body["status"])

	w, body = get(newTestRouter(errors.New("refused")), "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, StatusError, body["status"])
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/probe/1", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))

	w, _ = get(r, "/v1/probe/1")
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestErrorMapping(t *testing.T) {
	r := newTestRouter(nil)

	tests := []struct {
		name    string
		path    string
		status  int
		message string
	}{
		{"bad id", "/v1/probe/x", http.StatusBadRequest, "invalid id"},
		{"business rule", "/v1/probe/3", http.StatusUnprocessableEntity, "order 9 is cancelled and cannot be modified"},
		{"panic", "/v1/probe/4", http.StatusInternalServerError, "internal server error"},
		{"store fault", "/v1/probe/5", http.StatusInternalServerError, "internal server error"},
		{"unknown route", "/v1/nope", http.StatusNotFound, "route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := get(r, tt.path)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, StatusError, body["status"])
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestInsufficientStockBody(t *testing.T) {
	w, body := get(newTestRouter(nil), "/v1/probe/2")

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	detail := body["error"].(map[string]any)
	assert.Equal(t, float64(5), detail["product_id"])
	assert.Equal(t, "Widget", detail["product_name"])
	assert.Equal(t, float64(1), detail["available"])
	assert.Equal(t, float64(3), detail["requested"])
}
