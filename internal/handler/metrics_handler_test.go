package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingerStub struct {
	err error
}

func (p pingerStub) Ping(ctx context.Context) error { return p.err }

func TestMetricsHandlerReadyStoreDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewMetricsHandler(nil, pingerStub{err: errors.New("database is closed")}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

	h.Ready(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
}

func TestMetricsHandlerPrometheusDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewMetricsHandler(nil, pingerStub{}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/metrics", nil)

	h.Prometheus(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
