//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"resqcart/internal/handler/httperr"
	"resqcart/internal/handler/middleware"
	"resqcart/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	router.GET("/public", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("dup"), "Already exists", gin.H{"field": "sku"})
	})
	router.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	router.GET("/panic", func(_ *gin.Context) {
		panic("unexpected")
	})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/public", wantStatus: http.StatusConflict, wantBody: `{"error":{"message":"Already exists"},"detail":{"field":"sku"}}`},
		{path: "/private", wantStatus: http.StatusInternalServerError, wantBody: `{"error":{"message":"Internal server error"}}`},
		{path: "/panic", wantStatus: http.StatusInternalServerError, wantBody: `{"error":{"message":"Internal server error"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodGet, tt.path, nil, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
