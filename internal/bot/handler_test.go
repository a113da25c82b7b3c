//go:build unit

package bot

import (
	"encoding/xml"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"resqcart/internal/pkg/clock"
	"resqcart/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBotRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	clk := clock.NewMockClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	NewRouter(engine, NewHandler(NewResponder(fixedIntn(0)), clk))
	return engine
}

func TestWebhook(t *testing.T) {
	router := newBotRouter()

	rec := httptest.PerformForm(t, router, "/webhook", url.Values{
		"Body": {"Predict Apple"},
		"From": {"whatsapp:+15550001111"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	raw := rec.Body.String()
	assert.True(t, strings.HasPrefix(raw, `<?xml version="1.0" encoding="UTF-8"?><Response><Message>`), raw)

	var resp twimlResponse
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Spoilage Prediction for apple")
	assert.Contains(t, resp.Message, "*Estimated shelf life:* 7 days")
}

func TestWebhook_EmptyBodyGetsDefault(t *testing.T) {
	router := newBotRouter()

	rec := httptest.PerformForm(t, router, "/webhook", url.Values{})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp twimlResponse
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, defaultReply, resp.Message)
}

func TestHealth(t *testing.T) {
	rec := httptest.PerformRequest(t, newBotRouter(), http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"Bot is running!","timestamp":"2025-06-10T12:00:00Z"}`, rec.Body.String())
}
