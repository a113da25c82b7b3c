package bot

import (
	"log/slog"
	"net/http"
	"time"

	"resqcart/internal/pkg/clock"

	"github.com/gin-gonic/gin"
)

type webhookForm struct {
	Body string `form:"Body"`
	From string `form:"From"`
}

type Handler struct {
	responder *Responder
	clock     clock.Clock
}

func NewHandler(responder *Responder, clk clock.Clock) *Handler {
	return &Handler{responder: responder, clock: clk}
}

// Webhook answers a Twilio WhatsApp message with a TwiML reply.
func (h *Handler) Webhook(c *gin.Context) {
	var form webhookForm
	// Twilio retries on non-2xx, so a malformed body still gets the default reply.
	_ = c.ShouldBind(&form)

	reply := h.responder.Reply(form.Body)
	slog.Info("whatsapp message handled", "from", form.From, "body", form.Body)

	out, err := renderTwiML(reply)
	if err != nil {
		slog.Error("render twiml failed", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/xml", out)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "Bot is running!",
		"timestamp": h.clock.Now().UTC().Format(time.RFC3339Nano),
	})
}

func NewRouter(engine *gin.Engine, h *Handler) {
	engine.POST("/webhook", h.Webhook)
	engine.GET("/health", h.Health)
}
