package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// GetWhatsAppQRCode returns the pairing QR as a PNG.
func (h *Handler) GetWhatsAppQRCode(c *gin.Context) {
	if h.whatsapp == nil {
		c.String(http.StatusServiceUnavailable, "WhatsApp not configured")
		return
	}

	qrCodeString := h.whatsapp.GetQR()
	if qrCodeString == "" {
		if h.whatsapp.IsLoggedIn() {
			c.String(http.StatusOK, "Already logged in")
			return
		}
		c.String(http.StatusAccepted, "QR code not yet available. Please wait...")
		return
	}

	png, err := qrcode.Encode(qrCodeString, qrcode.Medium, 256)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) GetWhatsAppStatus(c *gin.Context) {
	if h.whatsapp == nil {
		c.JSON(http.StatusOK, gin.H{"connected": false, "error": "WhatsApp not configured"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected": h.whatsapp.IsConnected(),
		"logged_in": h.whatsapp.IsLoggedIn(),
		"phone":     h.whatsapp.PhoneNumber(),
		"hasQR":     h.whatsapp.GetQR() != "",
	})
}

func (h *Handler) ConnectWhatsApp(c *gin.Context) {
	if h.whatsapp == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WhatsApp not configured"})
		return
	}

	if err := h.whatsapp.Connect(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "connecting",
		"connected": h.whatsapp.IsLoggedIn(),
	})
}

func (h *Handler) LogoutWhatsApp(c *gin.Context) {
	if h.whatsapp == nil {
		c.JSON(http.StatusOK, gin.H{"status": "logged_out", "message": "WhatsApp not configured"})
		return
	}

	if err := h.whatsapp.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func (h *Handler) GetTelegramStatus(c *gin.Context) {
	if h.telegram == nil {
		c.JSON(http.StatusOK, gin.H{"connected": false, "error": "Telegram not configured"})
		return
	}

	running, botName := h.telegram.Status()
	c.JSON(http.StatusOK, gin.H{
		"connected": running,
		"bot_name":  botName,
	})
}

// GetChatbotStats reports how many conversations landed on each topic.
func (h *Handler) GetChatbotStats(c *gin.Context) {
	if h.conversas == nil {
		c.JSON(http.StatusOK, gin.H{"por_topico": gin.H{}})
		return
	}

	contagem, err := h.conversas.ContagemPorTopico()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	total := 0
	for _, n := range contagem {
		total += n
	}
	c.JSON(http.StatusOK, gin.H{
		"total":      total,
		"por_topico": contagem,
	})
}
