package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"project_escolaInfantil/internal/entities"
)

// HandleChatMessage is the web channel of the chatbot.
func (h *Handler) HandleChatMessage(c *gin.Context) {
	var payload struct {
		Message   string `json:"message"`
		StudentID *int   `json:"student_id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message required"})
		return
	}

	payload.Message = SanitizeString(payload.Message)
	if strings.TrimSpace(payload.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message required"})
		return
	}
	if !ValidateLength(payload.Message, 1, MaxMensagemLength) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message too long"})
		return
	}

	msg := entities.ChatMessage{
		Message:   payload.Message,
		StudentID: payload.StudentID,
		Channel:   "web",
	}
	topic, resp := h.chatbot.Responder(msg)

	// Conversation logging is best effort, a full log table never blocks a reply
	if h.conversas != nil {
		err := h.conversas.Registra(&entities.Conversa{
			Canal:    msg.Channel,
			IDAluno:  msg.StudentID,
			Mensagem: msg.Message,
			Topico:   string(topic),
		})
		if err != nil {
			log.Warn().Err(err).Msg("failed to log web conversation")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user_message": payload.Message,
		"bot_reply":    resp.Reply,
		"options":      resp.Options,
		"extra_data":   resp.Data,
		"timestamp":    time.Now().Format(time.RFC3339),
	})
}

// GetChatOptions returns the standard menu shown before any message is sent.
func (h *Handler) GetChatOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"options": h.chatbot.OpcoesIniciais()})
}

// HandleChatTransfer records a request to talk to a human attendant and, when
// a staff channel is configured, forwards it there.
func (h *Handler) HandleChatTransfer(c *gin.Context) {
	var payload struct {
		Nome     string `json:"nome"`
		Telefone string `json:"telefone"`
		Mensagem string `json:"mensagem"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nome and telefone required"})
		return
	}

	payload.Nome = SanitizeString(strings.TrimSpace(payload.Nome))
	payload.Telefone = SanitizeString(strings.TrimSpace(payload.Telefone))
	if payload.Nome == "" || payload.Telefone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nome and telefone required"})
		return
	}

	if h.atendente != nil && h.atendenteDestino != "" {
		texto := fmt.Sprintf("Novo pedido de atendimento:\nNome: %s\nTelefone: %s",
			payload.Nome, payload.Telefone)
		if payload.Mensagem != "" {
			texto += "\nMensagem: " + SanitizeString(payload.Mensagem)
		}
		if err := h.atendente.SendMessage(h.atendenteDestino, texto); err != nil {
			log.Warn().Err(err).Msg("failed to notify attendant channel")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "recebido",
		"message": "Obrigado! Um atendente entrará em contato em breve.",
	})
}
