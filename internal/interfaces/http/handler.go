package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"project_escolaInfantil/internal/infrastructure"
	"project_escolaInfantil/internal/interfaces"
	"project_escolaInfantil/internal/usecases"
)

type Handler struct {
	chatbot    *usecases.Chatbot
	auth       *usecases.AuthUsecase
	relatorios *usecases.RelatorioUsecase

	alunos      interfaces.AlunoStore
	professores interfaces.ProfessorStore
	turmas      interfaces.TurmaStore
	pagamentos  interfaces.PagamentoStore
	presencas   interfaces.PresencaStore
	atividades  interfaces.AtividadeStore
	conversas   interfaces.ConversaStore

	whatsapp *infrastructure.WhatsAppGateway
	telegram *infrastructure.TelegramGateway

	// Staff chat that receives human-transfer requests, optional.
	atendente        interfaces.Messenger
	atendenteDestino string
}

type HandlerDeps struct {
	Chatbot    *usecases.Chatbot
	Auth       *usecases.AuthUsecase
	Relatorios *usecases.RelatorioUsecase

	Alunos      interfaces.AlunoStore
	Professores interfaces.ProfessorStore
	Turmas      interfaces.TurmaStore
	Pagamentos  interfaces.PagamentoStore
	Presencas   interfaces.PresencaStore
	Atividades  interfaces.AtividadeStore
	Conversas   interfaces.ConversaStore

	WhatsApp *infrastructure.WhatsAppGateway
	Telegram *infrastructure.TelegramGateway

	Atendente        interfaces.Messenger
	AtendenteDestino string
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		chatbot:          deps.Chatbot,
		auth:             deps.Auth,
		relatorios:       deps.Relatorios,
		alunos:           deps.Alunos,
		professores:      deps.Professores,
		turmas:           deps.Turmas,
		pagamentos:       deps.Pagamentos,
		presencas:        deps.Presencas,
		atividades:       deps.Atividades,
		conversas:        deps.Conversas,
		whatsapp:         deps.WhatsApp,
		telegram:         deps.Telegram,
		atendente:        deps.Atendente,
		atendenteDestino: deps.AtendenteDestino,
	}
}

func SetupRoutes(r *gin.Engine, h *Handler, middleware *Middleware) {
	r.Use(SecurityHeaders())
	r.Use(RequestSizeLimiter(10 << 20)) // 10MB max request size
	r.Use(middleware.CORSMiddleware())

	// Public chatbot routes
	r.POST("/api/chatbot/message", h.HandleChatMessage)
	r.GET("/api/chatbot/options", h.GetChatOptions)
	r.POST("/api/chatbot/transfer", h.HandleChatTransfer)

	// Public auth routes
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)
	}

	// Protected administrative API
	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	api.Use(middleware.RateLimitPerUser(5, 10))
	{
		api.GET("/alunos", h.ListAlunos)
		api.GET("/alunos/:id", h.GetAluno)
		api.POST("/alunos", h.CreateAluno)
		api.PUT("/alunos/:id", h.UpdateAluno)
		api.DELETE("/alunos/:id", h.DeleteAluno)
		api.GET("/alunos/:id/presencas", h.GetAlunoPresencas)

		api.GET("/professores", h.ListProfessores)
		api.GET("/professores/:id", h.GetProfessor)
		api.POST("/professores", h.CreateProfessor)
		api.PUT("/professores/:id", h.UpdateProfessor)
		api.DELETE("/professores/:id", h.DeleteProfessor)

		api.GET("/turmas", h.ListTurmas)
		api.GET("/turmas/:id", h.GetTurma)
		api.POST("/turmas", h.CreateTurma)
		api.PUT("/turmas/:id", h.UpdateTurma)
		api.DELETE("/turmas/:id", h.DeleteTurma)
		api.GET("/turmas/:id/alunos", h.ListAlunosDaTurma)

		api.GET("/pagamentos", h.ListPagamentos)
		api.GET("/pagamentos/:id", h.GetPagamento)
		api.POST("/pagamentos", h.CreatePagamento)
		api.PUT("/pagamentos/:id", h.UpdatePagamento)
		api.DELETE("/pagamentos/:id", h.DeletePagamento)

		api.GET("/presencas", h.ListPresencas)
		api.GET("/presencas/:id", h.GetPresenca)
		api.POST("/presencas", h.CreatePresenca)
		api.PUT("/presencas/:id", h.UpdatePresenca)
		api.DELETE("/presencas/:id", h.DeletePresenca)

		api.GET("/atividades", h.ListAtividades)
		api.GET("/atividades/:id", h.GetAtividade)
		api.POST("/atividades", h.CreateAtividade)
		api.PUT("/atividades/:id", h.UpdateAtividade)
		api.DELETE("/atividades/:id", h.DeleteAtividade)
		api.GET("/atividades/:id/participantes", h.GetAtividadeParticipantes)

		api.GET("/relatorios/pagamentos", h.RelatorioPagamentos)
		api.GET("/relatorios/inadimplencia", h.RelatorioInadimplencia)
		api.GET("/relatorios/presenca-diaria", h.RelatorioPresencaDiaria)
		api.GET("/relatorios/frequencia", h.RelatorioFrequencia)
		api.GET("/relatorios/atividades", h.RelatorioAtividades)
	}

	// Admin-only gateway management
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired())
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/whatsapp/qr", h.GetWhatsAppQRCode)
		admin.GET("/whatsapp/status", h.GetWhatsAppStatus)
		admin.POST("/whatsapp/connect", h.ConnectWhatsApp)
		admin.POST("/whatsapp/logout", h.LogoutWhatsApp)
		admin.GET("/telegram/status", h.GetTelegramStatus)
		admin.GET("/chatbot/stats", h.GetChatbotStats)
	}
}

// idParam parses the numeric :id path parameter.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Login string `json:"login"`
		Senha string `json:"senha"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	token, usuario, err := h.auth.Login(req.Login, req.Senha)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":        token,
		"login":        usuario.Login,
		"nivel_acesso": usuario.NivelAcesso,
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Login       string `json:"login"`
		Senha       string `json:"senha"`
		NivelAcesso string `json:"nivel_acesso"`
		IDProfessor *int   `json:"id_professor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !ValidLogin(req.Login) || len(req.Senha) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login or password (min 6 chars)"})
		return
	}

	err := h.auth.Register(req.Login, req.Senha, req.NivelAcesso, req.IDProfessor)
	switch {
	case errors.Is(err, usecases.ErrLoginJaExiste):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrNivelAcessoInvalido):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{"status": "registered"})
	}
}
