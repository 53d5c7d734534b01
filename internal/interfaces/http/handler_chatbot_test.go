package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project_escolaInfantil/internal/entities"
	"project_escolaInfantil/internal/usecases"
)

type fakeLookup struct {
	aluno     *entities.Aluno
	pendentes []entities.Pagamento
	calls     int
}

func (f *fakeLookup) FindAluno(id int) (*entities.Aluno, error) {
	f.calls++
	return f.aluno, nil
}

func (f *fakeLookup) PagamentosPendentes(idAluno int) ([]entities.Pagamento, error) {
	f.calls++
	return f.pendentes, nil
}

func (f *fakeLookup) PresencasNoPeriodo(idAluno int, inicio, fim time.Time) ([]entities.Presenca, error) {
	f.calls++
	return nil, nil
}

func (f *fakeLookup) AtividadesNoPeriodo(idAluno int, inicio, fim time.Time) ([]entities.Atividade, error) {
	f.calls++
	return nil, nil
}

type fakeConversaStore struct {
	registradas []entities.Conversa
	err         error
}

func (f *fakeConversaStore) Registra(c *entities.Conversa) error {
	if f.err != nil {
		return f.err
	}
	f.registradas = append(f.registradas, *c)
	return nil
}

func (f *fakeConversaStore) ContagemPorTopico() (map[string]int, error) {
	contagem := make(map[string]int)
	for _, c := range f.registradas {
		contagem[c.Topico]++
	}
	return contagem, nil
}

type fakeMessenger struct {
	to      string
	content string
	err     error
}

func (f *fakeMessenger) SendMessage(to, content string) error {
	f.to = to
	f.content = content
	return f.err
}

func newChatbotRouter(lookup *fakeLookup, conversas *fakeConversaStore, atendente *fakeMessenger) *gin.Engine {
	gin.SetMode(gin.TestMode)

	chatbot := usecases.NewChatbot(usecases.DefaultKeywordTable(), lookup, usecases.DefaultEscolaInfo())
	deps := HandlerDeps{
		Chatbot: chatbot,
	}
	if conversas != nil {
		deps.Conversas = conversas
	}
	if atendente != nil {
		deps.Atendente = atendente
		deps.AtendenteDestino = "12345"
	}
	h := NewHandler(deps)

	r := gin.New()
	r.POST("/api/chatbot/message", h.HandleChatMessage)
	r.GET("/api/chatbot/options", h.GetChatOptions)
	r.POST("/api/chatbot/transfer", h.HandleChatTransfer)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandleChatMessageHorario(t *testing.T) {
	lookup := &fakeLookup{}
	conversas := &fakeConversaStore{}
	r := newChatbotRouter(lookup, conversas, nil)

	w := postJSON(t, r, "/api/chatbot/message", gin.H{"message": "Qual o horário da escola?"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		UserMessage string                 `json:"user_message"`
		BotReply    string                 `json:"bot_reply"`
		ExtraData   map[string]interface{} `json:"extra_data"`
		Timestamp   string                 `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Qual o horário da escola?", resp.UserMessage)
	assert.Contains(t, resp.BotReply, "7h às 19h")
	assert.Equal(t, "7h às 19h", resp.ExtraData["horario_funcionamento"])
	assert.NotEmpty(t, resp.Timestamp)
	assert.Zero(t, lookup.calls, "fixed topics never query records")

	require.Len(t, conversas.registradas, 1)
	assert.Equal(t, "hours", conversas.registradas[0].Topico)
	assert.Equal(t, "web", conversas.registradas[0].Canal)
}

func TestHandleChatMessageSaudacao(t *testing.T) {
	r := newChatbotRouter(&fakeLookup{}, nil, nil)

	w := postJSON(t, r, "/api/chatbot/message", gin.H{"message": "Olá"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Options []string `json:"options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Options, 5)
	assert.Contains(t, resp.Options, "Consultar pagamentos")
}

func TestHandleChatMessagePagamentoComAluno(t *testing.T) {
	lookup := &fakeLookup{
		aluno: &entities.Aluno{ID: 7, NomeCompleto: "Maria Silva"},
		pendentes: []entities.Pagamento{
			{Referencia: "Maio/2024", ValorPago: 800.00, DataPagamento: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
		},
	}
	r := newChatbotRouter(lookup, nil, nil)

	w := postJSON(t, r, "/api/chatbot/message", gin.H{"message": "Consultar pagamentos", "student_id": 7})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		BotReply  string                 `json:"bot_reply"`
		ExtraData map[string]interface{} `json:"extra_data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.BotReply, "Maio/2024: R$ 800.00")
	assert.Equal(t, 800.0, resp.ExtraData["total_pending"])
	assert.Equal(t, 1.0, resp.ExtraData["count"])
}

func TestHandleChatMessageVazia(t *testing.T) {
	r := newChatbotRouter(&fakeLookup{}, nil, nil)

	for _, body := range []gin.H{{}, {"message": ""}, {"message": "   "}} {
		w := postJSON(t, r, "/api/chatbot/message", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "message required")
	}
}

func TestHandleChatMessageLogFailureDoesNotBlock(t *testing.T) {
	conversas := &fakeConversaStore{err: errors.New("db down")}
	r := newChatbotRouter(&fakeLookup{}, conversas, nil)

	w := postJSON(t, r, "/api/chatbot/message", gin.H{"message": "Olá"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetChatOptions(t *testing.T) {
	r := newChatbotRouter(&fakeLookup{}, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chatbot/options", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Options struct {
			Reply   string   `json:"reply"`
			Options []string `json:"options"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Options.Options, 5)
}

func TestHandleChatTransfer(t *testing.T) {
	atendente := &fakeMessenger{}
	r := newChatbotRouter(&fakeLookup{}, nil, atendente)

	w := postJSON(t, r, "/api/chatbot/transfer", gin.H{
		"nome":     "Carla Silva",
		"telefone": "11999990000",
		"mensagem": "Quero falar sobre a matrícula",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recebido")
	assert.Equal(t, "12345", atendente.to)
	assert.Contains(t, atendente.content, "Carla Silva")
	assert.Contains(t, atendente.content, "11999990000")
}

func TestHandleChatTransferSemNome(t *testing.T) {
	r := newChatbotRouter(&fakeLookup{}, nil, nil)

	w := postJSON(t, r, "/api/chatbot/transfer", gin.H{"telefone": "11999990000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
