package usecases

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project_escolaInfantil/internal/entities"
)

type fakeLookup struct {
	aluno      *entities.Aluno
	alunoErr   error
	pendentes  []entities.Pagamento
	pendErr    error
	presencas  []entities.Presenca
	presErr    error
	atividades []entities.Atividade
	ativErr    error

	lookupCalls int
}

func (f *fakeLookup) FindAluno(id int) (*entities.Aluno, error) {
	f.lookupCalls++
	return f.aluno, f.alunoErr
}

func (f *fakeLookup) PagamentosPendentes(idAluno int) ([]entities.Pagamento, error) {
	f.lookupCalls++
	return f.pendentes, f.pendErr
}

func (f *fakeLookup) PresencasNoPeriodo(idAluno int, inicio, fim time.Time) ([]entities.Presenca, error) {
	f.lookupCalls++
	return f.presencas, f.presErr
}

func (f *fakeLookup) AtividadesNoPeriodo(idAluno int, inicio, fim time.Time) ([]entities.Atividade, error) {
	f.lookupCalls++
	return f.atividades, f.ativErr
}

func newTestChatbot(lookup *fakeLookup) *Chatbot {
	return NewChatbot(DefaultKeywordTable(), lookup, DefaultEscolaInfo())
}

func intPtr(i int) *int { return &i }

func data(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestResponderPagamentoPendentes(t *testing.T) {
	lookup := &fakeLookup{
		aluno: &entities.Aluno{ID: 7, NomeCompleto: "Maria Silva"},
		pendentes: []entities.Pagamento{
			{Referencia: "Maio/2024", ValorPago: 800.00, DataPagamento: data("2024-05-10"), Status: entities.PagamentoPendente},
			{Referencia: "Junho/2024", ValorPago: 800.00, DataPagamento: data("2024-06-10"), Status: entities.PagamentoPendente},
		},
	}
	bot := newTestChatbot(lookup)

	topic, resp := bot.Responder(entities.ChatMessage{
		Message:   "Consultar pagamentos",
		StudentID: intPtr(7),
	})

	assert.Equal(t, TopicPayment, topic)
	assert.Contains(t, resp.Reply, "Encontrei 2 pagamento(s) pendente(s) para Maria Silva")
	assert.Contains(t, resp.Reply, "Maio/2024: R$ 800.00 (Vencimento: 2024-05-10)")
	assert.Contains(t, resp.Reply, "Total devido: R$ 1600.00")
	assert.Equal(t, 1600.00, resp.Data["total_pending"])
	assert.Equal(t, 2, resp.Data["count"])
}

func TestResponderPagamentoSemPendencias(t *testing.T) {
	lookup := &fakeLookup{aluno: &entities.Aluno{ID: 7, NomeCompleto: "Maria Silva"}}
	bot := newTestChatbot(lookup)

	_, resp := bot.Responder(entities.ChatMessage{Message: "mensalidade", StudentID: intPtr(7)})

	assert.Contains(t, resp.Reply, "Não há pagamentos pendentes para Maria Silva")
	assert.Nil(t, resp.Data)
}

func TestResponderPagamentoSemAluno(t *testing.T) {
	lookup := &fakeLookup{}
	bot := newTestChatbot(lookup)

	_, resp := bot.Responder(entities.ChatMessage{Message: "quanto custa a mensalidade"})

	assert.Contains(t, resp.Reply, "preciso saber qual aluno")
	assert.Contains(t, resp.Options, "Como fazer um pagamento?")
	assert.Zero(t, lookup.lookupCalls, "no lookup without a student id")
}

func TestResponderAlunoNaoEncontrado(t *testing.T) {
	bot := newTestChatbot(&fakeLookup{})

	_, resp := bot.Responder(entities.ChatMessage{Message: "pagamento", StudentID: intPtr(99)})

	assert.Equal(t, "Aluno não encontrado.", resp.Reply)
}

func TestResponderErroDeConsulta(t *testing.T) {
	lookup := &fakeLookup{alunoErr: errors.New("connection refused")}
	bot := newTestChatbot(lookup)

	topic, resp := bot.Responder(entities.ChatMessage{Message: "pagamento", StudentID: intPtr(7)})

	assert.Equal(t, TopicPayment, topic)
	assert.Contains(t, resp.Reply, "Erro ao consultar informações de pagamento")
	assert.Equal(t, true, resp.Data["erro"])
}

func TestResponderPresenca(t *testing.T) {
	lookup := &fakeLookup{
		aluno: &entities.Aluno{ID: 3, NomeCompleto: "João Souza"},
		presencas: []entities.Presenca{
			{Presente: true}, {Presente: true}, {Presente: true}, {Presente: false},
		},
	}
	bot := newTestChatbot(lookup)
	bot.now = func() time.Time { return data("2024-05-20") }

	topic, resp := bot.Responder(entities.ChatMessage{
		Message:   "Verificar presenças",
		StudentID: intPtr(3),
	})

	assert.Equal(t, TopicAttendance, topic)
	assert.Contains(t, resp.Reply, "Frequência de João Souza neste mês")
	assert.Contains(t, resp.Reply, "Total de dias letivos: 4")
	assert.Contains(t, resp.Reply, "Dias presentes: 3")
	assert.Contains(t, resp.Reply, "Dias ausentes: 1")
	assert.Contains(t, resp.Reply, "Percentual de frequência: 75.0%")
	assert.Equal(t, 75.0, resp.Data["percentage"])
	assert.Equal(t, 3, resp.Data["present_days"])
	assert.Equal(t, 4, resp.Data["total_days"])
}

func TestResponderPresencaSemRegistros(t *testing.T) {
	lookup := &fakeLookup{aluno: &entities.Aluno{ID: 3, NomeCompleto: "João Souza"}}
	bot := newTestChatbot(lookup)

	_, resp := bot.Responder(entities.ChatMessage{Message: "frequência", StudentID: intPtr(3)})

	assert.Contains(t, resp.Reply, "Ainda não há registros de presença para João Souza")
}

func TestResponderAtividade(t *testing.T) {
	longa := strings.Repeat("a", 150)
	lookup := &fakeLookup{
		aluno: &entities.Aluno{ID: 5, NomeCompleto: "Ana Lima"},
		atividades: []entities.Atividade{
			{Descricao: "Pintura com tinta guache", DataRealizacao: data("2024-05-18")},
			{Descricao: longa, DataRealizacao: data("2024-05-19")},
		},
	}
	bot := newTestChatbot(lookup)
	bot.now = func() time.Time { return data("2024-05-20") }

	topic, resp := bot.Responder(entities.ChatMessage{
		Message:   "Ver atividades",
		StudentID: intPtr(5),
	})

	assert.Equal(t, TopicActivity, topic)
	assert.Contains(t, resp.Reply, "Atividades recentes de Ana Lima")
	assert.Contains(t, resp.Reply, "18/05/2024: Pintura com tinta guache...")
	// Long descriptions are cut at 100 runes
	assert.Contains(t, resp.Reply, strings.Repeat("a", 100)+"...")
	assert.NotContains(t, resp.Reply, strings.Repeat("a", 101))
	assert.Equal(t, 2, resp.Data["count"])
}

func TestResponderAtividadeSemRegistros(t *testing.T) {
	lookup := &fakeLookup{aluno: &entities.Aluno{ID: 5, NomeCompleto: "Ana Lima"}}
	bot := newTestChatbot(lookup)

	_, resp := bot.Responder(entities.ChatMessage{Message: "atividade", StudentID: intPtr(5)})

	assert.Contains(t, resp.Reply, "Não há atividades registradas para Ana Lima nos últimos 7 dias")
}

func TestResponderHorarioSemConsulta(t *testing.T) {
	// Lookup primed to fail, proving fixed topics never hit the database
	lookup := &fakeLookup{alunoErr: errors.New("should not be called")}
	bot := newTestChatbot(lookup)

	topic, resp := bot.Responder(entities.ChatMessage{Message: "Qual o horário da escola?"})

	assert.Equal(t, TopicHours, topic)
	assert.Contains(t, resp.Reply, "7h às 19h")
	assert.Contains(t, resp.Reply, "segunda a sexta-feira")
	assert.Zero(t, lookup.lookupCalls)
}

func TestResponderContato(t *testing.T) {
	bot := newTestChatbot(&fakeLookup{})

	topic, resp := bot.Responder(entities.ChatMessage{Message: "qual o telefone?"})

	assert.Equal(t, TopicContact, topic)
	assert.Contains(t, resp.Reply, "contato@unifaat-ads.edu.br")
	assert.Contains(t, resp.Options, "Agendar reunião")
}

func TestResponderSaudacao(t *testing.T) {
	bot := newTestChatbot(&fakeLookup{})

	topic, resp := bot.Responder(entities.ChatMessage{Message: "Olá"})

	assert.Equal(t, TopicGreeting, topic)
	assert.Contains(t, resp.Reply, "Escola Infantil UniFAAT-ADS")
	require.Len(t, resp.Options, 5)
	assert.Contains(t, resp.Options, "Consultar pagamentos")
}

func TestResponderPadrao(t *testing.T) {
	bot := newTestChatbot(&fakeLookup{})

	topic, resp := bot.Responder(entities.ChatMessage{Message: "qwerty"})

	assert.Equal(t, TopicUnknown, topic)
	assert.Contains(t, resp.Reply, "não entendi")
	assert.Contains(t, resp.Options, "Falar com atendente")
}
