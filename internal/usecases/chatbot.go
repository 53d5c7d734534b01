package usecases

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"project_escolaInfantil/internal/entities"
	"project_escolaInfantil/internal/interfaces"
)

// EscolaInfo is the school profile used in fixed replies. Loaded once at
// startup (env / bot_config table) and treated as immutable.
type EscolaInfo struct {
	Nome                 string
	Telefone             string
	Email                string
	Endereco             string
	DiasFuncionamento    string
	HorarioFuncionamento string
	HorarioAtendimento   string
}

func DefaultEscolaInfo() EscolaInfo {
	return EscolaInfo{
		Nome:                 "Escola Infantil UniFAAT-ADS",
		Telefone:             "(XX) XXXX-XXXX",
		Email:                "contato@unifaat-ads.edu.br",
		Endereco:             "[Endereço da escola]",
		DiasFuncionamento:    "segunda a sexta-feira",
		HorarioFuncionamento: "7h às 19h",
		HorarioAtendimento:   "Segunda a Sexta, 7h às 19h",
	}
}

// Chatbot answers one message at a time via keyword classification and
// templated replies. It holds no conversation state; lookups are read-only.
type Chatbot struct {
	table  *KeywordTable
	lookup interfaces.RecordLookup
	escola EscolaInfo
	now    func() time.Time
}

func NewChatbot(table *KeywordTable, lookup interfaces.RecordLookup, escola EscolaInfo) *Chatbot {
	return &Chatbot{
		table:  table,
		lookup: lookup,
		escola: escola,
		now:    time.Now,
	}
}

func (b *Chatbot) Classify(text string) Topic {
	return b.table.Classify(text)
}

// Escola exposes the school profile for channels that greet on their own.
func (b *Chatbot) Escola() EscolaInfo {
	return b.escola
}

// Responder classifies the message and dispatches to the topic handler.
// Lookup failures never escape: they come back as an apology reply with
// Data["erro"] = true.
func (b *Chatbot) Responder(msg entities.ChatMessage) (Topic, entities.ChatResponse) {
	topic := b.table.Classify(msg.Message)

	switch topic {
	case TopicGreeting:
		return topic, b.respostaSaudacao()
	case TopicPayment:
		return topic, b.respostaPagamento(msg.StudentID)
	case TopicAttendance:
		return topic, b.respostaPresenca(msg.StudentID)
	case TopicActivity:
		return topic, b.respostaAtividade(msg.StudentID)
	case TopicHours:
		return topic, b.respostaHorario()
	case TopicContact:
		return topic, b.respostaContato()
	default:
		return topic, b.respostaPadrao()
	}
}

// OpcoesIniciais is the canned welcome used by GET /chatbot/options and the
// messaging gateways' /start flows.
func (b *Chatbot) OpcoesIniciais() entities.ChatResponse {
	return entities.ChatResponse{
		Reply:   fmt.Sprintf("Olá! Sou o assistente virtual da %s. Como posso ajudá-lo?", b.escola.Nome),
		Options: opcoesPrincipais(),
	}
}

func opcoesPrincipais() []string {
	return []string{
		"Consultar pagamentos",
		"Verificar presenças",
		"Ver atividades",
		"Horário de funcionamento",
		"Informações de contato",
	}
}

func (b *Chatbot) respostaSaudacao() entities.ChatResponse {
	return entities.ChatResponse{
		Reply:   fmt.Sprintf("Olá! Sou o assistente virtual da %s. Como posso ajudá-lo hoje?", b.escola.Nome),
		Options: opcoesPrincipais(),
	}
}

func (b *Chatbot) respostaPagamento(idAluno *int) entities.ChatResponse {
	if idAluno == nil {
		return entities.ChatResponse{
			Reply: "Para consultar informações específicas de pagamento, preciso saber qual aluno. " +
				"Os pagamentos podem ser realizados até o dia 10 de cada mês via PIX, cartão ou dinheiro na secretaria.",
			Options: []string{"Como fazer um pagamento?", "Formas de pagamento aceitas"},
		}
	}

	aluno, err := b.lookup.FindAluno(*idAluno)
	if err != nil {
		return b.respostaErro("pagamento", err)
	}
	if aluno == nil {
		return entities.ChatResponse{Reply: "Aluno não encontrado."}
	}

	pendentes, err := b.lookup.PagamentosPendentes(*idAluno)
	if err != nil {
		return b.respostaErro("pagamento", err)
	}

	if len(pendentes) == 0 {
		return entities.ChatResponse{
			Reply: fmt.Sprintf("Ótimas notícias! Não há pagamentos pendentes para %s.", aluno.NomeCompleto),
		}
	}

	var sb strings.Builder
	var total float64
	fmt.Fprintf(&sb, "Olá! Encontrei %d pagamento(s) pendente(s) para %s:\n\n", len(pendentes), aluno.NomeCompleto)
	for _, p := range pendentes {
		total += p.ValorPago
		fmt.Fprintf(&sb, "• %s: R$ %.2f (Vencimento: %s)\n", p.Referencia, p.ValorPago, p.DataPagamento.Format("2006-01-02"))
	}
	fmt.Fprintf(&sb, "\nTotal devido: R$ %.2f", total)

	return entities.ChatResponse{
		Reply: sb.String(),
		Data: map[string]interface{}{
			"total_pending": total,
			"count":         len(pendentes),
		},
	}
}

func (b *Chatbot) respostaPresenca(idAluno *int) entities.ChatResponse {
	if idAluno == nil {
		return entities.ChatResponse{
			Reply: "Para consultar a frequência específica, preciso saber qual aluno. " +
				"Em caso de faltas, é importante justificar na secretaria.",
			Options: []string{"Como justificar uma falta?", "Política de frequência"},
		}
	}

	aluno, err := b.lookup.FindAluno(*idAluno)
	if err != nil {
		return b.respostaErro("presença", err)
	}
	if aluno == nil {
		return entities.ChatResponse{Reply: "Aluno não encontrado."}
	}

	hoje := b.now()
	inicioMes := time.Date(hoje.Year(), hoje.Month(), 1, 0, 0, 0, 0, hoje.Location())

	presencas, err := b.lookup.PresencasNoPeriodo(*idAluno, inicioMes, hoje)
	if err != nil {
		return b.respostaErro("presença", err)
	}

	if len(presencas) == 0 {
		return entities.ChatResponse{
			Reply: fmt.Sprintf("Ainda não há registros de presença para %s neste mês.", aluno.NomeCompleto),
		}
	}

	totalDias := len(presencas)
	diasPresentes := 0
	for _, p := range presencas {
		if p.Presente {
			diasPresentes++
		}
	}
	percentual := 0.0
	if totalDias > 0 {
		percentual = float64(diasPresentes) / float64(totalDias) * 100
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Frequência de %s neste mês:\n\n", aluno.NomeCompleto)
	fmt.Fprintf(&sb, "• Total de dias letivos: %d\n", totalDias)
	fmt.Fprintf(&sb, "• Dias presentes: %d\n", diasPresentes)
	fmt.Fprintf(&sb, "• Dias ausentes: %d\n", totalDias-diasPresentes)
	fmt.Fprintf(&sb, "• Percentual de frequência: %.1f%%", percentual)

	return entities.ChatResponse{
		Reply: sb.String(),
		Data: map[string]interface{}{
			"percentage":   percentual,
			"present_days": diasPresentes,
			"total_days":   totalDias,
		},
	}
}

func (b *Chatbot) respostaAtividade(idAluno *int) entities.ChatResponse {
	if idAluno == nil {
		return entities.ChatResponse{
			Reply: "Para consultar atividades específicas, preciso saber qual aluno. " +
				"As atividades são planejadas de acordo com a faixa etária e desenvolvimento pedagógico.",
			Options: []string{"Tipos de atividades realizadas", "Cronograma de atividades"},
		}
	}

	aluno, err := b.lookup.FindAluno(*idAluno)
	if err != nil {
		return b.respostaErro("atividade", err)
	}
	if aluno == nil {
		return entities.ChatResponse{Reply: "Aluno não encontrado."}
	}

	hoje := b.now()
	limite := hoje.AddDate(0, 0, -7)

	atividades, err := b.lookup.AtividadesNoPeriodo(*idAluno, limite, hoje)
	if err != nil {
		return b.respostaErro("atividade", err)
	}

	if len(atividades) == 0 {
		return entities.ChatResponse{
			Reply: fmt.Sprintf("Não há atividades registradas para %s nos últimos 7 dias.", aluno.NomeCompleto),
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Atividades recentes de %s:\n\n", aluno.NomeCompleto)
	for _, a := range atividades {
		fmt.Fprintf(&sb, "• %s: %s...\n", a.DataRealizacao.Format("02/01/2006"), truncate(a.Descricao, 100))
	}

	return entities.ChatResponse{
		Reply: sb.String(),
		Data:  map[string]interface{}{"count": len(atividades)},
	}
}

func (b *Chatbot) respostaHorario() entities.ChatResponse {
	return entities.ChatResponse{
		Reply: fmt.Sprintf("A %s funciona de %s, das %s. Estamos fechados aos sábados, domingos e feriados.",
			b.escola.Nome, b.escola.DiasFuncionamento, b.escola.HorarioFuncionamento),
		Data: map[string]interface{}{
			"horario_funcionamento": b.escola.HorarioFuncionamento,
			"dias_funcionamento":    b.escola.DiasFuncionamento,
		},
	}
}

func (b *Chatbot) respostaContato() entities.ChatResponse {
	var sb strings.Builder
	sb.WriteString("Para entrar em contato conosco:\n\n")
	fmt.Fprintf(&sb, "• Telefone: %s\n", b.escola.Telefone)
	fmt.Fprintf(&sb, "• Email: %s\n", b.escola.Email)
	fmt.Fprintf(&sb, "• Endereço: %s\n", b.escola.Endereco)
	fmt.Fprintf(&sb, "• Horário de atendimento: %s\n\n", b.escola.HorarioAtendimento)
	sb.WriteString("Para assuntos urgentes, procure a secretaria presencialmente.")

	return entities.ChatResponse{
		Reply:   sb.String(),
		Options: []string{"Agendar reunião", "Falar com a direção", "Secretaria"},
	}
}

func (b *Chatbot) respostaPadrao() entities.ChatResponse {
	return entities.ChatResponse{
		Reply: "Desculpe, não entendi sua pergunta. Posso ajudá-lo com informações sobre:\n\n" +
			"• Pagamentos e mensalidades\n" +
			"• Frequência e presenças\n" +
			"• Atividades pedagógicas\n" +
			"• Horário de funcionamento\n" +
			"• Informações de contato\n\n" +
			"Por favor, reformule sua pergunta ou escolha uma das opções acima.",
		Options: []string{
			"Consultar pagamentos",
			"Verificar presenças",
			"Ver atividades",
			"Horário de funcionamento",
			"Falar com atendente",
		},
	}
}

func (b *Chatbot) respostaErro(assunto string, err error) entities.ChatResponse {
	log.Warn().Err(err).Str("assunto", assunto).Msg("chatbot lookup failed")
	return entities.ChatResponse{
		Reply: fmt.Sprintf("Erro ao consultar informações de %s. Tente novamente mais tarde.", assunto),
		Data:  map[string]interface{}{"erro": true},
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
