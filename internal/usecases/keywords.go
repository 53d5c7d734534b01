package usecases

import "strings"

// Topic is the single classified intent of an incoming chat message.
type Topic string

const (
	TopicGreeting   Topic = "greeting"
	TopicPayment    Topic = "payment"
	TopicAttendance Topic = "attendance"
	TopicActivity   Topic = "activity"
	TopicHours      Topic = "hours"
	TopicContact    Topic = "contact"
	TopicUnknown    Topic = "unknown"
)

// KeywordTable holds the keyword sets and shortcut phrases used for intent
// classification. Built once at startup and never mutated afterwards.
type KeywordTable struct {
	order     []Topic
	keywords  map[Topic][]string
	shortcuts map[string]Topic
}

// NewKeywordTable builds a table scanning topics in the given order. Matching
// is case-insensitive substring containment, first topic wins.
func NewKeywordTable(order []Topic, keywords map[Topic][]string, shortcuts map[string]Topic) *KeywordTable {
	return &KeywordTable{order: order, keywords: keywords, shortcuts: shortcuts}
}

// DefaultKeywordTable returns the stock Portuguese keyword sets. Some words
// appear under more than one topic ("atraso" is both a payment and an
// attendance word); the scan order is the only disambiguation.
func DefaultKeywordTable() *KeywordTable {
	return NewKeywordTable(
		[]Topic{TopicGreeting, TopicPayment, TopicAttendance, TopicActivity, TopicHours, TopicContact},
		map[Topic][]string{
			TopicGreeting: {
				"olá", "oi", "bom dia", "boa tarde", "boa noite", "hey", "e aí",
				"saudações", "salve", "tudo bem", "como vai", "fala", "opa", "alô",
				"hello", "hi",
			},
			TopicPayment: {
				"pagamento", "mensalidade", "valor", "quanto", "pagar", "boleto",
				"taxa", "cobrança", "fatura", "parcelamento", "desconto",
				"vencimento", "atraso", "quitar", "pagou", "pagarei", "pix",
				"cartão", "dinheiro", "transferência", "comprovante",
			},
			TopicAttendance: {
				"presença", "falta", "frequência", "ausência", "compareceu", "veio",
				"faltou", "presente", "ausente", "justificar", "atraso",
				"adiantamento", "pontualidade", "faltas", "presenças",
			},
			TopicActivity: {
				"atividade", "tarefa", "exercício", "trabalho", "projeto", "lição",
				"prova", "avaliação", "atividade extra", "atividade complementar",
				"atividade pedagógica", "atividade escolar", "atividade do dia",
				"atividade da semana", "atividade recente", "atividade passada",
				"atividade futura",
			},
			TopicHours: {
				"horário", "funcionamento", "abre", "fecha", "hora", "expediente",
				"abertura", "fechamento", "turno", "manhã", "tarde", "noite",
				"agenda", "calendário", "dias", "quando abre", "quando fecha",
			},
			TopicContact: {
				"contato", "telefone", "email", "falar", "conversar", "whatsapp",
				"zap", "mensagem", "atendimento", "secretaria", "direção",
				"diretor", "coordenador", "coordenação", "ajuda", "suporte",
				"informação", "informações", "endereço", "localização",
				"onde fica", "visita", "agendar", "reunião", "marcar", "encontro",
			},
		},
		map[string]Topic{
			"consultar pagamentos":     TopicPayment,
			"verificar presenças":      TopicAttendance,
			"ver atividades":           TopicActivity,
			"horário de funcionamento": TopicHours,
			"informações de contato":   TopicContact,
			"falar com atendente":      TopicContact,
			"agendar reunião":          TopicContact,
			"falar com a direção":      TopicContact,
			"secretaria":               TopicContact,
		},
	)
}

// Classify returns the topic for a message. The text is trimmed and
// lower-cased; an exact shortcut phrase (UI menu button) routes directly,
// otherwise topics are scanned in declaration order and the first topic with
// any keyword contained in the text wins. No match means TopicUnknown.
func (t *KeywordTable) Classify(text string) Topic {
	msg := strings.ToLower(strings.TrimSpace(text))

	if topic, ok := t.shortcuts[msg]; ok {
		return topic
	}

	for _, topic := range t.order {
		for _, kw := range t.keywords[topic] {
			if strings.Contains(msg, kw) {
				return topic
			}
		}
	}
	return TopicUnknown
}
