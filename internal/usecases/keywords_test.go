package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	table := DefaultKeywordTable()

	tests := []struct {
		name string
		text string
		want Topic
	}{
		{"greeting simple", "Olá", TopicGreeting},
		{"greeting sentence", "bom dia, tudo bem?", TopicGreeting},
		{"greeting uppercase", "OI", TopicGreeting},
		{"payment keyword", "Qual o valor da mensalidade?", TopicPayment},
		{"payment quanto", "quanto custa a escola", TopicPayment},
		{"payment pix", "posso pagar via pix?", TopicPayment},
		{"attendance keyword", "meu filho faltou ontem", TopicAttendance},
		{"attendance frequencia", "como está a frequência dele", TopicAttendance},
		{"activity keyword", "qual foi a atividade de hoje", TopicActivity},
		{"activity prova", "quando é a prova", TopicActivity},
		{"hours keyword", "qual o horário da escola", TopicHours},
		{"hours abre", "que horas abre", TopicHours},
		{"contact keyword", "preciso do telefone da escola", TopicContact},
		{"contact endereco", "qual o endereço", TopicContact},
		{"unknown", "xyzabc", TopicUnknown},
		{"empty", "", TopicUnknown},
		{"whitespace only", "   ", TopicUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Classify(tt.text))
		})
	}
}

func TestClassifyShortcuts(t *testing.T) {
	table := DefaultKeywordTable()

	tests := []struct {
		text string
		want Topic
	}{
		{"Consultar pagamentos", TopicPayment},
		{"Verificar presenças", TopicAttendance},
		{"Ver atividades", TopicActivity},
		{"Horário de funcionamento", TopicHours},
		{"Informações de contato", TopicContact},
		{"Falar com atendente", TopicContact},
		{"Agendar reunião", TopicContact},
		{"Falar com a direção", TopicContact},
		{"Secretaria", TopicContact},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Classify(tt.text))
			// Shortcut matching must survive surrounding whitespace and case
			assert.Equal(t, tt.want, table.Classify("  "+tt.text+"  "))
		})
	}
}

func TestClassifyOrderDisambiguation(t *testing.T) {
	table := DefaultKeywordTable()

	// "atraso" is listed under both payment and attendance; payment comes
	// first in the scan order, so it always wins.
	assert.Equal(t, TopicPayment, table.Classify("pagamento em atraso"))
	assert.Equal(t, TopicPayment, table.Classify("atraso"))

	// "secretaria" as a shortcut beats the keyword scan ("secretaria" is
	// also a contact keyword, so same answer either way).
	assert.Equal(t, TopicContact, table.Classify("secretaria"))
}

func TestClassifyDeterministic(t *testing.T) {
	table := DefaultKeywordTable()

	first := table.Classify("atraso")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, table.Classify("atraso"))
	}
}
