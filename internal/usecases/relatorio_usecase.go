package usecases

import (
	"fmt"
	"math"
	"time"

	"project_escolaInfantil/internal/entities"
	"project_escolaInfantil/internal/interfaces"
)

const dataISO = "2006-01-02"

type RelatorioPagamentos struct {
	Periodo       string               `json:"periodo"`
	TotalRecebido float64              `json:"total_recebido"`
	TotalPendente float64              `json:"total_pendente"`
	Quantidade    int                  `json:"quantidade_pagamentos"`
	Pagamentos    []PagamentoRelatorio `json:"pagamentos"`
}

type PagamentoRelatorio struct {
	ID             int     `json:"id_pagamento"`
	IDAluno        int     `json:"id_aluno"`
	DataPagamento  string  `json:"data_pagamento"`
	ValorPago      float64 `json:"valor_pago"`
	FormaPagamento string  `json:"forma_pagamento"`
	Referencia     string  `json:"referencia"`
	Status         string  `json:"status"`
}

type Inadimplente struct {
	Aluno               string               `json:"aluno"`
	Responsavel         string               `json:"responsavel"`
	Telefone            string               `json:"telefone"`
	Email               string               `json:"email"`
	TotalDevido         float64              `json:"total_devido"`
	PagamentosPendentes []PagamentoRelatorio `json:"pagamentos_pendentes"`
}

type RelatorioInadimplencia struct {
	TotalInadimplentes int            `json:"total_inadimplentes"`
	ValorTotalDevido   float64        `json:"valor_total_devido"`
	Inadimplentes      []Inadimplente `json:"inadimplentes"`
}

type FrequenciaAluno struct {
	IDAluno       int     `json:"id_aluno"`
	AlunoNome     string  `json:"aluno_nome"`
	TotalDias     int     `json:"total_dias"`
	DiasPresentes int     `json:"dias_presentes"`
	DiasAusentes  int     `json:"dias_ausentes"`
	Percentual    float64 `json:"percentual_frequencia"`
}

type RelatorioFrequencia struct {
	Periodo            string            `json:"periodo"`
	TotalAlunos        int               `json:"total_alunos"`
	FrequenciaPorAluno []FrequenciaAluno `json:"frequencia_por_aluno"`
}

type PresencaDia struct {
	IDAluno   int    `json:"id_aluno"`
	AlunoNome string `json:"aluno_nome"`
	Presente  bool   `json:"presente"`
}

type RelatorioDiario struct {
	Data               string        `json:"data"`
	TotalAlunos        int           `json:"total_alunos"`
	Presentes          int           `json:"presentes"`
	Ausentes           int           `json:"ausentes"`
	PercentualPresenca float64       `json:"percentual_presenca"`
	Detalhes           []PresencaDia `json:"detalhes"`
}

type AtividadeRelatorio struct {
	ID                 int                              `json:"id_atividade"`
	Descricao          string                           `json:"descricao"`
	DataRealizacao     string                           `json:"data_realizacao"`
	TotalParticipantes int                              `json:"total_participantes"`
	Participantes      []entities.AtividadeParticipante `json:"participantes"`
}

type RelatorioAtividades struct {
	Periodo         string               `json:"periodo"`
	IDTurma         *int                 `json:"id_turma"`
	TotalAtividades int                  `json:"total_atividades"`
	Atividades      []AtividadeRelatorio `json:"atividades"`
}

// RelatorioUsecase aggregates administrative reports over the stores.
type RelatorioUsecase struct {
	alunos     interfaces.AlunoStore
	pagamentos interfaces.PagamentoStore
	presencas  interfaces.PresencaStore
	atividades interfaces.AtividadeStore
}

func NewRelatorioUsecase(
	alunos interfaces.AlunoStore,
	pagamentos interfaces.PagamentoStore,
	presencas interfaces.PresencaStore,
	atividades interfaces.AtividadeStore,
) *RelatorioUsecase {
	return &RelatorioUsecase{
		alunos:     alunos,
		pagamentos: pagamentos,
		presencas:  presencas,
		atividades: atividades,
	}
}

func (u *RelatorioUsecase) PagamentosPeriodo(inicio, fim time.Time) (*RelatorioPagamentos, error) {
	pagamentos, err := u.pagamentos.ListByPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}

	rel := &RelatorioPagamentos{
		Periodo:    periodoLabel(inicio, fim),
		Quantidade: len(pagamentos),
		Pagamentos: make([]PagamentoRelatorio, 0, len(pagamentos)),
	}
	for _, p := range pagamentos {
		switch p.Status {
		case entities.PagamentoPago:
			rel.TotalRecebido += p.ValorPago
		case entities.PagamentoPendente:
			rel.TotalPendente += p.ValorPago
		}
		rel.Pagamentos = append(rel.Pagamentos, pagamentoRelatorio(p))
	}
	return rel, nil
}

func (u *RelatorioUsecase) Inadimplencia() (*RelatorioInadimplencia, error) {
	pendentes, err := u.pagamentos.ListPendentes()
	if err != nil {
		return nil, err
	}

	porAluno := make(map[int]*Inadimplente)
	var ordem []int
	for _, p := range pendentes {
		entry, ok := porAluno[p.IDAluno]
		if !ok {
			aluno, err := u.alunos.Get(p.IDAluno)
			if err != nil {
				return nil, err
			}
			if aluno == nil {
				continue // orphaned payment row, skip like the dashboard does
			}
			entry = &Inadimplente{
				Aluno:       aluno.NomeCompleto,
				Responsavel: aluno.NomeResponsavel,
				Telefone:    aluno.TelefoneResponsavel,
				Email:       aluno.EmailResponsavel,
			}
			porAluno[p.IDAluno] = entry
			ordem = append(ordem, p.IDAluno)
		}
		entry.TotalDevido += p.ValorPago
		entry.PagamentosPendentes = append(entry.PagamentosPendentes, pagamentoRelatorio(p))
	}

	rel := &RelatorioInadimplencia{TotalInadimplentes: len(porAluno)}
	for _, id := range ordem {
		rel.ValorTotalDevido += porAluno[id].TotalDevido
		rel.Inadimplentes = append(rel.Inadimplentes, *porAluno[id])
	}
	return rel, nil
}

func (u *RelatorioUsecase) FrequenciaPeriodo(inicio, fim time.Time) (*RelatorioFrequencia, error) {
	presencas, err := u.presencas.ListByPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}

	type contagem struct{ total, presentes int }
	porAluno := make(map[int]*contagem)
	var ordem []int
	for _, p := range presencas {
		c, ok := porAluno[p.IDAluno]
		if !ok {
			c = &contagem{}
			porAluno[p.IDAluno] = c
			ordem = append(ordem, p.IDAluno)
		}
		c.total++
		if p.Presente {
			c.presentes++
		}
	}

	rel := &RelatorioFrequencia{Periodo: periodoLabel(inicio, fim)}
	for _, id := range ordem {
		aluno, err := u.alunos.Get(id)
		if err != nil {
			return nil, err
		}
		if aluno == nil {
			continue
		}
		c := porAluno[id]
		rel.FrequenciaPorAluno = append(rel.FrequenciaPorAluno, FrequenciaAluno{
			IDAluno:       id,
			AlunoNome:     aluno.NomeCompleto,
			TotalDias:     c.total,
			DiasPresentes: c.presentes,
			DiasAusentes:  c.total - c.presentes,
			Percentual:    Percentual(c.presentes, c.total),
		})
	}
	rel.TotalAlunos = len(rel.FrequenciaPorAluno)
	return rel, nil
}

func (u *RelatorioUsecase) PresencaDiaria(data time.Time) (*RelatorioDiario, error) {
	presencas, err := u.presencas.ListByData(data)
	if err != nil {
		return nil, err
	}

	rel := &RelatorioDiario{
		Data:        data.Format(dataISO),
		TotalAlunos: len(presencas),
		Detalhes:    make([]PresencaDia, 0, len(presencas)),
	}
	for _, p := range presencas {
		if p.Presente {
			rel.Presentes++
		}
		nome := ""
		if aluno, err := u.alunos.Get(p.IDAluno); err == nil && aluno != nil {
			nome = aluno.NomeCompleto
		}
		rel.Detalhes = append(rel.Detalhes, PresencaDia{IDAluno: p.IDAluno, AlunoNome: nome, Presente: p.Presente})
	}
	rel.Ausentes = rel.TotalAlunos - rel.Presentes
	rel.PercentualPresenca = Percentual(rel.Presentes, rel.TotalAlunos)
	return rel, nil
}

func (u *RelatorioUsecase) AtividadesPeriodo(inicio, fim time.Time, idTurma *int) (*RelatorioAtividades, error) {
	atividades, err := u.atividades.ListByPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}

	rel := &RelatorioAtividades{
		Periodo: periodoLabel(inicio, fim),
		IDTurma: idTurma,
	}
	for _, a := range atividades {
		participantes, err := u.atividades.Participantes(a.ID)
		if err != nil {
			return nil, err
		}

		if idTurma != nil {
			filtrados := participantes[:0:0]
			for _, p := range participantes {
				aluno, err := u.alunos.Get(p.IDAluno)
				if err != nil {
					return nil, err
				}
				if aluno != nil && aluno.IDTurma == *idTurma {
					filtrados = append(filtrados, p)
				}
			}
			participantes = filtrados
			if len(participantes) == 0 {
				continue
			}
		}

		rel.Atividades = append(rel.Atividades, AtividadeRelatorio{
			ID:                 a.ID,
			Descricao:          a.Descricao,
			DataRealizacao:     a.DataRealizacao.Format(dataISO),
			TotalParticipantes: len(participantes),
			Participantes:      participantes,
		})
	}
	rel.TotalAtividades = len(rel.Atividades)
	return rel, nil
}

// Percentual is presentes/total*100 rounded to 2 decimals; 0 when total is 0.
func Percentual(presentes, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(presentes)/float64(total)*100*100) / 100
}

func pagamentoRelatorio(p entities.Pagamento) PagamentoRelatorio {
	return PagamentoRelatorio{
		ID:             p.ID,
		IDAluno:        p.IDAluno,
		DataPagamento:  p.DataPagamento.Format(dataISO),
		ValorPago:      p.ValorPago,
		FormaPagamento: p.FormaPagamento,
		Referencia:     p.Referencia,
		Status:         p.Status,
	}
}

func periodoLabel(inicio, fim time.Time) string {
	return fmt.Sprintf("%s a %s", inicio.Format(dataISO), fim.Format(dataISO))
}
