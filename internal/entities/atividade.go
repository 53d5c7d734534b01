package entities

import "time"

type Atividade struct {
	ID             int       `json:"id_atividade"`
	Descricao      string    `json:"descricao"`
	DataRealizacao time.Time `json:"data_realizacao"`
}

// AtividadeParticipante is an atividade_aluno association row with the
// student's data already resolved.
type AtividadeParticipante struct {
	IDAluno      int    `json:"id_aluno"`
	NomeCompleto string `json:"nome_completo"`
	Turma        string `json:"turma,omitempty"`
}
