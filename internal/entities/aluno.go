package entities

import "time"

type Aluno struct {
	ID                    int       `json:"id_aluno"`
	NomeCompleto          string    `json:"nome_completo"`
	DataNascimento        time.Time `json:"data_nascimento"`
	IDTurma               int       `json:"id_turma"`
	NomeResponsavel       string    `json:"nome_responsavel"`
	TelefoneResponsavel   string    `json:"telefone_responsavel"`
	EmailResponsavel      string    `json:"email_responsavel"`
	InformacoesAdicionais string    `json:"informacoes_adicionais"`
}

type Professor struct {
	ID           int    `json:"id_professor"`
	NomeCompleto string `json:"nome_completo"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`
}

type Turma struct {
	ID          int    `json:"id_turma"`
	NomeTurma   string `json:"nome_turma"`
	IDProfessor int    `json:"id_professor"`
	Horario     string `json:"horario"`
}
