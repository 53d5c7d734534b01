package interfaces

import (
	"time"

	"project_escolaInfantil/internal/entities"
)

// Messenger is an outbound chat channel (Telegram, WhatsApp, ...).
type Messenger interface {
	SendMessage(to, content string) error
}

// RecordLookup is the read-only data access the chatbot composes replies
// from. Implementations return (nil, nil) when a student does not exist.
type RecordLookup interface {
	FindAluno(id int) (*entities.Aluno, error)
	PagamentosPendentes(idAluno int) ([]entities.Pagamento, error)
	PresencasNoPeriodo(idAluno int, inicio, fim time.Time) ([]entities.Presenca, error)
	AtividadesNoPeriodo(idAluno int, inicio, fim time.Time) ([]entities.Atividade, error)
}

type AlunoStore interface {
	List() ([]entities.Aluno, error)
	ListByTurma(idTurma int) ([]entities.Aluno, error)
	Get(id int) (*entities.Aluno, error)
	Create(a *entities.Aluno) error
	Update(a *entities.Aluno) error
	Delete(id int) error
}

type ProfessorStore interface {
	List() ([]entities.Professor, error)
	Get(id int) (*entities.Professor, error)
	Create(p *entities.Professor) error
	Update(p *entities.Professor) error
	Delete(id int) error
}

type TurmaStore interface {
	List() ([]entities.Turma, error)
	Get(id int) (*entities.Turma, error)
	Create(t *entities.Turma) error
	Update(t *entities.Turma) error
	Delete(id int) error
}

type PagamentoStore interface {
	List() ([]entities.Pagamento, error)
	ListByAluno(idAluno int) ([]entities.Pagamento, error)
	ListByPeriodo(inicio, fim time.Time) ([]entities.Pagamento, error)
	ListPendentes() ([]entities.Pagamento, error)
	Get(id int) (*entities.Pagamento, error)
	Create(p *entities.Pagamento) error
	Update(p *entities.Pagamento) error
	Delete(id int) error
}

type PresencaStore interface {
	List() ([]entities.Presenca, error)
	ListByData(data time.Time) ([]entities.Presenca, error)
	ListByAluno(idAluno int) ([]entities.Presenca, error)
	ListByAlunoPeriodo(idAluno int, inicio, fim time.Time) ([]entities.Presenca, error)
	ListByPeriodo(inicio, fim time.Time) ([]entities.Presenca, error)
	ExistsForAlunoData(idAluno int, data time.Time) (bool, error)
	Get(id int) (*entities.Presenca, error)
	Create(p *entities.Presenca) error
	Update(p *entities.Presenca) error
	Delete(id int) error
}

type AtividadeStore interface {
	List() ([]entities.Atividade, error)
	ListByAluno(idAluno int, inicio, fim *time.Time) ([]entities.Atividade, error)
	ListByTurma(idTurma int, inicio, fim *time.Time) ([]entities.Atividade, error)
	ListByPeriodo(inicio, fim time.Time) ([]entities.Atividade, error)
	Participantes(idAtividade int) ([]entities.AtividadeParticipante, error)
	Get(id int) (*entities.Atividade, error)
	// Create inserts the activity and associates the given student ids.
	Create(a *entities.Atividade, alunos []int) error
	// Update rewrites the activity; a non-nil alunos slice replaces the
	// existing associations.
	Update(a *entities.Atividade, alunos []int) error
	Delete(id int) error
}

type UsuarioStore interface {
	GetByLogin(login string) (*entities.Usuario, error)
	Create(u *entities.Usuario) error
}

// ConversaStore records chatbot turns for later analysis.
type ConversaStore interface {
	Registra(c *entities.Conversa) error
	ContagemPorTopico() (map[string]int, error)
}
