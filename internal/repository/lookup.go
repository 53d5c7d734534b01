package repository

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"project_escolaInfantil/internal/entities"
)

// Lookup bundles the read-only queries the chatbot needs into a single
// collaborator, so the conversational layer never touches the write paths.
type Lookup struct {
	alunos     *AlunoRepository
	pagamentos *PagamentoRepository
	presencas  *PresencaRepository
	atividades *AtividadeRepository
}

func NewLookup(pool *pgxpool.Pool) *Lookup {
	return &Lookup{
		alunos:     NewAlunoRepository(pool),
		pagamentos: NewPagamentoRepository(pool),
		presencas:  NewPresencaRepository(pool),
		atividades: NewAtividadeRepository(pool),
	}
}

func (l *Lookup) FindAluno(id int) (*entities.Aluno, error) {
	return l.alunos.Get(id)
}

func (l *Lookup) PagamentosPendentes(idAluno int) ([]entities.Pagamento, error) {
	return l.pagamentos.ListPendentesByAluno(idAluno)
}

func (l *Lookup) PresencasNoPeriodo(idAluno int, inicio, fim time.Time) ([]entities.Presenca, error) {
	return l.presencas.ListByAlunoPeriodo(idAluno, inicio, fim)
}

func (l *Lookup) AtividadesNoPeriodo(idAluno int, inicio, fim time.Time) ([]entities.Atividade, error) {
	return l.atividades.ListByAluno(idAluno, &inicio, &fim)
}
