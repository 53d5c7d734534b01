package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project_escolaInfantil/internal/entities"
)

// Canned-response fakes for the report queries.

type fakeAlunoStore struct {
	porID map[int]*entities.Aluno
}

func (f *fakeAlunoStore) List() ([]entities.Aluno, error) { return nil, nil }
func (f *fakeAlunoStore) ListByTurma(int) ([]entities.Aluno, error) { return nil, nil }
func (f *fakeAlunoStore) Get(id int) (*entities.Aluno, error) { return f.porID[id], nil }
func (f *fakeAlunoStore) Create(*entities.Aluno) error                 { return nil }
func (f *fakeAlunoStore) Update(*entities.Aluno) error                 { return nil }
func (f *fakeAlunoStore) Delete(int) error                             { return nil }

type fakePagamentoStore struct {
	periodo   []entities.Pagamento
	pendentes []entities.Pagamento
}

func (f *fakePagamentoStore) List() ([]entities.Pagamento, error) { return nil, nil }
func (f *fakePagamentoStore) ListByAluno(int) ([]entities.Pagamento, error) { return nil, nil }
func (f *fakePagamentoStore) ListByPeriodo(_, _ time.Time) ([]entities.Pagamento, error) {
	return f.periodo, nil
}
func (f *fakePagamentoStore) ListPendentes() ([]entities.Pagamento, error) { return f.pendentes, nil }
func (f *fakePagamentoStore) Get(int) (*entities.Pagamento, error) { return nil, nil }
func (f *fakePagamentoStore) Create(*entities.Pagamento) error             { return nil }
func (f *fakePagamentoStore) Update(*entities.Pagamento) error             { return nil }
func (f *fakePagamentoStore) Delete(int) error                             { return nil }

type fakePresencaStore struct {
	porData    []entities.Presenca
	porPeriodo []entities.Presenca
}

func (f *fakePresencaStore) List() ([]entities.Presenca, error) { return nil, nil }
func (f *fakePresencaStore) ListByData(time.Time) ([]entities.Presenca, error) {
	return f.porData, nil
}
func (f *fakePresencaStore) ListByAluno(int) ([]entities.Presenca, error) { return nil, nil }
func (f *fakePresencaStore) ListByAlunoPeriodo(int, time.Time, time.Time) ([]entities.Presenca, error) {
	return nil, nil
}
func (f *fakePresencaStore) ListByPeriodo(_, _ time.Time) ([]entities.Presenca, error) {
	return f.porPeriodo, nil
}
func (f *fakePresencaStore) ExistsForAlunoData(int, time.Time) (bool, error) { return false, nil }
func (f *fakePresencaStore) Get(int) (*entities.Presenca, error) { return nil, nil }
func (f *fakePresencaStore) Create(*entities.Presenca) error                 { return nil }
func (f *fakePresencaStore) Update(*entities.Presenca) error                 { return nil }
func (f *fakePresencaStore) Delete(int) error                                { return nil }

type fakeAtividadeStore struct {
	periodo       []entities.Atividade
	participantes map[int][]entities.AtividadeParticipante
}

func (f *fakeAtividadeStore) List() ([]entities.Atividade, error) { return nil, nil }
func (f *fakeAtividadeStore) ListByAluno(int, *time.Time, *time.Time) ([]entities.Atividade, error) {
	return nil, nil
}
func (f *fakeAtividadeStore) ListByTurma(int, *time.Time, *time.Time) ([]entities.Atividade, error) {
	return nil, nil
}
func (f *fakeAtividadeStore) ListByPeriodo(_, _ time.Time) ([]entities.Atividade, error) {
	return f.periodo, nil
}
func (f *fakeAtividadeStore) Participantes(id int) ([]entities.AtividadeParticipante, error) {
	return f.participantes[id], nil
}
func (f *fakeAtividadeStore) Get(int) (*entities.Atividade, error) { return nil, nil }
func (f *fakeAtividadeStore) Create(*entities.Atividade, []int) error      { return nil }
func (f *fakeAtividadeStore) Update(*entities.Atividade, []int) error      { return nil }
func (f *fakeAtividadeStore) Delete(int) error                             { return nil }

func TestPercentual(t *testing.T) {
	assert.Equal(t, 75.0, Percentual(3, 4))
	assert.Equal(t, 100.0, Percentual(5, 5))
	assert.Equal(t, 66.67, Percentual(2, 3))
	assert.Equal(t, 0.0, Percentual(0, 0))
	assert.Equal(t, 0.0, Percentual(0, 10))
}

func TestPagamentosPeriodo(t *testing.T) {
	pagamentos := &fakePagamentoStore{
		periodo: []entities.Pagamento{
			{ID: 1, IDAluno: 1, ValorPago: 800, Status: entities.PagamentoPago, DataPagamento: data("2024-05-05")},
			{ID: 2, IDAluno: 2, ValorPago: 800, Status: entities.PagamentoPendente, DataPagamento: data("2024-05-10")},
			{ID: 3, IDAluno: 1, ValorPago: 150, Status: entities.PagamentoPago, DataPagamento: data("2024-05-20")},
		},
	}
	u := NewRelatorioUsecase(&fakeAlunoStore{}, pagamentos, &fakePresencaStore{}, &fakeAtividadeStore{})

	rel, err := u.PagamentosPeriodo(data("2024-05-01"), data("2024-05-31"))
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01 a 2024-05-31", rel.Periodo)
	assert.Equal(t, 950.0, rel.TotalRecebido)
	assert.Equal(t, 800.0, rel.TotalPendente)
	assert.Equal(t, 3, rel.Quantidade)
	assert.Len(t, rel.Pagamentos, 3)
	assert.Equal(t, "2024-05-05", rel.Pagamentos[0].DataPagamento)
}

func TestInadimplencia(t *testing.T) {
	alunos := &fakeAlunoStore{porID: map[int]*entities.Aluno{
		1: {ID: 1, NomeCompleto: "Maria Silva", NomeResponsavel: "Carla Silva", TelefoneResponsavel: "1111", EmailResponsavel: "carla@example.com"},
		2: {ID: 2, NomeCompleto: "João Souza", NomeResponsavel: "Pedro Souza", TelefoneResponsavel: "2222", EmailResponsavel: "pedro@example.com"},
	}}
	pagamentos := &fakePagamentoStore{
		pendentes: []entities.Pagamento{
			{ID: 1, IDAluno: 1, ValorPago: 800, Referencia: "Maio/2024", Status: entities.PagamentoPendente},
			{ID: 2, IDAluno: 1, ValorPago: 800, Referencia: "Junho/2024", Status: entities.PagamentoPendente},
			{ID: 3, IDAluno: 2, ValorPago: 400, Referencia: "Junho/2024", Status: entities.PagamentoPendente},
			// Orphaned row: aluno 9 does not exist, must be skipped
			{ID: 4, IDAluno: 9, ValorPago: 100, Referencia: "Junho/2024", Status: entities.PagamentoPendente},
		},
	}
	u := NewRelatorioUsecase(alunos, pagamentos, &fakePresencaStore{}, &fakeAtividadeStore{})

	rel, err := u.Inadimplencia()
	require.NoError(t, err)

	assert.Equal(t, 2, rel.TotalInadimplentes)
	assert.Equal(t, 2000.0, rel.ValorTotalDevido)
	require.Len(t, rel.Inadimplentes, 2)
	assert.Equal(t, "Maria Silva", rel.Inadimplentes[0].Aluno)
	assert.Equal(t, 1600.0, rel.Inadimplentes[0].TotalDevido)
	assert.Len(t, rel.Inadimplentes[0].PagamentosPendentes, 2)
	assert.Equal(t, "João Souza", rel.Inadimplentes[1].Aluno)
}

func TestFrequenciaPeriodo(t *testing.T) {
	alunos := &fakeAlunoStore{porID: map[int]*entities.Aluno{
		1: {ID: 1, NomeCompleto: "Maria Silva"},
		2: {ID: 2, NomeCompleto: "João Souza"},
	}}
	presencas := &fakePresencaStore{
		porPeriodo: []entities.Presenca{
			{IDAluno: 1, Presente: true},
			{IDAluno: 1, Presente: true},
			{IDAluno: 1, Presente: false},
			{IDAluno: 2, Presente: true},
		},
	}
	u := NewRelatorioUsecase(alunos, &fakePagamentoStore{}, presencas, &fakeAtividadeStore{})

	rel, err := u.FrequenciaPeriodo(data("2024-05-01"), data("2024-05-31"))
	require.NoError(t, err)

	assert.Equal(t, 2, rel.TotalAlunos)
	require.Len(t, rel.FrequenciaPorAluno, 2)
	maria := rel.FrequenciaPorAluno[0]
	assert.Equal(t, "Maria Silva", maria.AlunoNome)
	assert.Equal(t, 3, maria.TotalDias)
	assert.Equal(t, 2, maria.DiasPresentes)
	assert.Equal(t, 1, maria.DiasAusentes)
	assert.Equal(t, 66.67, maria.Percentual)
	assert.Equal(t, 100.0, rel.FrequenciaPorAluno[1].Percentual)
}

func TestPresencaDiaria(t *testing.T) {
	alunos := &fakeAlunoStore{porID: map[int]*entities.Aluno{
		1: {ID: 1, NomeCompleto: "Maria Silva"},
		2: {ID: 2, NomeCompleto: "João Souza"},
	}}
	presencas := &fakePresencaStore{
		porData: []entities.Presenca{
			{IDAluno: 1, Presente: true},
			{IDAluno: 2, Presente: false},
		},
	}
	u := NewRelatorioUsecase(alunos, &fakePagamentoStore{}, presencas, &fakeAtividadeStore{})

	rel, err := u.PresencaDiaria(data("2024-05-20"))
	require.NoError(t, err)

	assert.Equal(t, "2024-05-20", rel.Data)
	assert.Equal(t, 2, rel.TotalAlunos)
	assert.Equal(t, 1, rel.Presentes)
	assert.Equal(t, 1, rel.Ausentes)
	assert.Equal(t, 50.0, rel.PercentualPresenca)
	require.Len(t, rel.Detalhes, 2)
	assert.Equal(t, "Maria Silva", rel.Detalhes[0].AlunoNome)
}

func TestAtividadesPeriodoComFiltroDeTurma(t *testing.T) {
	alunos := &fakeAlunoStore{porID: map[int]*entities.Aluno{
		1: {ID: 1, NomeCompleto: "Maria Silva", IDTurma: 1},
		2: {ID: 2, NomeCompleto: "João Souza", IDTurma: 2},
	}}
	atividades := &fakeAtividadeStore{
		periodo: []entities.Atividade{
			{ID: 10, Descricao: "Pintura", DataRealizacao: data("2024-05-18")},
			{ID: 11, Descricao: "Música", DataRealizacao: data("2024-05-19")},
		},
		participantes: map[int][]entities.AtividadeParticipante{
			10: {{IDAluno: 1, NomeCompleto: "Maria Silva"}, {IDAluno: 2, NomeCompleto: "João Souza"}},
			11: {{IDAluno: 2, NomeCompleto: "João Souza"}},
		},
	}
	u := NewRelatorioUsecase(alunos, &fakePagamentoStore{}, &fakePresencaStore{}, atividades)

	// Unfiltered: both activities, full participant lists
	rel, err := u.AtividadesPeriodo(data("2024-05-01"), data("2024-05-31"), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, rel.TotalAtividades)
	assert.Equal(t, 2, rel.Atividades[0].TotalParticipantes)

	// Turma 1: only the activity with a participant in that class survives
	turma := 1
	rel, err = u.AtividadesPeriodo(data("2024-05-01"), data("2024-05-31"), &turma)
	require.NoError(t, err)
	assert.Equal(t, 1, rel.TotalAtividades)
	require.Len(t, rel.Atividades, 1)
	assert.Equal(t, "Pintura", rel.Atividades[0].Descricao)
	assert.Equal(t, 1, rel.Atividades[0].TotalParticipantes)
	assert.Equal(t, "Maria Silva", rel.Atividades[0].Participantes[0].NomeCompleto)
}
