package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"project_escolaInfantil/internal/entities"
)

type AlunoRepository struct {
	pool *pgxpool.Pool
}

func NewAlunoRepository(pool *pgxpool.Pool) *AlunoRepository {
	return &AlunoRepository{pool: pool}
}

const alunoColumns = `id_aluno, nome_completo, data_nascimento, id_turma, nome_responsavel,
	telefone_responsavel, email_responsavel, informacoes_adicionais`

func scanAluno(row pgx.Row) (*entities.Aluno, error) {
	var a entities.Aluno
	err := row.Scan(&a.ID, &a.NomeCompleto, &a.DataNascimento, &a.IDTurma, &a.NomeResponsavel,
		&a.TelefoneResponsavel, &a.EmailResponsavel, &a.InformacoesAdicionais)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AlunoRepository) List() ([]entities.Aluno, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+alunoColumns+` FROM alunos ORDER BY nome_completo`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alunos []entities.Aluno
	for rows.Next() {
		a, err := scanAluno(rows)
		if err != nil {
			return nil, err
		}
		alunos = append(alunos, *a)
	}
	return alunos, rows.Err()
}

func (r *AlunoRepository) ListByTurma(idTurma int) ([]entities.Aluno, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+alunoColumns+` FROM alunos WHERE id_turma = $1 ORDER BY nome_completo`, idTurma)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alunos []entities.Aluno
	for rows.Next() {
		a, err := scanAluno(rows)
		if err != nil {
			return nil, err
		}
		alunos = append(alunos, *a)
	}
	return alunos, rows.Err()
}

func (r *AlunoRepository) Get(id int) (*entities.Aluno, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+alunoColumns+` FROM alunos WHERE id_aluno = $1`, id)
	a, err := scanAluno(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AlunoRepository) Create(a *entities.Aluno) error {
	return r.pool.QueryRow(context.Background(),
		`INSERT INTO alunos (nome_completo, data_nascimento, id_turma, nome_responsavel,
			telefone_responsavel, email_responsavel, informacoes_adicionais)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id_aluno`,
		a.NomeCompleto, a.DataNascimento, a.IDTurma, a.NomeResponsavel,
		a.TelefoneResponsavel, a.EmailResponsavel, a.InformacoesAdicionais,
	).Scan(&a.ID)
}

func (r *AlunoRepository) Update(a *entities.Aluno) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE alunos SET nome_completo = $1, data_nascimento = $2, id_turma = $3,
			nome_responsavel = $4, telefone_responsavel = $5, email_responsavel = $6,
			informacoes_adicionais = $7
		 WHERE id_aluno = $8`,
		a.NomeCompleto, a.DataNascimento, a.IDTurma, a.NomeResponsavel,
		a.TelefoneResponsavel, a.EmailResponsavel, a.InformacoesAdicionais, a.ID)
	return err
}

func (r *AlunoRepository) Delete(id int) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM alunos WHERE id_aluno = $1`, id)
	return err
}
