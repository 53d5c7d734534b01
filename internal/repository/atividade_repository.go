package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"project_escolaInfantil/internal/entities"
)

type AtividadeRepository struct {
	pool *pgxpool.Pool
}

func NewAtividadeRepository(pool *pgxpool.Pool) *AtividadeRepository {
	return &AtividadeRepository{pool: pool}
}

func (r *AtividadeRepository) queryMany(sql string, args ...interface{}) ([]entities.Atividade, error) {
	rows, err := r.pool.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var atividades []entities.Atividade
	for rows.Next() {
		var a entities.Atividade
		if err := rows.Scan(&a.ID, &a.Descricao, &a.DataRealizacao); err != nil {
			return nil, err
		}
		atividades = append(atividades, a)
	}
	return atividades, rows.Err()
}

func (r *AtividadeRepository) List() ([]entities.Atividade, error) {
	return r.queryMany(
		`SELECT id_atividade, descricao, data_realizacao
		 FROM atividades ORDER BY data_realizacao DESC`)
}

func (r *AtividadeRepository) ListByAluno(idAluno int, inicio, fim *time.Time) ([]entities.Atividade, error) {
	sql := `SELECT a.id_atividade, a.descricao, a.data_realizacao
		 FROM atividades a
		 JOIN atividade_aluno aa ON aa.id_atividade = a.id_atividade
		 WHERE aa.id_aluno = $1`
	args := []interface{}{idAluno}
	if inicio != nil && fim != nil {
		sql += ` AND a.data_realizacao BETWEEN $2 AND $3`
		args = append(args, *inicio, *fim)
	}
	sql += ` ORDER BY a.data_realizacao DESC`
	return r.queryMany(sql, args...)
}

func (r *AtividadeRepository) ListByTurma(idTurma int, inicio, fim *time.Time) ([]entities.Atividade, error) {
	sql := `SELECT DISTINCT a.id_atividade, a.descricao, a.data_realizacao
		 FROM atividades a
		 JOIN atividade_aluno aa ON aa.id_atividade = a.id_atividade
		 JOIN alunos al ON al.id_aluno = aa.id_aluno
		 WHERE al.id_turma = $1`
	args := []interface{}{idTurma}
	if inicio != nil && fim != nil {
		sql += ` AND a.data_realizacao BETWEEN $2 AND $3`
		args = append(args, *inicio, *fim)
	}
	sql += ` ORDER BY a.data_realizacao DESC`
	return r.queryMany(sql, args...)
}

func (r *AtividadeRepository) ListByPeriodo(inicio, fim time.Time) ([]entities.Atividade, error) {
	return r.queryMany(
		`SELECT id_atividade, descricao, data_realizacao
		 FROM atividades
		 WHERE data_realizacao BETWEEN $1 AND $2
		 ORDER BY data_realizacao`, inicio, fim)
}

func (r *AtividadeRepository) Participantes(idAtividade int) ([]entities.AtividadeParticipante, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT al.id_aluno, al.nome_completo, t.nome_turma
		 FROM atividade_aluno aa
		 JOIN alunos al ON al.id_aluno = aa.id_aluno
		 JOIN turmas t ON t.id_turma = al.id_turma
		 WHERE aa.id_atividade = $1
		 ORDER BY al.nome_completo`, idAtividade)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participantes []entities.AtividadeParticipante
	for rows.Next() {
		var p entities.AtividadeParticipante
		if err := rows.Scan(&p.IDAluno, &p.NomeCompleto, &p.Turma); err != nil {
			return nil, err
		}
		participantes = append(participantes, p)
	}
	return participantes, rows.Err()
}

func (r *AtividadeRepository) Get(id int) (*entities.Atividade, error) {
	var a entities.Atividade
	err := r.pool.QueryRow(context.Background(),
		`SELECT id_atividade, descricao, data_realizacao
		 FROM atividades WHERE id_atividade = $1`, id,
	).Scan(&a.ID, &a.Descricao, &a.DataRealizacao)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AtividadeRepository) Create(a *entities.Atividade, alunos []int) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO atividades (descricao, data_realizacao)
		 VALUES ($1, $2) RETURNING id_atividade`,
		a.Descricao, a.DataRealizacao,
	).Scan(&a.ID)
	if err != nil {
		return err
	}
	if err := insertParticipantes(ctx, tx, a.ID, alunos); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *AtividadeRepository) Update(a *entities.Atividade, alunos []int) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE atividades SET descricao = $1, data_realizacao = $2
		 WHERE id_atividade = $3`,
		a.Descricao, a.DataRealizacao, a.ID)
	if err != nil {
		return err
	}
	if alunos != nil {
		_, err = tx.Exec(ctx,
			`DELETE FROM atividade_aluno WHERE id_atividade = $1`, a.ID)
		if err != nil {
			return err
		}
		if err := insertParticipantes(ctx, tx, a.ID, alunos); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *AtividadeRepository) Delete(id int) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM atividade_aluno WHERE id_atividade = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM atividades WHERE id_atividade = $1`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertParticipantes(ctx context.Context, tx pgx.Tx, idAtividade int, alunos []int) error {
	for _, idAluno := range alunos {
		_, err := tx.Exec(ctx,
			`INSERT INTO atividade_aluno (id_atividade, id_aluno)
			 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			idAtividade, idAluno)
		if err != nil {
			return err
		}
	}
	return nil
}
