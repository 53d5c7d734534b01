package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"project_escolaInfantil/internal/entities"
)

type TurmaRepository struct {
	pool *pgxpool.Pool
}

func NewTurmaRepository(pool *pgxpool.Pool) *TurmaRepository {
	return &TurmaRepository{pool: pool}
}

func (r *TurmaRepository) List() ([]entities.Turma, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id_turma, nome_turma, id_professor, horario
		 FROM turmas ORDER BY nome_turma`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turmas []entities.Turma
	for rows.Next() {
		var t entities.Turma
		if err := rows.Scan(&t.ID, &t.NomeTurma, &t.IDProfessor, &t.Horario); err != nil {
			return nil, err
		}
		turmas = append(turmas, t)
	}
	return turmas, rows.Err()
}

func (r *TurmaRepository) Get(id int) (*entities.Turma, error) {
	var t entities.Turma
	err := r.pool.QueryRow(context.Background(),
		`SELECT id_turma, nome_turma, id_professor, horario
		 FROM turmas WHERE id_turma = $1`, id,
	).Scan(&t.ID, &t.NomeTurma, &t.IDProfessor, &t.Horario)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TurmaRepository) Create(t *entities.Turma) error {
	return r.pool.QueryRow(context.Background(),
		`INSERT INTO turmas (nome_turma, id_professor, horario)
		 VALUES ($1, $2, $3) RETURNING id_turma`,
		t.NomeTurma, t.IDProfessor, t.Horario,
	).Scan(&t.ID)
}

func (r *TurmaRepository) Update(t *entities.Turma) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE turmas SET nome_turma = $1, id_professor = $2, horario = $3
		 WHERE id_turma = $4`,
		t.NomeTurma, t.IDProfessor, t.Horario, t.ID)
	return err
}

func (r *TurmaRepository) Delete(id int) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM turmas WHERE id_turma = $1`, id)
	return err
}
