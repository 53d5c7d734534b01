package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"project_escolaInfantil/internal/entities"
)

type ProfessorRepository struct {
	pool *pgxpool.Pool
}

func NewProfessorRepository(pool *pgxpool.Pool) *ProfessorRepository {
	return &ProfessorRepository{pool: pool}
}

func (r *ProfessorRepository) List() ([]entities.Professor, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id_professor, nome_completo, email, telefone
		 FROM professores ORDER BY nome_completo`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var professores []entities.Professor
	for rows.Next() {
		var p entities.Professor
		if err := rows.Scan(&p.ID, &p.NomeCompleto, &p.Email, &p.Telefone); err != nil {
			return nil, err
		}
		professores = append(professores, p)
	}
	return professores, rows.Err()
}

func (r *ProfessorRepository) Get(id int) (*entities.Professor, error) {
	var p entities.Professor
	err := r.pool.QueryRow(context.Background(),
		`SELECT id_professor, nome_completo, email, telefone
		 FROM professores WHERE id_professor = $1`, id,
	).Scan(&p.ID, &p.NomeCompleto, &p.Email, &p.Telefone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfessorRepository) Create(p *entities.Professor) error {
	return r.pool.QueryRow(context.Background(),
		`INSERT INTO professores (nome_completo, email, telefone)
		 VALUES ($1, $2, $3) RETURNING id_professor`,
		p.NomeCompleto, p.Email, p.Telefone,
	).Scan(&p.ID)
}

func (r *ProfessorRepository) Update(p *entities.Professor) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE professores SET nome_completo = $1, email = $2, telefone = $3
		 WHERE id_professor = $4`,
		p.NomeCompleto, p.Email, p.Telefone, p.ID)
	return err
}

func (r *ProfessorRepository) Delete(id int) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM professores WHERE id_professor = $1`, id)
	return err
}
