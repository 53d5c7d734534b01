package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"project_escolaInfantil/internal/entities"
)

type PresencaRepository struct {
	pool *pgxpool.Pool
}

func NewPresencaRepository(pool *pgxpool.Pool) *PresencaRepository {
	return &PresencaRepository{pool: pool}
}

const presencaColumns = `id_presenca, id_aluno, data_presenca, presente`

func (r *PresencaRepository) queryMany(sql string, args ...interface{}) ([]entities.Presenca, error) {
	rows, err := r.pool.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presencas []entities.Presenca
	for rows.Next() {
		var p entities.Presenca
		if err := rows.Scan(&p.ID, &p.IDAluno, &p.DataPresenca, &p.Presente); err != nil {
			return nil, err
		}
		presencas = append(presencas, p)
	}
	return presencas, rows.Err()
}

func (r *PresencaRepository) List() ([]entities.Presenca, error) {
	return r.queryMany(`SELECT ` + presencaColumns + ` FROM presencas ORDER BY data_presenca DESC`)
}

func (r *PresencaRepository) ListByData(data time.Time) ([]entities.Presenca, error) {
	return r.queryMany(
		`SELECT `+presencaColumns+` FROM presencas
		 WHERE data_presenca = $1 ORDER BY id_aluno`, data)
}

func (r *PresencaRepository) ListByAluno(idAluno int) ([]entities.Presenca, error) {
	return r.queryMany(
		`SELECT `+presencaColumns+` FROM presencas
		 WHERE id_aluno = $1 ORDER BY data_presenca DESC`, idAluno)
}

func (r *PresencaRepository) ListByAlunoPeriodo(idAluno int, inicio, fim time.Time) ([]entities.Presenca, error) {
	return r.queryMany(
		`SELECT `+presencaColumns+` FROM presencas
		 WHERE id_aluno = $1 AND data_presenca BETWEEN $2 AND $3
		 ORDER BY data_presenca`, idAluno, inicio, fim)
}

func (r *PresencaRepository) ListByPeriodo(inicio, fim time.Time) ([]entities.Presenca, error) {
	return r.queryMany(
		`SELECT `+presencaColumns+` FROM presencas
		 WHERE data_presenca BETWEEN $1 AND $2
		 ORDER BY data_presenca, id_aluno`, inicio, fim)
}

func (r *PresencaRepository) ExistsForAlunoData(idAluno int, data time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM presencas WHERE id_aluno = $1 AND data_presenca = $2)`,
		idAluno, data,
	).Scan(&exists)
	return exists, err
}

func (r *PresencaRepository) Get(id int) (*entities.Presenca, error) {
	var p entities.Presenca
	err := r.pool.QueryRow(context.Background(),
		`SELECT `+presencaColumns+` FROM presencas WHERE id_presenca = $1`, id,
	).Scan(&p.ID, &p.IDAluno, &p.DataPresenca, &p.Presente)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PresencaRepository) Create(p *entities.Presenca) error {
	return r.pool.QueryRow(context.Background(),
		`INSERT INTO presencas (id_aluno, data_presenca, presente)
		 VALUES ($1, $2, $3) RETURNING id_presenca`,
		p.IDAluno, p.DataPresenca, p.Presente,
	).Scan(&p.ID)
}

func (r *PresencaRepository) Update(p *entities.Presenca) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE presencas SET id_aluno = $1, data_presenca = $2, presente = $3
		 WHERE id_presenca = $4`,
		p.IDAluno, p.DataPresenca, p.Presente, p.ID)
	return err
}

func (r *PresencaRepository) Delete(id int) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM presencas WHERE id_presenca = $1`, id)
	return err
}
