package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"project_escolaInfantil/internal/entities"
)

type UsuarioRepository struct {
	pool *pgxpool.Pool
}

func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepository {
	return &UsuarioRepository{pool: pool}
}

// GetByLogin returns nil without error when the login is unknown.
func (r *UsuarioRepository) GetByLogin(login string) (*entities.Usuario, error) {
	var u entities.Usuario
	err := r.pool.QueryRow(context.Background(),
		`SELECT id_usuario, login, senha_hash, nivel_acesso, id_professor
		 FROM usuarios WHERE login = $1`, login,
	).Scan(&u.ID, &u.Login, &u.SenhaHash, &u.NivelAcesso, &u.IDProfessor)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepository) Create(u *entities.Usuario) error {
	return r.pool.QueryRow(context.Background(),
		`INSERT INTO usuarios (login, senha_hash, nivel_acesso, id_professor)
		 VALUES ($1, $2, $3, $4) RETURNING id_usuario`,
		u.Login, u.SenhaHash, u.NivelAcesso, u.IDProfessor,
	).Scan(&u.ID)
}
