package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"project_escolaInfantil/internal/entities"
)

// ConversaRepository keeps a log of chatbot turns for the admin stats view.
type ConversaRepository struct {
	pool *pgxpool.Pool
}

func NewConversaRepository(pool *pgxpool.Pool) *ConversaRepository {
	return &ConversaRepository{pool: pool}
}

func (r *ConversaRepository) Registra(c *entities.Conversa) error {
	return r.pool.QueryRow(context.Background(),
		`INSERT INTO conversas (canal, id_aluno, mensagem, topico)
		 VALUES ($1, $2, $3, $4) RETURNING id, criada_em`,
		c.Canal, c.IDAluno, c.Mensagem, c.Topico,
	).Scan(&c.ID, &c.CriadaEm)
}

func (r *ConversaRepository) ContagemPorTopico() (map[string]int, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT topico, COUNT(*) FROM conversas GROUP BY topico`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contagem := make(map[string]int)
	for rows.Next() {
		var topico string
		var total int
		if err := rows.Scan(&topico, &total); err != nil {
			return nil, err
		}
		contagem[topico] = total
	}
	return contagem, rows.Err()
}
