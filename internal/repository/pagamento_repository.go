package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"project_escolaInfantil/internal/entities"
)

type PagamentoRepository struct {
	pool *pgxpool.Pool
}

func NewPagamentoRepository(pool *pgxpool.Pool) *PagamentoRepository {
	return &PagamentoRepository{pool: pool}
}

const pagamentoColumns = `id_pagamento, id_aluno, data_pagamento, valor_pago,
	forma_pagamento, referencia, status`

func (r *PagamentoRepository) queryMany(sql string, args ...interface{}) ([]entities.Pagamento, error) {
	rows, err := r.pool.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pagamentos []entities.Pagamento
	for rows.Next() {
		var p entities.Pagamento
		err := rows.Scan(&p.ID, &p.IDAluno, &p.DataPagamento, &p.ValorPago,
			&p.FormaPagamento, &p.Referencia, &p.Status)
		if err != nil {
			return nil, err
		}
		pagamentos = append(pagamentos, p)
	}
	return pagamentos, rows.Err()
}

func (r *PagamentoRepository) List() ([]entities.Pagamento, error) {
	return r.queryMany(`SELECT ` + pagamentoColumns + ` FROM pagamentos ORDER BY data_pagamento DESC`)
}

func (r *PagamentoRepository) ListByAluno(idAluno int) ([]entities.Pagamento, error) {
	return r.queryMany(
		`SELECT `+pagamentoColumns+` FROM pagamentos
		 WHERE id_aluno = $1 ORDER BY data_pagamento DESC`, idAluno)
}

func (r *PagamentoRepository) ListByPeriodo(inicio, fim time.Time) ([]entities.Pagamento, error) {
	return r.queryMany(
		`SELECT `+pagamentoColumns+` FROM pagamentos
		 WHERE data_pagamento BETWEEN $1 AND $2 ORDER BY data_pagamento`, inicio, fim)
}

func (r *PagamentoRepository) ListPendentes() ([]entities.Pagamento, error) {
	return r.queryMany(
		`SELECT `+pagamentoColumns+` FROM pagamentos
		 WHERE status = $1 ORDER BY id_aluno, data_pagamento`, entities.PagamentoPendente)
}

func (r *PagamentoRepository) ListPendentesByAluno(idAluno int) ([]entities.Pagamento, error) {
	return r.queryMany(
		`SELECT `+pagamentoColumns+` FROM pagamentos
		 WHERE id_aluno = $1 AND status = $2 ORDER BY data_pagamento`,
		idAluno, entities.PagamentoPendente)
}

func (r *PagamentoRepository) Get(id int) (*entities.Pagamento, error) {
	var p entities.Pagamento
	err := r.pool.QueryRow(context.Background(),
		`SELECT `+pagamentoColumns+` FROM pagamentos WHERE id_pagamento = $1`, id,
	).Scan(&p.ID, &p.IDAluno, &p.DataPagamento, &p.ValorPago,
		&p.FormaPagamento, &p.Referencia, &p.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PagamentoRepository) Create(p *entities.Pagamento) error {
	return r.pool.QueryRow(context.Background(),
		`INSERT INTO pagamentos (id_aluno, data_pagamento, valor_pago, forma_pagamento, referencia, status)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id_pagamento`,
		p.IDAluno, p.DataPagamento, p.ValorPago, p.FormaPagamento, p.Referencia, p.Status,
	).Scan(&p.ID)
}

func (r *PagamentoRepository) Update(p *entities.Pagamento) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE pagamentos SET id_aluno = $1, data_pagamento = $2, valor_pago = $3,
			forma_pagamento = $4, referencia = $5, status = $6
		 WHERE id_pagamento = $7`,
		p.IDAluno, p.DataPagamento, p.ValorPago, p.FormaPagamento, p.Referencia, p.Status, p.ID)
	return err
}

func (r *PagamentoRepository) Delete(id int) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM pagamentos WHERE id_pagamento = $1`, id)
	return err
}
