package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresClient struct {
	Pool *pgxpool.Pool
}

func NewPostgresClient(connString string) (*PostgresClient, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	// Pool configuration
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	client := &PostgresClient{Pool: pool}

	// Auto-migrate schema
	if err := client.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return client, nil
}

func (p *PostgresClient) Migrate() error {
	ctx := context.Background()

	statements := []struct {
		name string
		sql  string
	}{
		{"professores", `
			CREATE TABLE IF NOT EXISTS professores (
				id_professor SERIAL PRIMARY KEY,
				nome_completo VARCHAR(255) NOT NULL,
				email VARCHAR(100) NOT NULL,
				telefone VARCHAR(20) NOT NULL
			);
		`},
		{"turmas", `
			CREATE TABLE IF NOT EXISTS turmas (
				id_turma SERIAL PRIMARY KEY,
				nome_turma VARCHAR(50) NOT NULL,
				id_professor INT NOT NULL REFERENCES professores(id_professor),
				horario VARCHAR(100) NOT NULL
			);
		`},
		{"alunos", `
			CREATE TABLE IF NOT EXISTS alunos (
				id_aluno SERIAL PRIMARY KEY,
				nome_completo VARCHAR(255) NOT NULL,
				data_nascimento DATE NOT NULL,
				id_turma INT NOT NULL REFERENCES turmas(id_turma),
				nome_responsavel VARCHAR(255) NOT NULL,
				telefone_responsavel VARCHAR(20) NOT NULL,
				email_responsavel VARCHAR(100) NOT NULL,
				informacoes_adicionais TEXT
			);
		`},
		{"pagamentos", `
			CREATE TABLE IF NOT EXISTS pagamentos (
				id_pagamento SERIAL PRIMARY KEY,
				id_aluno INT NOT NULL REFERENCES alunos(id_aluno),
				data_pagamento DATE NOT NULL,
				valor_pago DECIMAL(10, 2) NOT NULL,
				forma_pagamento VARCHAR(50) NOT NULL,
				referencia VARCHAR(100) NOT NULL,
				status VARCHAR(20) NOT NULL
			);
		`},
		{"presencas", `
			CREATE TABLE IF NOT EXISTS presencas (
				id_presenca SERIAL PRIMARY KEY,
				id_aluno INT NOT NULL REFERENCES alunos(id_aluno),
				data_presenca DATE NOT NULL,
				presente BOOLEAN NOT NULL
			);
		`},
		{"atividades", `
			CREATE TABLE IF NOT EXISTS atividades (
				id_atividade SERIAL PRIMARY KEY,
				descricao TEXT NOT NULL,
				data_realizacao DATE NOT NULL
			);
		`},
		{"atividade_aluno", `
			CREATE TABLE IF NOT EXISTS atividade_aluno (
				id_atividade INT NOT NULL REFERENCES atividades(id_atividade),
				id_aluno INT NOT NULL REFERENCES alunos(id_aluno),
				PRIMARY KEY (id_atividade, id_aluno)
			);
		`},
		{"usuarios", `
			CREATE TABLE IF NOT EXISTS usuarios (
				id_usuario SERIAL PRIMARY KEY,
				login VARCHAR(50) UNIQUE NOT NULL,
				senha_hash VARCHAR(255) NOT NULL,
				nivel_acesso VARCHAR(20) NOT NULL,
				id_professor INT REFERENCES professores(id_professor)
			);
		`},
		{"conversas", `
			CREATE TABLE IF NOT EXISTS conversas (
				id SERIAL PRIMARY KEY,
				canal VARCHAR(20) NOT NULL,
				id_aluno INT,
				mensagem TEXT NOT NULL,
				topico VARCHAR(20) NOT NULL,
				criada_em TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
		`},
		{"bot_config", `
			CREATE TABLE IF NOT EXISTS bot_config (
				key VARCHAR(50) PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`},
	}

	for _, stmt := range statements {
		if _, err := p.Pool.Exec(ctx, stmt.sql); err != nil {
			return fmt.Errorf("create %s table: %w", stmt.name, err)
		}
	}
	return nil
}

func (p *PostgresClient) Close() {
	p.Pool.Close()
}
