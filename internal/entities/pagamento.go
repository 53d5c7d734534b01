package entities

import "time"

const (
	PagamentoPago     = "Pago"
	PagamentoPendente = "Pendente"
)

type Pagamento struct {
	ID             int       `json:"id_pagamento"`
	IDAluno        int       `json:"id_aluno"`
	DataPagamento  time.Time `json:"data_pagamento"`
	ValorPago      float64   `json:"valor_pago"`
	FormaPagamento string    `json:"forma_pagamento"`
	Referencia     string    `json:"referencia"`
	Status         string    `json:"status"`
}
