package entities

import "time"

type Presenca struct {
	ID           int       `json:"id_presenca"`
	IDAluno      int       `json:"id_aluno"`
	DataPresenca time.Time `json:"data_presenca"`
	Presente     bool      `json:"presente"`
}
