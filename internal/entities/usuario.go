package entities

const (
	NivelAdministrador = "administrador"
	NivelSecretaria    = "secretaria"
	NivelProfessor     = "professor"
)

type Usuario struct {
	ID          int    `json:"id_usuario"`
	Login       string `json:"login"`
	SenhaHash   string `json:"-"`
	NivelAcesso string `json:"nivel_acesso"`
	IDProfessor *int   `json:"id_professor"` // Linked teacher account (professor level only)
}
