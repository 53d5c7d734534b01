package usecases

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"project_escolaInfantil/internal/entities"
	"project_escolaInfantil/internal/interfaces"
)

var (
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrLoginJaExiste        = errors.New("login já existe")
	ErrNivelAcessoInvalido  = errors.New("nivel_acesso inválido")
)

// Frontend aliases for access levels ("admin" buttons map to "administrador").
var niveisAcesso = map[string]string{
	"administrador": entities.NivelAdministrador,
	"admin":         entities.NivelAdministrador,
	"secretaria":    entities.NivelSecretaria,
	"professor":     entities.NivelProfessor,
}

type AuthUsecase struct {
	usuarios  interfaces.UsuarioStore
	jwtSecret []byte
}

func NewAuthUsecase(usuarios interfaces.UsuarioStore, secret string) *AuthUsecase {
	return &AuthUsecase{
		usuarios:  usuarios,
		jwtSecret: []byte(secret),
	}
}

func (uc *AuthUsecase) Register(login, senha, nivelAcesso string, idProfessor *int) error {
	nivel, ok := niveisAcesso[strings.ToLower(strings.TrimSpace(nivelAcesso))]
	if !ok {
		return ErrNivelAcessoInvalido
	}

	existing, err := uc.usuarios.GetByLogin(login)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrLoginJaExiste
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return uc.usuarios.Create(&entities.Usuario{
		Login:       login,
		SenhaHash:   string(hashed),
		NivelAcesso: nivel,
		IDProfessor: idProfessor,
	})
}

// Login verifies credentials and returns a signed token plus the user.
func (uc *AuthUsecase) Login(login, senha string) (string, *entities.Usuario, error) {
	usuario, err := uc.usuarios.GetByLogin(login)
	if err != nil {
		return "", nil, err
	}
	if usuario == nil {
		return "", nil, ErrCredenciaisInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(senha)); err != nil {
		return "", nil, ErrCredenciaisInvalidas
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": usuario.ID,
		"role":    usuario.NivelAcesso,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	})

	tokenString, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %v", err)
	}

	return tokenString, usuario, nil
}

// EnsureAdmin creates a root administrator if none exists (called on startup).
func (uc *AuthUsecase) EnsureAdmin(login, senha string) error {
	usuario, err := uc.usuarios.GetByLogin(login)
	if err != nil {
		return err
	}
	if usuario == nil {
		hashed, _ := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
		return uc.usuarios.Create(&entities.Usuario{
			Login:       login,
			SenhaHash:   string(hashed),
			NivelAcesso: entities.NivelAdministrador,
		})
	}
	return nil
}
