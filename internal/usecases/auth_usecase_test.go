package usecases

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project_escolaInfantil/internal/entities"
)

type fakeUsuarioStore struct {
	usuarios map[string]*entities.Usuario
	nextID   int
}

func newFakeUsuarioStore() *fakeUsuarioStore {
	return &fakeUsuarioStore{usuarios: make(map[string]*entities.Usuario)}
}

func (f *fakeUsuarioStore) GetByLogin(login string) (*entities.Usuario, error) {
	return f.usuarios[login], nil
}

func (f *fakeUsuarioStore) Create(u *entities.Usuario) error {
	f.nextID++
	u.ID = f.nextID
	f.usuarios[u.Login] = u
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	store := newFakeUsuarioStore()
	auth := NewAuthUsecase(store, "test-secret")

	err := auth.Register("secretaria1", "senha123", "secretaria", nil)
	require.NoError(t, err)

	token, usuario, err := auth.Login("secretaria1", "senha123")
	require.NoError(t, err)
	require.NotNil(t, usuario)
	assert.Equal(t, entities.NivelSecretaria, usuario.NivelAcesso)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, entities.NivelSecretaria, claims["role"])
	assert.Equal(t, float64(usuario.ID), claims["user_id"])
}

func TestRegisterNivelAlias(t *testing.T) {
	store := newFakeUsuarioStore()
	auth := NewAuthUsecase(store, "test-secret")

	// "admin" is accepted as an alias and stored canonically
	require.NoError(t, auth.Register("chefe", "senha123", "admin", nil))
	assert.Equal(t, entities.NivelAdministrador, store.usuarios["chefe"].NivelAcesso)
}

func TestRegisterNivelInvalido(t *testing.T) {
	auth := NewAuthUsecase(newFakeUsuarioStore(), "test-secret")

	err := auth.Register("x", "senha123", "superuser", nil)
	assert.ErrorIs(t, err, ErrNivelAcessoInvalido)
}

func TestRegisterLoginDuplicado(t *testing.T) {
	store := newFakeUsuarioStore()
	auth := NewAuthUsecase(store, "test-secret")

	require.NoError(t, auth.Register("dup", "senha123", "professor", nil))
	err := auth.Register("dup", "outra456", "professor", nil)
	assert.ErrorIs(t, err, ErrLoginJaExiste)
}

func TestLoginSenhaErrada(t *testing.T) {
	store := newFakeUsuarioStore()
	auth := NewAuthUsecase(store, "test-secret")
	require.NoError(t, auth.Register("user1", "senha123", "professor", nil))

	_, _, err := auth.Login("user1", "errada")
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestLoginDesconhecido(t *testing.T) {
	auth := NewAuthUsecase(newFakeUsuarioStore(), "test-secret")

	_, _, err := auth.Login("ghost", "senha123")
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestEnsureAdmin(t *testing.T) {
	store := newFakeUsuarioStore()
	auth := NewAuthUsecase(store, "test-secret")

	require.NoError(t, auth.EnsureAdmin("admin", "root123"))
	criado := store.usuarios["admin"]
	require.NotNil(t, criado)
	assert.Equal(t, entities.NivelAdministrador, criado.NivelAcesso)

	// Second call must not replace the existing user
	require.NoError(t, auth.EnsureAdmin("admin", "outra"))
	assert.Equal(t, criado, store.usuarios["admin"])

	_, _, err := auth.Login("admin", "root123")
	assert.NoError(t, err)
}
