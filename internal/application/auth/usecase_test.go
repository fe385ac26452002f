package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/e2e-commerce/internal/application/auth"
	"github.com/jhoicas/e2e-commerce/internal/application/dto"
	"github.com/jhoicas/e2e-commerce/internal/application/store"
	"github.com/jhoicas/e2e-commerce/internal/application/usecase"
	"github.com/jhoicas/e2e-commerce/internal/domain"
	"github.com/jhoicas/e2e-commerce/internal/infrastructure/kv"
	"github.com/jhoicas/e2e-commerce/internal/infrastructure/persistence"
	jwtpkg "github.com/jhoicas/e2e-commerce/pkg/jwt"
	"github.com/jhoicas/e2e-commerce/pkg/logger"
)

const testSecret = "clave-de-pruebas-nada-secreta"

func newAuthFixture(t *testing.T) (*store.Store, *auth.AuthUseCase) {
	t.Helper()
	gw := persistence.NewGateway(kv.NewMemoryStore(), logger.Quiet())
	st, err := store.New(context.Background(), gw)
	require.NoError(t, err)
	uc := auth.NewAuthUseCase(st, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 15,
		Issuer:     "e2e-commerce-test",
	})
	return st, uc
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     "Ana Gómez",
		Email:    "ana@example.com",
		Password: "segura123!",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: registrar dos veces el mismo email; el segundo intento falla por
// duplicado y no toca al usuario original.
func TestRegister_EmailDuplicado(t *testing.T) {
	st, uc := newAuthFixture(t)

	first, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second := registerRequest()
	second.Name = "Otra Persona"
	_, err = uc.Register(context.Background(), second)

	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "email", dup.Field)
	assert.Equal(t, "ana@example.com", dup.Value)

	st.View(func(s *store.State) {
		require.Len(t, s.Users, 1, "el duplicado no debe insertar un segundo usuario")
		assert.Equal(t, "Ana Gómez", s.Users[0].Name)
	})
}

// Escenario: contraseña "short1!" (7 caracteres): cumple número y especial
// pero no el largo mínimo.
func TestRegister_ContrasenaDebil(t *testing.T) {
	st, uc := newAuthFixture(t)

	in := registerRequest()
	in.Password = "short1!"
	_, err := uc.Register(context.Background(), in)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "password", verrs[0].Field)

	st.View(func(s *store.State) {
		assert.Empty(t, s.Users, "un registro rechazado no persiste nada")
	})
}

func TestRegister_CamposVaciosYEmailMalformado(t *testing.T) {
	_, uc := newAuthFixture(t)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3, "nombre, email y contraseña vacíos: tres violaciones")

	in := registerRequest()
	in.Email = "sin-arroba"
	_, err = uc.Register(context.Background(), in)
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "email", verrs[0].Field)
}

func TestRegister_GuardaHashNoLaContrasena(t *testing.T) {
	st, uc := newAuthFixture(t)
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	st.View(func(s *store.State) {
		require.Len(t, s.Users, 1)
		secret := s.Users[0].PasswordSecret
		assert.NotEqual(t, "segura123!", secret, "la contraseña nunca se guarda en claro")
		assert.NotEmpty(t, secret)
	})
}

// El duplicado se detecta por igualdad exacta: el mismo email con otra
// capitalización registra un segundo usuario.
func TestRegister_EmailDistingueMayusculas(t *testing.T) {
	st, uc := newAuthFixture(t)

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	upper := registerRequest()
	upper.Email = "ANA@example.com"
	_, err = uc.Register(context.Background(), upper)
	require.NoError(t, err)

	st.View(func(s *store.State) {
		assert.Len(t, s.Users, 2)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso_ApuntaSesionYEmiteToken(t *testing.T) {
	st, uc := newAuthFixture(t)
	registered, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "segura123!",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, out.User.ID)

	userID, email, err := jwtpkg.Parse(testSecret, out.Token)
	require.NoError(t, err, "el token emitido debe verificar con el mismo secreto")
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "ana@example.com", email)

	st.View(func(s *store.State) {
		assert.Equal(t, registered.ID, s.SessionUserID)
	})
	require.NotNil(t, uc.Current())
	assert.Equal(t, registered.ID, uc.Current().ID)
}

func TestLogin_CredencialesInvalidas_MismoError(t *testing.T) {
	st, uc := newAuthFixture(t)
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	// Contraseña incorrecta y email inexistente devuelven el mismo error:
	// el mensaje no revela cuál de los dos campos falló.
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta1!"})
	require.ErrorIs(t, err, domain.ErrAuth)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "segura123!"})
	require.ErrorIs(t, err, domain.ErrAuth)

	st.View(func(s *store.State) {
		assert.Empty(t, s.SessionUserID, "un login fallido no abre sesión")
	})
}

func TestLogout_LimpiaSesion(t *testing.T) {
	st, uc := newAuthFixture(t)
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "segura123!"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background()))
	st.View(func(s *store.State) {
		assert.Empty(t, s.SessionUserID)
	})
	assert.Nil(t, uc.Current())

	// Logout sin sesión activa tampoco es un error.
	require.NoError(t, uc.Logout(context.Background()))
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado de usuario y puntero de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoveUser_ConSesionActiva_LimpiaElPuntero(t *testing.T) {
	st, authUC := newAuthFixture(t)
	users := usecase.NewUserUseCase(st)

	registered, err := authUC.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	_, err = authUC.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "segura123!"})
	require.NoError(t, err)

	require.NoError(t, users.Remove(context.Background(), registered.ID))

	st.View(func(s *store.State) {
		assert.Empty(t, s.Users, "el borrado de usuario es definitivo")
		assert.Empty(t, s.SessionUserID, "la sesión no puede apuntar a un usuario borrado")
	})
}

func TestRemoveUser_OtroUsuario_NoTocaLaSesion(t *testing.T) {
	st, authUC := newAuthFixture(t)
	users := usecase.NewUserUseCase(st)

	ana, err := authUC.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	otro := registerRequest()
	otro.Email = "otro@example.com"
	otroUser, err := authUC.Register(context.Background(), otro)
	require.NoError(t, err)

	_, err = authUC.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "segura123!"})
	require.NoError(t, err)

	require.NoError(t, users.Remove(context.Background(), otroUser.ID))
	st.View(func(s *store.State) {
		assert.Equal(t, ana.ID, s.SessionUserID, "borrar a otro usuario no cierra mi sesión")
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Rename y RecoverPassword
// ──────────────────────────────────────────────────────────────────────────────

func TestRename_ValidaYActualiza(t *testing.T) {
	st, authUC := newAuthFixture(t)
	users := usecase.NewUserUseCase(st)
	registered, err := authUC.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	out, err := users.Rename(context.Background(), registered.ID, "  Ana María  ")
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.Name, "el nombre se recorta antes de guardar")

	var verrs domain.ValidationErrors
	_, err = users.Rename(context.Background(), registered.ID, "   ")
	require.ErrorAs(t, err, &verrs, "el nombre en blanco se rechaza")

	var nf *domain.NotFoundError
	_, err = users.Rename(context.Background(), "nope", "Nombre")
	require.ErrorAs(t, err, &nf)
}

func TestRecoverPassword(t *testing.T) {
	_, uc := newAuthFixture(t)
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NoError(t, uc.RecoverPassword("ana@example.com"))

	var nf *domain.NotFoundError
	err = uc.RecoverPassword("nadie@example.com")
	require.ErrorAs(t, err, &nf)
}
