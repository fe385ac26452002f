// Package auth implementa el registro, login y manejo del puntero de sesión
// única. Las contraseñas se guardan como hash bcrypt y se comparan con
// bcrypt, nunca en claro.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/e2e-commerce/internal/application/dto"
	"github.com/jhoicas/e2e-commerce/internal/application/store"
	"github.com/jhoicas/e2e-commerce/internal/application/usecase"
	"github.com/jhoicas/e2e-commerce/internal/domain"
	"github.com/jhoicas/e2e-commerce/internal/domain/entity"
	"github.com/jhoicas/e2e-commerce/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de identidad: registro, login, logout y
// recuperación de contraseña.
type AuthUseCase struct {
	store  *store.Store
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(st *store.Store, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{store: st, jwtCfg: jwtCfg}
}

// Register crea un usuario nuevo. Valida en este orden: campos presentes,
// forma del email, email no duplicado, fortaleza de la contraseña. El email
// duplicado se detecta por igualdad exacta de cadenas.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	var errs domain.ValidationErrors
	if in.Name == "" {
		errs = append(errs, domain.ValidationError{Field: "name", Message: "el nombre es obligatorio"})
	}
	if in.Email == "" {
		errs = append(errs, domain.ValidationError{Field: "email", Message: "el email es obligatorio"})
	} else if !domain.IsValidEmail(in.Email) {
		errs = append(errs, domain.ValidationError{Field: "email", Message: "email inválido"})
	}
	if in.Password == "" {
		errs = append(errs, domain.ValidationError{Field: "password", Message: "la contraseña es obligatoria"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	var out *dto.UserResponse
	err := uc.store.Update(ctx, func(st *store.State) error {
		if st.FindUserByEmail(in.Email) != nil {
			return &domain.DuplicateError{Field: "email", Value: in.Email}
		}
		if !domain.IsValidPassword(in.Password) {
			return domain.ValidationErrors{{
				Field:   "password",
				Message: "la contraseña debe tener al menos 8 caracteres, con número y carácter especial",
			}}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &entity.User{
			ID:             uuid.New().String(),
			Name:           in.Name,
			Email:          in.Email,
			PasswordSecret: string(hash),
			CreatedAt:      time.Now(),
		}
		st.Users = append(st.Users, user)
		out = usecase.ToUserResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Login verifica email (igualdad exacta) y contraseña (bcrypt). En éxito
// apunta la sesión al usuario y emite un JWT para la capa HTTP. Cualquier
// fallo devuelve el mismo ErrAuth, sin revelar cuál de los dos campos falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var out *dto.LoginResponse
	err := uc.store.Update(ctx, func(st *store.State) error {
		user := st.FindUserByEmail(in.Email)
		if user == nil {
			return domain.ErrAuth
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordSecret), []byte(in.Password)); err != nil {
			return domain.ErrAuth
		}
		token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return err
		}
		st.SessionUserID = user.ID
		out = &dto.LoginResponse{Token: token, User: *usecase.ToUserResponse(user)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Logout limpia el puntero de sesión incondicionalmente.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.store.Update(ctx, func(st *store.State) error {
		st.SessionUserID = ""
		return nil
	})
}

// Current devuelve el usuario al que apunta la sesión activa, o nil si no
// hay sesión (o si el puntero quedó colgando).
func (uc *AuthUseCase) Current() *dto.UserResponse {
	var out *dto.UserResponse
	uc.store.View(func(st *store.State) {
		if st.SessionUserID == "" {
			return
		}
		out = usecase.ToUserResponse(st.FindUser(st.SessionUserID))
	})
	return out
}

// RecoverPassword simula el envío del correo de recuperación: solo verifica
// que el email exista. No hay envío real en la demo.
func (uc *AuthUseCase) RecoverPassword(email string) error {
	var found bool
	uc.store.View(func(st *store.State) {
		found = st.FindUserByEmail(email) != nil
	})
	if !found {
		return &domain.NotFoundError{Entity: "usuario", ID: email}
	}
	return nil
}
