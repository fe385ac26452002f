package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/e2e-commerce/internal/application/dto"
	"github.com/jhoicas/e2e-commerce/internal/application/store"
	"github.com/jhoicas/e2e-commerce/internal/domain"
	"github.com/jhoicas/e2e-commerce/internal/domain/entity"
)

// UserUseCase administración de usuarios: listado, renombre y borrado duro.
// El registro y el login viven en el paquete auth.
type UserUseCase struct {
	store *store.Store
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(st *store.Store) *UserUseCase {
	return &UserUseCase{store: st}
}

// List devuelve todos los usuarios registrados.
func (uc *UserUseCase) List() *dto.UserListResponse {
	items := make([]dto.UserResponse, 0)
	uc.store.View(func(st *store.State) {
		for _, u := range st.Users {
			items = append(items, *ToUserResponse(u))
		}
	})
	return &dto.UserListResponse{Items: items, Total: len(items)}
}

// Rename cambia el nombre del usuario. El nombre vacío tras recortar
// espacios se rechaza.
func (uc *UserUseCase) Rename(ctx context.Context, id, newName string) (*dto.UserResponse, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, domain.ValidationErrors{{Field: "name", Message: "el nombre no puede estar vacío"}}
	}
	var out *dto.UserResponse
	err := uc.store.Update(ctx, func(st *store.State) error {
		u := st.FindUser(id)
		if u == nil {
			return &domain.NotFoundError{Entity: "usuario", ID: id}
		}
		u.Name = newName
		out = ToUserResponse(u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Remove borra el usuario de forma definitiva (sin borrado lógico). Si la
// sesión activa apuntaba a ese usuario, el puntero se limpia para no dejar
// una sesión colgando de un id inexistente. El carrito no se toca: sus
// líneas referencian productos, no usuarios.
func (uc *UserUseCase) Remove(ctx context.Context, id string) error {
	return uc.store.Update(ctx, func(st *store.State) error {
		if st.RemoveUser(id) && st.SessionUserID == id {
			st.SessionUserID = ""
		}
		return nil
	})
}

// ToUserResponse convierte la entidad sin exponer material de credenciales.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
