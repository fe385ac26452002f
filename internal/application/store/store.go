// Package store contiene el objeto de estado del motor: las colecciones en
// memoria, el lock que serializa toda secuencia validar-mutar-flush y el
// gateway de persistencia inyectado en la construcción.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/e2e-commerce/internal/domain/entity"
	"github.com/jhoicas/e2e-commerce/internal/domain/repository"
)

// State son las colecciones vivas del motor. Solo es accesible dentro de un
// View o Update del Store, nunca como estado ambiente.
type State struct {
	Users         []*entity.User
	Products      []*entity.Product
	Cart          []*entity.CartLine
	SessionUserID string // "" = sin sesión activa
}

// FindUser devuelve el usuario con ese id, o nil.
func (st *State) FindUser(id string) *entity.User {
	for _, u := range st.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// FindUserByEmail busca por igualdad exacta de email. La comparación es
// sensible a mayúsculas y sin normalizar: así se comporta la detección de
// duplicados y el login desde el origen, y normalizar cambiaría ese
// comportamiento observable.
func (st *State) FindUserByEmail(email string) *entity.User {
	for _, u := range st.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// RemoveUser elimina el usuario con ese id; devuelve true si existía.
func (st *State) RemoveUser(id string) bool {
	for i, u := range st.Users {
		if u.ID == id {
			st.Users = append(st.Users[:i], st.Users[i+1:]...)
			return true
		}
	}
	return false
}

// FindProduct devuelve el producto con ese id, activo o no, o nil.
func (st *State) FindProduct(id string) *entity.Product {
	for _, p := range st.Products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindActiveProduct devuelve el producto solo si existe y está activo.
func (st *State) FindActiveProduct(id string) *entity.Product {
	if p := st.FindProduct(id); p != nil && p.Active {
		return p
	}
	return nil
}

// FindLine devuelve la línea del carrito para ese producto, o nil.
func (st *State) FindLine(productID string) *entity.CartLine {
	for _, l := range st.Cart {
		if l.ProductID == productID {
			return l
		}
	}
	return nil
}

// RemoveLine elimina la línea para ese producto; devuelve true si existía.
func (st *State) RemoveLine(productID string) bool {
	for i, l := range st.Cart {
		if l.ProductID == productID {
			st.Cart = append(st.Cart[:i], st.Cart[i+1:]...)
			return true
		}
	}
	return false
}

// Store posee el estado y serializa el acceso. Exactamente una operación del
// motor corre a la vez: el mutex hace explícita la disciplina de escritor
// único que el origen daba por supuesta.
type Store struct {
	mu    sync.Mutex
	state State
	gw    repository.PersistenceGateway
}

// New construye el store cargando las cuatro colecciones desde el gateway.
func New(ctx context.Context, gw repository.PersistenceGateway) (*Store, error) {
	users, products, cart, sessionUserID, err := gw.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar estado inicial: %w", err)
	}
	return &Store{
		state: State{
			Users:         users,
			Products:      products,
			Cart:          cart,
			SessionUserID: sessionUserID,
		},
		gw: gw,
	}, nil
}

// Update ejecuta fn bajo el lock y, solo si fn no devuelve error, hace el
// flush de las cuatro colecciones. fn debe validar antes de mutar: si
// devuelve error sin haber tocado el estado, la operación es todo-o-nada.
func (s *Store) Update(ctx context.Context, fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.state); err != nil {
		return err
	}
	return s.gw.SaveAll(ctx, s.state.Users, s.state.Products, s.state.Cart, s.state.SessionUserID)
}

// View ejecuta fn bajo el lock sin flush, para lecturas.
func (s *Store) View(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}
