package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/e2e-commerce/internal/application/dto"
	"github.com/jhoicas/e2e-commerce/internal/application/store"
	"github.com/jhoicas/e2e-commerce/internal/domain"
	"github.com/jhoicas/e2e-commerce/internal/domain/entity"
)

// CartUseCase operaciones sobre el carrito. El techo de stock se verifica
// contra el stock vigente del producto en el momento de cada mutación; una
// línea existente no se re-valida hasta su próxima mutación, de modo que una
// baja posterior de stock puede dejarla temporalmente por encima del vigente.
type CartUseCase struct {
	store *store.Store
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(st *store.Store) *CartUseCase {
	return &CartUseCase{store: st}
}

// AddItem agrega una unidad del producto. Sin línea previa crea una con
// cantidad 1 y la foto de título/precio/imagen; con línea previa incrementa
// solo si el resultado no supera el stock vigente. Todo-o-nada: ante error
// la línea queda exactamente como estaba.
func (uc *CartUseCase) AddItem(ctx context.Context, productID string) (*dto.CartLineResponse, error) {
	var out *dto.CartLineResponse
	err := uc.store.Update(ctx, func(st *store.State) error {
		p := st.FindActiveProduct(productID)
		if p == nil {
			return &domain.NotFoundError{Entity: "producto", ID: productID}
		}
		line := st.FindLine(productID)
		if line == nil {
			if p.Stock == 0 {
				return &domain.StockError{Requested: 1, Available: 0}
			}
			line = &entity.CartLine{
				ProductID: p.ID,
				Title:     p.Title,
				Price:     p.Price,
				Image:     p.Image,
				Quantity:  1,
			}
			st.Cart = append(st.Cart, line)
		} else {
			if line.Quantity+1 > p.Stock {
				return &domain.StockError{Requested: line.Quantity + 1, Available: p.Stock}
			}
			line.Quantity++
		}
		out = toCartLineResponse(line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateQuantity ajusta la cantidad por delta. Resultado <= 0 elimina la
// línea; resultado por encima del stock vigente falla dejando la línea
// intacta.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, productID string, delta int) error {
	return uc.store.Update(ctx, func(st *store.State) error {
		line := st.FindLine(productID)
		if line == nil {
			return &domain.NotFoundError{Entity: "línea de carrito", ID: productID}
		}
		newQuantity := line.Quantity + delta
		if newQuantity <= 0 {
			st.RemoveLine(productID)
			return nil
		}
		// El chequeo usa el producto almacenado aunque esté inactivo: la
		// referencia débil de la línea sigue apuntando a su stock.
		p := st.FindProduct(productID)
		if p == nil {
			return &domain.NotFoundError{Entity: "producto", ID: productID}
		}
		if newQuantity > p.Stock {
			return &domain.StockError{Requested: newQuantity, Available: p.Stock}
		}
		line.Quantity = newQuantity
		return nil
	})
}

// RemoveItem elimina la línea si existe. Nunca es un error: repetir la
// eliminación deja el carrito igual.
func (uc *CartUseCase) RemoveItem(ctx context.Context, productID string) error {
	return uc.store.Update(ctx, func(st *store.State) error {
		st.RemoveLine(productID)
		return nil
	})
}

// List devuelve el carrito completo con sus totales.
func (uc *CartUseCase) List() *dto.CartResponse {
	out := &dto.CartResponse{Items: make([]dto.CartLineResponse, 0), TotalPrice: decimal.Zero}
	uc.store.View(func(st *store.State) {
		for _, l := range st.Cart {
			out.Items = append(out.Items, *toCartLineResponse(l))
			out.TotalCount += l.Quantity
			out.TotalPrice = out.TotalPrice.Add(l.Subtotal())
		}
	})
	return out
}

// TotalCount suma las cantidades de todas las líneas.
func (uc *CartUseCase) TotalCount() int {
	total := 0
	uc.store.View(func(st *store.State) {
		for _, l := range st.Cart {
			total += l.Quantity
		}
	})
	return total
}

// TotalPrice suma precio × cantidad por línea usando el precio congelado al
// agregar, no el vigente del catálogo.
func (uc *CartUseCase) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	uc.store.View(func(st *store.State) {
		for _, l := range st.Cart {
			total = total.Add(l.Subtotal())
		}
	})
	return total
}

func toCartLineResponse(l *entity.CartLine) *dto.CartLineResponse {
	if l == nil {
		return nil
	}
	return &dto.CartLineResponse{
		ProductID: l.ProductID,
		Title:     l.Title,
		Price:     l.Price,
		Image:     l.Image,
		Quantity:  l.Quantity,
		Subtotal:  l.Subtotal(),
	}
}
