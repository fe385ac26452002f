package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jhoicas/e2e-commerce/internal/application/dto"
	"github.com/jhoicas/e2e-commerce/internal/application/store"
	"github.com/jhoicas/e2e-commerce/internal/domain"
	"github.com/jhoicas/e2e-commerce/internal/domain/entity"
)

// CatalogUseCase operaciones sobre el catálogo de productos: upsert validado,
// borrado lógico, listado de activos y búsqueda por subcadena.
type CatalogUseCase struct {
	store *store.Store
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(st *store.Store) *CatalogUseCase {
	return &CatalogUseCase{store: st}
}

// Upsert crea o edita un producto. Si la validación falla devuelve la lista
// ordenada de violaciones y no muta nada. Con ID de un producto existente
// reemplaza todos los campos menos CreatedAt; si no, asigna id nuevo,
// CreatedAt=ahora y Active=true.
func (uc *CatalogUseCase) Upsert(ctx context.Context, in dto.UpsertProductRequest) (*dto.ProductResponse, error) {
	if errs := domain.ValidateProduct(domain.ProductInput{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Image:       in.Image,
	}); len(errs) > 0 {
		return nil, errs
	}

	var out *dto.ProductResponse
	err := uc.store.Update(ctx, func(st *store.State) error {
		if in.ID != "" {
			if existing := st.FindProduct(in.ID); existing != nil {
				existing.Title = in.Title
				existing.Description = in.Description
				existing.Category = in.Category
				existing.Price = in.Price
				existing.Stock = in.Stock
				existing.Image = in.Image
				existing.Active = true
				out = toProductResponse(existing)
				return nil
			}
		}
		p := &entity.Product{
			ID:          uuid.New().String(),
			Title:       in.Title,
			Description: in.Description,
			Category:    in.Category,
			Price:       in.Price,
			Stock:       in.Stock,
			Image:       in.Image,
			Active:      true,
			CreatedAt:   time.Now(),
		}
		st.Products = append(st.Products, p)
		out = toProductResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SoftDelete marca el producto como inactivo. Si el id no existe no pasa
// nada: el borrado es deliberadamente idempotente.
func (uc *CatalogUseCase) SoftDelete(ctx context.Context, id string) error {
	return uc.store.Update(ctx, func(st *store.State) error {
		if p := st.FindProduct(id); p != nil {
			p.Active = false
		}
		return nil
	})
}

// GetByID devuelve el detalle de un producto activo.
func (uc *CatalogUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	uc.store.View(func(st *store.State) {
		if p := st.FindActiveProduct(id); p != nil {
			out = toProductResponse(p)
		}
	})
	if out == nil {
		return nil, &domain.NotFoundError{Entity: "producto", ID: id}
	}
	return out, nil
}

// ListActive devuelve los productos activos en el orden de inserción.
func (uc *CatalogUseCase) ListActive() *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0)
	uc.store.View(func(st *store.State) {
		for _, p := range st.Products {
			if p.Active {
				items = append(items, *toProductResponse(p))
			}
		}
	})
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

// Search filtra los productos activos por subcadena, sin distinguir
// mayúsculas, contra título, descripción y categoría, conservando el orden
// del catálogo. Un término en blanco equivale a ListActive.
func (uc *CatalogUseCase) Search(term string) *dto.ProductListResponse {
	term = strings.TrimSpace(term)
	if term == "" {
		return uc.ListActive()
	}

	// Case folding Unicode, no un simple ToLower: "Straße" matchea "STRASSE".
	folder := cases.Fold()
	needle := folder.String(term)

	items := make([]dto.ProductResponse, 0)
	uc.store.View(func(st *store.State) {
		for _, p := range st.Products {
			if !p.Active {
				continue
			}
			if strings.Contains(folder.String(p.Title), needle) ||
				strings.Contains(folder.String(p.Description), needle) ||
				strings.Contains(folder.String(p.Category), needle) {
				items = append(items, *toProductResponse(p))
			}
		}
	})
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}
