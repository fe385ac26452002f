package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/e2e-commerce/internal/application/dto"
	"github.com/jhoicas/e2e-commerce/internal/application/store"
)

// SeedDemoCatalog carga los productos de ejemplo de la demo si el catálogo
// está vacío (incluyendo productos inactivos). Devuelve cuántos creó.
func SeedDemoCatalog(ctx context.Context, uc *CatalogUseCase) (int, error) {
	// El catálogo cuenta también los inactivos: re-sembrar sobre un catálogo
	// "vaciado" con borrados lógicos duplicaría productos.
	empty := true
	uc.store.View(func(st *store.State) { empty = len(st.Products) == 0 })
	if !empty {
		return 0, nil
	}

	samples := []dto.UpsertProductRequest{
		{
			Title:       "Smartphone Samsung Galaxy S23",
			Description: "Smartphone con pantalla de 6.1 pulgadas, cámara de 50MP, 128GB de almacenamiento y procesador Snapdragon 8 Gen 2.",
			Category:    "electrónica",
			Price:       decimal.NewFromFloat(2999.99),
			Stock:       10,
			Image:       "https://images.samsung.com/smartphones/galaxy-s23/images/galaxy-s23-highlights-mo.jpg",
		},
		{
			Title:       "Notebook Dell Inspiron 15",
			Description: "Notebook con procesador Intel i5, 8GB RAM, SSD 256GB, pantalla Full HD de 15.6 pulgadas y Windows 11.",
			Category:    "electrónica",
			Price:       decimal.NewFromFloat(2499.99),
			Stock:       5,
			Image:       "https://i.dell.com/sites/csdocuments/Shared-Content/data-sheets/Dell-Inspiron-15-3520-Laptop.jpg",
		},
		{
			Title:       "Zapatillas Nike Air Max 270",
			Description: "Zapatillas deportivas con tecnología Air Max, suela de goma y capellada de mesh respirable. Ideales para correr y caminar.",
			Category:    "deportes",
			Price:       decimal.NewFromFloat(399.99),
			Stock:       20,
			Image:       "https://static.nike.com/a/images/air-max-270-mens-shoes-KkLcGR.png",
		},
	}

	for _, in := range samples {
		if _, err := uc.Upsert(ctx, in); err != nil {
			return 0, err
		}
	}
	return len(samples), nil
}
