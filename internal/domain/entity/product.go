package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Name es único. CategoryID vacío
// significa producto sin categoría. Category viene resuelta en las lecturas
// (JOIN en el repositorio); nil cuando no hay categoría asociada.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  string
	Category    *Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
