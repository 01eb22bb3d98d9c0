package entity

import "time"

// ProductImage representa una imagen asociada a un producto. Por producto hay
// a lo sumo una imagen con IsPrimary=true. AltText vacío significa ausente.
// Product viene resuelto en las lecturas; puede ser nil en escrituras.
type ProductImage struct {
	ID        string
	ProductID string
	ImageURL  string
	IsPrimary bool
	AltText   string
	Product   *Product
	CreatedAt time.Time
	UpdatedAt time.Time
}
