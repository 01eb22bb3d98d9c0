package entity

import "time"

// Category representa una categoría del catálogo. Name es único (sensible a
// mayúsculas). Description e ImagePath son opcionales: vacío significa ausente.
type Category struct {
	ID          string
	Name        string
	Description string
	ImagePath   string // ruta o URL de la imagen; el contenido lo maneja el colaborador de uploads
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
