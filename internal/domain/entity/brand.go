package entity

import "time"

// Brand representa una marca. Logo guarda el identificador del archivo subido
// (vacío si no tiene). Borrado bloqueado mientras existan productos asociados.
type Brand struct {
	ID        string
	Name      string // único
	Logo      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
