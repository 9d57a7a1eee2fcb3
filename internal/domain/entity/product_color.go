package entity

import "time"

// ProductColor es la fila asociativa (producto, color): identidad compuesta,
// stock por par e imágenes en lista ordenada de identificadores de archivo.
// Se crea implícitamente al asociar un color a un producto (stock 0, sin
// imágenes) y se muta de forma independiente de las entidades padre.
type ProductColor struct {
	ProductID string
	ColorID   string
	Stock     int      // >= 0
	Images    []string // orden de inserción; se admiten ids duplicados
	CreatedAt time.Time
	UpdatedAt time.Time
}
