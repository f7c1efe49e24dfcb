package entity

// Unit unidad de medida (ej: "kg", "caja"). Entidad hoja.
type Unit struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
