package entity

// Brand marca registrada en el record store. Entidad hoja: no referencia a nada más.
type Brand struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
