package entity

// Department departamento (agrupador de primer nivel del catálogo).
type Department struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
