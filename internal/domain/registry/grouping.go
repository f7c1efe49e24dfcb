package registry

import "github.com/tu-usuario/registries-console/internal/domain/entity"

// UnassignedGroup centinela para productos cuyo departamento no se pudo resolver.
const UnassignedGroup = "Unassigned"

// GroupProducts agrupa los productos por nombre de departamento resuelto y
// devuelve el conteo por grupo.
//
// Conservación: todo producto cae en exactamente un grupo (los irresolubles
// en UnassignedGroup), por lo que la suma de los conteos siempre iguala al
// tamaño del lote.
func GroupProducts(products []entity.Product, departments map[int64]string) map[string]int {
	groups := make(map[string]int, len(departments)+1)
	for _, p := range products {
		name := ResolveName(p.Department, p.DepartmentID, departments, UnassignedGroup)
		groups[name]++
	}
	return groups
}
