// Package registry contiene los algoritmos puros de reconciliación sobre los
// registros maestros: resolución de referencias ambiguas, métricas de stock,
// agrupación de productos, ordenación de niveles de precio, ranking por
// antigüedad y clasificación de variaciones de conteo. Todo es libre de
// efectos: entra un lote, sale un valor.
package registry

import "github.com/tu-usuario/registries-console/internal/domain/entity"

// UnknownProduct centinela para conteos cuyo producto no se pudo resolver.
const UnknownProduct = "Unknown Product"

// ResolveName resuelve una relación hacia otra entidad a un nombre visible.
//
// Cadena de resolución, cada paso solo si el anterior no produjo nada:
//  1. nombre del objeto embebido, si la referencia llegó completa;
//  2. lookup por id (el id embebido tiene precedencia sobre el id plano);
//  3. centinela del llamador ("Unassigned", "Unknown Product", ...).
//
// Nunca falla y nunca devuelve cadena vacía mientras el centinela no lo sea:
// un registro jamás se descarta de un agregado por tener la referencia rota.
func ResolveName(ref entity.EntityRef, flatID int64, lookup map[int64]string, sentinel string) string {
	if name := ref.Name(); name != "" {
		return name
	}

	id := ref.ID()
	if id == 0 {
		id = flatID
	}
	if name, ok := lookup[id]; ok && name != "" {
		return name
	}

	return sentinel
}
