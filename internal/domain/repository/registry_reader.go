package repository

import (
	"context"

	"github.com/tu-usuario/registries-console/internal/domain/entity"
)

// authKey clave de contexto para la credencial a reenviar al record store.
type authKey struct{}

// WithAuthorization devuelve un contexto que lleva el valor completo de la
// cabecera Authorization del caller (Bearer o Basic). Forma parte del
// contrato del puerto: la autorización sobre los datos la decide el record
// store, este servicio solo la transporta.
func WithAuthorization(ctx context.Context, authorization string) context.Context {
	if authorization == "" {
		return ctx
	}
	return context.WithValue(ctx, authKey{}, authorization)
}

// AuthorizationFrom devuelve la credencial transportada, "" si no hay.
func AuthorizationFrom(ctx context.Context) string {
	s, _ := ctx.Value(authKey{}).(string)
	return s
}

// RegistryReader define las operaciones de lectura sobre el record store de
// registros maestros. Las implementaciones son read-only; la concreta habla
// HTTP/JSON con el backend y para tests se inyecta un fake.
//
// Cada método devuelve la colección completa del registro en el orden en que
// el backend la entrega, o un error si la operación falló como un todo. El
// motor de agregación decide qué fallos son fatales y cuáles se aíslan.
type RegistryReader interface {
	// ListBrands devuelve todas las marcas.
	ListBrands(ctx context.Context) ([]entity.Brand, error)

	// ListDepartments devuelve todos los departamentos.
	ListDepartments(ctx context.Context) ([]entity.Department, error)

	// ListSubDepartments devuelve los subdepartamentos de un departamento.
	ListSubDepartments(ctx context.Context, departmentID int64) ([]entity.SubDepartment, error)

	// ListProducts devuelve todos los productos.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// ListUnits devuelve todas las unidades de medida.
	ListUnits(ctx context.Context) ([]entity.Unit, error)

	// ListPriceLevels devuelve los niveles de precio de un producto.
	ListPriceLevels(ctx context.Context, productID int64) ([]entity.PriceLevel, error)

	// ListStockTakings devuelve todos los registros de conteo físico.
	ListStockTakings(ctx context.Context) ([]entity.StockTaking, error)

	// GetProduct devuelve un producto puntual (para los reportes por producto).
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
}
