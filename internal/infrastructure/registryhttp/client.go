// Package registryhttp implementa repository.RegistryReader contra el record
// store de registros (backend Spring) vía HTTP/JSON.
//
// El cliente no interpreta semántica de negocio: cada operación devuelve la
// colección decodificada o un error. Códigos de estado, cabeceras y timeouts
// viven aquí y no se filtran al motor de agregación.
package registryhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tu-usuario/registries-console/internal/domain"
	"github.com/tu-usuario/registries-console/internal/domain/entity"
	"github.com/tu-usuario/registries-console/internal/domain/repository"
	"github.com/tu-usuario/registries-console/pkg/config"
)

// Client cliente HTTP del record store. Usa net/http de la stdlib: son GETs
// JSON planos y no hay nada que una librería de terceros aporte aquí.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente con el timeout de la configuración.
func NewClient(cfg config.RegistryConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

// get lanza un GET y decodifica el cuerpo JSON en out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("registry: construir petición %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if auth := repository.AuthorizationFrom(ctx); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("registry: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drenar para reutilizar la conexión
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: GET %s", domain.ErrNotFound, path)
		}
		return fmt.Errorf("%w: GET %s devolvió %d", domain.ErrUpstream, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("registry: decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// list lanza un GET que devuelve una colección JSON.
func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	if err := c.get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListBrands devuelve todas las marcas.
func (c *Client) ListBrands(ctx context.Context) ([]entity.Brand, error) {
	return list[entity.Brand](ctx, c, "/api/brands")
}

// ListDepartments devuelve todos los departamentos.
func (c *Client) ListDepartments(ctx context.Context) ([]entity.Department, error) {
	return list[entity.Department](ctx, c, "/api/departments")
}

// ListSubDepartments devuelve los subdepartamentos de un departamento.
func (c *Client) ListSubDepartments(ctx context.Context, departmentID int64) ([]entity.SubDepartment, error) {
	return list[entity.SubDepartment](ctx, c, fmt.Sprintf("/api/sub-departments/department/%d", departmentID))
}

// ListProducts devuelve todos los productos.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return list[entity.Product](ctx, c, "/api/products")
}

// ListUnits devuelve todas las unidades de medida.
func (c *Client) ListUnits(ctx context.Context) ([]entity.Unit, error) {
	return list[entity.Unit](ctx, c, "/api/units")
}

// ListPriceLevels devuelve los niveles de precio de un producto.
func (c *Client) ListPriceLevels(ctx context.Context, productID int64) ([]entity.PriceLevel, error) {
	return list[entity.PriceLevel](ctx, c, fmt.Sprintf("/api/price-levels/product/%d", productID))
}

// ListStockTakings devuelve todos los registros de conteo físico.
func (c *Client) ListStockTakings(ctx context.Context) ([]entity.StockTaking, error) {
	return list[entity.StockTaking](ctx, c, "/api/stock-taking")
}

// GetProduct devuelve un producto puntual.
func (c *Client) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var product entity.Product
	if err := c.get(ctx, fmt.Sprintf("/api/products/%d", id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}
