package registryhttp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/registries-console/internal/domain"
	"github.com/tu-usuario/registries-console/internal/domain/repository"
	"github.com/tu-usuario/registries-console/internal/infrastructure/registryhttp"
	"github.com/tu-usuario/registries-console/pkg/config"
)

func newClient(t *testing.T, handler http.Handler) *registryhttp.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return registryhttp.NewClient(config.RegistryConfig{BaseURL: server.URL, TimeoutSeconds: 5})
}

func TestListProducts_DecodificaElWireReal(t *testing.T) {
	// Payload con las tres formas de referencia que emite el backend
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"code":"P-001","name":"A","sellingPrice":"10.50","department":{"id":3,"name":"Electronics"}},
			{"id":2,"code":"P-002","name":"B","departmentId":5},
			{"id":3,"code":"P-003","name":"C","department":null}
		]`))
	}))

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.True(t, products[0].SellingPrice.Equal(decimal.NewFromFloat(10.5)))
	assert.Equal(t, "Electronics", products[0].Department.Name())
	assert.False(t, products[1].Department.Present())
	assert.Equal(t, int64(5), products[1].DepartmentID)
	assert.False(t, products[2].Department.Present())
}

// La credencial del caller viaja tal cual al record store.
func TestGet_ReenviaLaCabeceraAuthorization(t *testing.T) {
	var seen string
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))

	ctx := repository.WithAuthorization(context.Background(), "Bearer token-de-prueba")
	_, err := client.ListBrands(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-de-prueba", seen)
}

func TestGet_SinCredencialNoEnviaCabecera(t *testing.T) {
	var seen []string
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Values("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.ListUnits(context.Background())
	require.NoError(t, err)

	assert.Empty(t, seen)
}

func TestGetProduct_NotFound(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))

	product, err := client.GetProduct(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, product)
}

func TestList_ErrorDelUpstream(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.ListStockTakings(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestListSubDepartments_RutaPorPadre(t *testing.T) {
	var path string
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`[{"id":100,"name":"Audio"}]`))
	}))

	subs, err := client.ListSubDepartments(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "/api/sub-departments/department/7", path)
	require.Len(t, subs, 1)
	assert.Equal(t, "Audio", subs[0].Name)
}
