package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	JWT       JWTConfig
	Registry  RegistryConfig
	Dashboard DashboardConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT. El secret es compartido con el record store,
// que es quien emite los tokens; este servicio solo los verifica.
type JWTConfig struct {
	Secret string
	Issuer string
}

// RegistryConfig configuración del cliente HTTP hacia el record store de registros.
type RegistryConfig struct {
	BaseURL        string // ej: http://localhost:8080
	TimeoutSeconds int
}

// Timeout devuelve el timeout de red del cliente.
func (c RegistryConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DashboardConfig umbrales del motor de agregación del dashboard.
// Valores por defecto heredados del comportamiento histórico de la consola.
type DashboardConfig struct {
	MinQuantityDefault int64 // mínimo de stock cuando el registro de conteo no trae minQuantity
	LowStockSample     int   // cuántos registros de bajo stock se exponen en el snapshot
	RecentProducts     int   // cuántos productos recientes se exponen en el snapshot
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET,
// REGISTRY_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "registries-console"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8090),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "inventory-registries"),
		},
		Registry: RegistryConfig{
			BaseURL:        getString(v, "REGISTRY_BASE_URL", "http://localhost:8080"),
			TimeoutSeconds: getInt(v, "REGISTRY_TIMEOUT_SECONDS", 15),
		},
		Dashboard: DashboardConfig{
			MinQuantityDefault: int64(getInt(v, "DASHBOARD_MIN_QUANTITY_DEFAULT", 5)),
			LowStockSample:     getInt(v, "DASHBOARD_LOW_STOCK_SAMPLE", 5),
			RecentProducts:     getInt(v, "DASHBOARD_RECENT_PRODUCTS", 5),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
