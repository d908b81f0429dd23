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
	Store     StoreConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host     string
	Port     int
	DocsPath string // swagger.json servido en /docs; vacío = deshabilitado
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig almacén en memoria.
// FixturesPath vacío usa los fixtures embebidos en el binario.
type StoreConfig struct {
	FixturesPath string
	Latency      time.Duration // latencia simulada por operación
}

// InventoryConfig parámetros del motor de inventario.
type InventoryConfig struct {
	ExpiryWindowDays int // ventana por defecto de "próximos a vencer"
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, FIXTURES_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	latencyMS := getInt(v, "STORE_LATENCY_MS", 0)
	if latencyMS < 0 {
		return nil, fmt.Errorf("STORE_LATENCY_MS no puede ser negativo: %d", latencyMS)
	}
	window := getInt(v, "EXPIRY_WINDOW_DAYS", 30)
	if window < 0 {
		return nil, fmt.Errorf("EXPIRY_WINDOW_DAYS no puede ser negativo: %d", window)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "erp-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:     getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:     getInt(v, "HTTP_PORT", 8080),
			DocsPath: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
		Store: StoreConfig{
			FixturesPath: getString(v, "FIXTURES_PATH", ""),
			Latency:      time.Duration(latencyMS) * time.Millisecond,
		},
		Inventory: InventoryConfig{
			ExpiryWindowDays: window,
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
