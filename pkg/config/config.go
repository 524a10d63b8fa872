package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente .env).
type Config struct {
	App     AppConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Catalog CatalogConfig
	UI      UIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
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

// CatalogConfig origen de los datos sembrados y zona horaria del negocio.
type CatalogConfig struct {
	SeedPath string // YAML; si no existe se usa el catálogo incorporado
	Timezone string // IANA, ej. Asia/Jakarta
}

// Location carga la zona horaria configurada.
func (c CatalogConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// UIConfig parámetros de las páginas (alertas y estado de stok).
type UIConfig struct {
	AlertDurationMS    int
	StockStatusProfile string // safety-stock | catalog | compact
}

// AlertDuration duración de las alertas como time.Duration.
func (c UIConfig) AlertDuration() time.Duration {
	return time.Duration(c.AlertDurationMS) * time.Millisecond
}

// Load lee la configuración desde variables de entorno. Un archivo .env en el
// directorio actual se carga antes (sin pisar variables ya definidas).
// Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, SEED_PATH, TIMEZONE, etc.
func Load() (*Config, error) {
	_ = godotenv.Load() // ignoramos error si no existe

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "sitta-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "sitta-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Catalog: CatalogConfig{
			SeedPath: getString(v, "SEED_PATH", "data/catalog.yaml"),
			Timezone: getString(v, "TIMEZONE", "Asia/Jakarta"),
		},
		UI: UIConfig{
			AlertDurationMS:    getInt(v, "ALERT_DURATION_MS", 5000),
			StockStatusProfile: getString(v, "STOCK_STATUS_PROFILE", "safety-stock"),
		},
	}

	if cfg.JWT.Secret == "" && cfg.App.Env == "production" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio en production")
	}
	if cfg.UI.AlertDurationMS <= 0 {
		return nil, fmt.Errorf("config: ALERT_DURATION_MS debe ser positivo")
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
