// Package cli implementa la herramienta de línea de comandos del catálogo:
// validar el YAML sembrado, calcular el siguiente nomor DO y exportar la tabla de stok.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/infrastructure/seed"
	"github.com/jhoicas/sitta-api/pkg/config"
)

// options valores compartidos por los subcomandos (flags persistentes con defaults de config).
type options struct {
	seedPath string
	timezone string
	profile  string
}

// NewRootCommand construye el árbol de comandos. Los defaults salen de pkg/config.
func NewRootCommand() *cobra.Command {
	opts := &options{seedPath: "data/catalog.yaml", timezone: "Asia/Jakarta", profile: "safety-stock"}
	if cfg, err := config.Load(); err == nil {
		opts.seedPath = cfg.Catalog.SeedPath
		opts.timezone = cfg.Catalog.Timezone
		opts.profile = cfg.UI.StockStatusProfile
	}

	root := &cobra.Command{
		Use:   "catalog",
		Short: "Herramienta del catálogo SITTA",
		Long: `Herramientas sobre el catálogo sembrado de SITTA (stok bahan ajar,
paket y Delivery Orders): validación del YAML, siguiente nomor DO y
exportación de la tabla de stok a Excel.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.seedPath, "seed", opts.seedPath, "archivo YAML del catálogo")
	root.PersistentFlags().StringVar(&opts.timezone, "tz", opts.timezone, "zona horaria IANA")

	root.AddCommand(newValidateCommand(opts), newNextDOCommand(opts), newExportStockCommand(opts))
	return root
}

// Execute corre el comando raíz.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (o *options) location() (*time.Location, error) {
	return config.CatalogConfig{Timezone: o.timezone}.Location()
}

// load carga el catálogo de --seed (o el incorporado si no existe).
func (o *options) load() (*entity.Catalog, seed.Source, error) {
	loc, err := o.location()
	if err != nil {
		return nil, "", err
	}
	return seed.Load(o.seedPath, loc)
}
