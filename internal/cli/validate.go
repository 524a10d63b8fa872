package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sitta-api/internal/infrastructure/seed"
)

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Valida un archivo YAML del catálogo",
		Long: `Decodifica el archivo (campos desconocidos son error) y verifica
formato y unicidad de códigos de stok, formato de nomor DO y que cada
paket referencie stok existente.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.location()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			c, err := seed.Decode(f, loc)
			if err != nil {
				return err
			}
			if err := seed.Check(c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d stok, %d paket, %d DO, %d usuarios\n",
				len(c.Stock), len(c.Packages), len(c.Tracking), len(c.Users))
			return nil
		},
	}
}
