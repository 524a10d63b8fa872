package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/sitta-api/internal/application/dto"
	"github.com/jhoicas/sitta-api/internal/application/notify"
	appstock "github.com/jhoicas/sitta-api/internal/application/stock"
	"github.com/jhoicas/sitta-api/internal/domain/stock"
	"github.com/jhoicas/sitta-api/internal/infrastructure/memory"
	"github.com/jhoicas/sitta-api/internal/infrastructure/xlsx"
)

func newExportStockCommand(opts *options) *cobra.Command {
	var (
		out      string
		criteria dto.StockCriteriaRequest
	)
	cmd := &cobra.Command{
		Use:   "export-stock",
		Short: "Exporta la tabla de stok a un archivo .xlsx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := stock.ProfileByName(opts.profile)
			if err != nil {
				return err
			}
			c, _, err := opts.load()
			if err != nil {
				return err
			}
			store := memory.NewStore(c)
			vm := appstock.NewViewModel(store.StockItems(), store.Reference(),
				notify.NewBoard(notify.DefaultDuration, nil), profile, zerolog.Nop())
			if _, err := vm.SetCriteria(criteria); err != nil {
				return err
			}
			rows, err := vm.Rows()
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := xlsx.NewStockExporter().Write(f, rows); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d filas exportadas a %s\n", len(rows), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "stok.xlsx", "archivo de salida")
	cmd.Flags().StringVar(&criteria.Query, "q", "", "texto a buscar en judul/kode")
	cmd.Flags().StringVar(&criteria.Category, "category", "", "kategori exacta")
	cmd.Flags().StringVar(&criteria.Region, "region", "", "UPBJJ exacta")
	cmd.Flags().StringVar(&criteria.Sort, "sort", "", "orden: title-asc, price-desc, ...")
	cmd.Flags().StringVar(&opts.profile, "profile", opts.profile, "perfil de estado: safety-stock, catalog, compact")
	return cmd
}
