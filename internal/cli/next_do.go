package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sitta-api/internal/domain/tracking"
)

func newNextDOCommand(opts *options) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "next-do",
		Short: "Imprime el siguiente nomor DO",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := opts.load()
			if err != nil {
				return err
			}
			if year == 0 {
				loc, err := opts.location()
				if err != nil {
					return err
				}
				year = time.Now().In(loc).Year()
			}
			keys := make([]string, 0, len(c.Tracking))
			for k := range c.Tracking {
				keys = append(keys, k)
			}
			next, err := tracking.NextOrderNumber(keys, year)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "año del nomor DO (0 = año actual en --tz)")
	return cmd
}
