package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// QueryCmd prints the JSON answer for a read path.
func QueryCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "query <path>",
		Short: "Query committed state",
		Long: `Query committed state. Paths:

  /arcade /admins /scores /game_counter /price /prize_pool /total_distributed
  /balance/<address>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, v)
			if err != nil {
				return err
			}
			defer a.Close()

			bz, err := a.Query(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var out bytes.Buffer
			if err := json.Indent(&out, bz, "", "  "); err != nil {
				return fmt.Errorf("format response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return nil
		},
	}
}
