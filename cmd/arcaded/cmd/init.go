package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"onchainarcade/app"
)

// InitCmd writes <home>/config/arcaded.toml with the effective settings.
func InitCmd(v *viper.Viper) *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file under --home",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.ReadConfig(v)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.ConfigDir(), 0o755); err != nil {
				return fmt.Errorf("mkdir config: %w", err)
			}
			path := filepath.Join(cfg.ConfigDir(), app.ConfigFileName)
			if _, err := os.Stat(path); err == nil && !overwrite {
				return fmt.Errorf("%s already exists (use --overwrite)", path)
			}

			out := viper.New()
			out.Set("db_backend", cfg.DBBackend)
			out.Set("log_level", cfg.LogLevel)
			out.Set("log_json", cfg.LogJSON)
			if err := out.WriteConfigAs(path); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing config file")
	return cmd
}
