package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"onchainarcade/app"
	appparams "onchainarcade/app/params"
)

const (
	flagHome      = "home"
	flagDBBackend = "db-backend"
	flagLogLevel  = "log-level"
	flagLogJSON   = "log-json"
)

var sdkConfigOnce sync.Once

func initSDKConfig() {
	sdkConfigOnce.Do(func() {
		cfg := sdk.GetConfig()
		cfg.SetBech32PrefixForAccount(appparams.Bech32Prefix, appparams.Bech32Prefix+"pub")
		cfg.SetBech32PrefixForValidator(appparams.Bech32Prefix+"valoper", appparams.Bech32Prefix+"valoperpub")
		cfg.SetBech32PrefixForConsensusNode(appparams.Bech32Prefix+"valcons", appparams.Bech32Prefix+"valconspub")
		cfg.Seal()
	})
}

// NewRootCmd creates a new root command for arcaded. It is called once in main.
func NewRootCmd() *cobra.Command {
	initSDKConfig()

	v := viper.New()
	rootCmd := &cobra.Command{
		Use:           appparams.BinaryName,
		Short:         "OnChainArcade command runner",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// set the default command outputs
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())
			return bindConfig(cmd, v)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String(flagHome, app.DefaultNodeHome, "directory for config and data")
	pf.String(flagDBBackend, app.DefaultConfig().DBBackend, "database backend (goleveldb|memdb)")
	pf.String(flagLogLevel, app.DefaultConfig().LogLevel, "log level (trace|debug|info|warn|error)")
	pf.Bool(flagLogJSON, false, "emit logs as JSON")

	rootCmd.AddCommand(
		InitCmd(v),
		ExecCmd(v),
		QueryCmd(v),
	)
	return rootCmd
}

// bindConfig layers flags over ARCADED_* env vars over <home>/config/arcaded.toml.
func bindConfig(cmd *cobra.Command, v *viper.Viper) error {
	v.SetEnvPrefix(appparams.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"home":       flagHome,
		"db_backend": flagDBBackend,
		"log_level":  flagLogLevel,
		"log_json":   flagLogJSON,
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}

	path := filepath.Join(v.GetString("home"), "config", app.ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat config: %w", err)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func newLogger(cmd *cobra.Command, cfg app.Config) (log.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := []log.Option{log.LevelOption(level)}
	if cfg.LogJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(cmd.ErrOrStderr(), opts...), nil
}

// loadApp reads the layered config and opens the app. Callers close it.
func loadApp(cmd *cobra.Command, v *viper.Viper) (*app.ArcadeApp, error) {
	cfg, err := app.ReadConfig(v)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("opening app", "home", cfg.Home, "db_backend", cfg.DBBackend)
	return app.New(cfg, logger)
}
