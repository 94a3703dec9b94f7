package app

import (
	"fmt"
	"path/filepath"

	clienthelpers "cosmossdk.io/client/v2/helpers"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	appparams "onchainarcade/app/params"
)

// DefaultNodeHome is the default home directory for `arcaded`.
var DefaultNodeHome string

func init() {
	var err error
	// Align default home dir detection with CLI env vars (e.g. ARCADED_HOME).
	clienthelpers.EnvPrefix = appparams.EnvPrefix
	DefaultNodeHome, err = clienthelpers.GetNodeHomeDirectory("." + appparams.BinaryName)
	if err != nil {
		panic(err)
	}
}

const (
	// ConfigFileName is read from <home>/config when present.
	ConfigFileName = appparams.BinaryName + ".toml"

	dbName = "arcade"
)

type Config struct {
	Home      string `mapstructure:"home"`
	DBBackend string `mapstructure:"db_backend"`
	LogLevel  string `mapstructure:"log_level"`
	LogJSON   bool   `mapstructure:"log_json"`
}

func DefaultConfig() Config {
	return Config{
		Home:      DefaultNodeHome,
		DBBackend: string(dbm.GoLevelDBBackend),
		LogLevel:  zerolog.InfoLevel.String(),
	}
}

// ReadConfig decodes v, falling back to DefaultConfig for unset keys.
func ReadConfig(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch dbm.BackendType(c.DBBackend) {
	case dbm.GoLevelDBBackend:
		if c.Home == "" {
			return fmt.Errorf("home is required for db backend %q", c.DBBackend)
		}
	case dbm.MemDBBackend:
	default:
		return fmt.Errorf("unsupported db backend %q (want %s|%s)", c.DBBackend, dbm.GoLevelDBBackend, dbm.MemDBBackend)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

func (c Config) DataDir() string {
	return filepath.Join(c.Home, "data")
}

func (c Config) ConfigDir() string {
	return filepath.Join(c.Home, "config")
}

// OpenDB opens the backing database described by c.
func (c Config) OpenDB() (dbm.DB, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	db, err := dbm.NewDB(dbName, dbm.BackendType(c.DBBackend), c.DataDir())
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", c.DBBackend, err)
	}
	return db, nil
}
