package params

const (
	// AppName is the human-readable name reported by the host.
	AppName = "OnChainArcade"

	// BinaryName is the name of the CLI binary.
	BinaryName = "arcaded"

	// Bech32Prefix is the Bech32 prefix for account addresses.
	Bech32Prefix = "arcade"

	// BaseDenom is the default arcade denomination (the smallest unit).
	BaseDenom = "uarc"

	// EnvPrefix is the environment variable prefix used by the CLI/config system.
	// Example: ARCADED_HOME, ARCADED_LOG_LEVEL, etc.
	EnvPrefix = "ARCADED"
)
