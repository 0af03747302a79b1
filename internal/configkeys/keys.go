package configkeys

const (
	delimiter = "."

	// EnvPrefix namespaces environment overrides, e.g. OVERLOADTAB_OUTPUT_FORMAT.
	EnvPrefix = "OVERLOADTAB"

	ConfigOutputPrefix = "output"
	ConfigOutputFormat = ConfigOutputPrefix + delimiter + "format"

	ConfigLogPrefix = "log"
	ConfigLogLevel  = ConfigLogPrefix + delimiter + "level"

	ConfigCheckPrefix      = "check"
	ConfigCheckFingerprint = ConfigCheckPrefix + delimiter + "fingerprint"
	ConfigCheckDeclFiles   = ConfigCheckPrefix + delimiter + "decl_files"
)
