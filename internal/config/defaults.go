package config

const (
	defaultLogDir             = "~/.local/share/specsort/logs"
	defaultReferencePrefix    = "t"
	defaultReferenceDir       = "tol"
	defaultSampleExtension    = ".txt"
	defaultReferenceExtension = ".tol"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultMinFreeSpaceMiB    = 64
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Organize: Organize{
			BinaryExtensions:   []string{".spe"},
			Exclude:            []string{"exp.dat", "samples.dat", "toluene.dat"},
			ReferencePrefix:    defaultReferencePrefix,
			ReferenceDir:       defaultReferenceDir,
			SampleExtension:    defaultSampleExtension,
			ReferenceExtension: defaultReferenceExtension,
			OverwriteExisting:  false,
			MinFreeSpaceMiB:    defaultMinFreeSpaceMiB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
