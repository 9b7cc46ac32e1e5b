package config

const (
	defaultDataDir   = "~/.local/share/chronicle"
	defaultLogDir    = "~/.local/share/chronicle/logs"
	defaultReportDir = "~/.local/share/chronicle/reports"

	defaultMinDurationSeconds  = 30
	defaultMaxDurationSeconds  = 3600
	defaultMinViews            = 100
	defaultMaxFileSizeMB       = 500
	defaultMinResolutionHeight = 240
	defaultDuplicateThreshold  = 0.8

	defaultTargetDurationMinutes = 15
	defaultMinDurationMinutes    = 10
	defaultMaxDurationMinutes    = 20

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			ReportDir: defaultReportDir,
		},
		ContentFilter: ContentFilter{
			MinDurationSeconds:  defaultMinDurationSeconds,
			MaxDurationSeconds:  defaultMaxDurationSeconds,
			MinViews:            defaultMinViews,
			MaxFileSizeMB:       defaultMaxFileSizeMB,
			MinResolutionHeight: defaultMinResolutionHeight,
			DuplicateThreshold:  defaultDuplicateThreshold,
		},
		Compilation: Compilation{
			TargetDurationMinutes: defaultTargetDurationMinutes,
			MinDurationMinutes:    defaultMinDurationMinutes,
			MaxDurationMinutes:    defaultMaxDurationMinutes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
