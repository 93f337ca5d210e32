package domain

// Config represents the workspace configuration loaded from hope.yaml.
type Config struct {
	Defaults DefaultsConfig
	History  HistoryConfig
	Paths    PathsConfig
}

type DefaultsConfig struct {
	Units    UnitSystem
	Calendar string
}

type HistoryConfig struct {
	Enabled bool
	Index   bool
}

type PathsConfig struct {
	HistoryDir   string
	RemindersDir string
	VitalsFile   string
}

// DefaultConfig provides sane defaults if hope.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Units:    Metric,
			Calendar: "default",
		},
		History: HistoryConfig{
			Enabled: true,
			Index:   true,
		},
		Paths: PathsConfig{
			HistoryDir:   "history",
			RemindersDir: "reminders",
			VitalsFile:   "vitals.yaml",
		},
	}
}
