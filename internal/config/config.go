package config

// UI modes accepted by the ui setting.
const (
	UIAuto  = "auto"
	UILive  = "live"
	UIPlain = "plain"
)

// Replay policies accepted by the replay setting.
const (
	ReplayAsk   = "ask"
	ReplayNever = "never"
)

// Config holds settings loaded from .kviz/config.yml and KVIZ_* environment variables.
type Config struct {
	Version int    `mapstructure:"version"`  // config schema version
	Env     string `mapstructure:"env"`      // local, dev or production; selects the log encoder
	Bank    string `mapstructure:"bank"`     // question bank path, relative to the project root
	UI      string `mapstructure:"ui"`       // auto, live or plain
	NoColor bool   `mapstructure:"no_color"` // disable ANSI styling
	Replay  string `mapstructure:"replay"`   // ask or never
	Seed    uint64 `mapstructure:"seed"`     // fixed shuffle seed; 0 draws a random one
	LogFile string `mapstructure:"log_file"` // write logs to this file

	// Path is the config file the values were read from, if any.
	Path string `mapstructure:"-"`
}

// Root returns the directory relative paths in the config resolve against.
func (c Config) Root() string {
	if c.Path == "" {
		return "."
	}
	return RootFromConfigPath(c.Path)
}
