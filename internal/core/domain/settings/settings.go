/*
Package settings defines the user-tunable configuration of the shell.
*/
package settings

// Settings is the root of the configuration file.
type Settings struct {
	Log      Log      `yaml:"log"`
	Executor Executor `yaml:"executor"`
}

// Log configures the structured log. An empty File disables logging.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Executor configures request execution.
type Executor struct {
	QueueSize      int   `yaml:"queue_size"`
	ShowDelimiters *bool `yaml:"show_delimiters"`
}

const (
	DefaultLogLevel  = "info"
	DefaultQueueSize = 1
)

// Default returns the settings used when no configuration file exists.
func Default() Settings {
	show := true
	return Settings{
		Log:      Log{Level: DefaultLogLevel},
		Executor: Executor{QueueSize: DefaultQueueSize, ShowDelimiters: &show},
	}
}

// WithDefaults fills unset fields of s from Default.
func (s Settings) WithDefaults() Settings {
	def := Default()
	if s.Log.Level == "" {
		s.Log.Level = def.Log.Level
	}
	if s.Executor.QueueSize < 1 {
		s.Executor.QueueSize = def.Executor.QueueSize
	}
	if s.Executor.ShowDelimiters == nil {
		s.Executor.ShowDelimiters = def.Executor.ShowDelimiters
	}
	return s
}

// DelimitersEnabled reports whether external command output is fenced.
func (e Executor) DelimitersEnabled() bool {
	return e.ShowDelimiters == nil || *e.ShowDelimiters
}
