package cfg

// ConfigValues defines all available configuration options
type ConfigValues struct {
	Log struct {
		Level           string `mapstructure:"level" yaml:"level" json:"level"`
		TimestampFormat string `mapstructure:"timestamp_format" yaml:"timestamp_format" json:"timestampFormat"`
		FullTimestamp   bool   `mapstructure:"full_timestamp" yaml:"full_timestamp" json:"fullTimestamp"`
	} `mapstructure:"log" yaml:"log" json:"log"`

	Output struct {
		Format  string `mapstructure:"format" yaml:"format" json:"format"`
		NoColor bool   `mapstructure:"no_color" yaml:"no_color" json:"noColor"`
	} `mapstructure:"output" yaml:"output" json:"output"`
}

func (c ConfigValues) MarshalTable() [][]any {
	return [][]any{
		{"log.level", c.Log.Level},
		{"log.timestamp_format", c.Log.TimestampFormat},
		{"log.full_timestamp", c.Log.FullTimestamp},
		{"output.format", c.Output.Format},
		{"output.no_color", c.Output.NoColor},
	}
}
