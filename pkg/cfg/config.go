package cfg

import (
	"bytes"
	"fmt"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wttech/maxfour/pkg/common"
	"github.com/wttech/maxfour/pkg/common/fmtx"
	"github.com/wttech/maxfour/pkg/common/osx"
	"github.com/wttech/maxfour/pkg/common/pathx"
	"github.com/wttech/maxfour/pkg/common/tplx"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	EnvPrefix   = "MAXFOUR"
	FileDefault = "maxfour.yml"
	FileEnvVar  = "MAXFOUR_CONFIG_FILE"
	InputStdin  = common.STDIn
)

// Config defines a place for managing input configuration from various sources (YML file, env vars, etc)
type Config struct {
	viper  *viper.Viper
	values *ConfigValues
}

func (c *Config) Values() *ConfigValues {
	return c.values
}

// NewConfig creates a new config
func NewConfig() *Config {
	config, err := NewConfigWithError()
	if err != nil {
		log.Fatal(err)
	}
	return config
}

func NewConfigWithError() (*Config, error) {
	result := new(Config)
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	result.viper = v

	if err := result.unmarshal(); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Config) unmarshal() error {
	var values ConfigValues
	if err := c.viper.Unmarshal(&values); err != nil {
		return fmt.Errorf("cannot unmarshal config values properly: %w", err)
	}
	c.values = &values
	return nil
}

// BindFlags lets CLI flags take precedence over file and env values; keys are config paths like 'output.format'
func (c *Config) BindFlags(flags map[string]*pflag.Flag) error {
	for key, flag := range flags {
		if flag == nil {
			continue
		}
		if err := c.viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("cannot bind flag '%s' to config key '%s': %w", flag.Name, key, err)
		}
	}
	return c.unmarshal()
}

func newViper() (*viper.Viper, error) {
	v := viper.New()

	setDefaults(v)
	if err := readFromFile(v); err != nil {
		return nil, err
	}
	readFromEnv(v)

	return v, nil
}

func (c ConfigValues) String() string {
	yml, err := fmtx.MarshalYML(c)
	if err != nil {
		log.Errorf("cannot convert config to YML: %s", err)
	}
	return yml
}

func readFromEnv(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
}

func readFromFile(v *viper.Viper) error {
	file := File()
	exists, err := pathx.ExistsStrict(file)
	if err != nil {
		log.Debugf("skipping reading config file '%s': %s", file, err)
		return nil
	}
	if !exists {
		log.Debugf("skipping reading config file as it does not exist '%s'", file)
		return nil
	}
	content, err := tplx.RenderFile(file, map[string]any{
		"Env": osx.EnvVarsMap(),
	})
	if err != nil {
		return fmt.Errorf("cannot render config file '%s': %w", file, err)
	}
	v.SetConfigType(strings.TrimPrefix(filepath.Ext(file), "."))
	if err = v.ReadConfig(bytes.NewReader(content)); err != nil {
		return fmt.Errorf("cannot load config file properly '%s': %w", file, err)
	}
	return nil
}

func File() string {
	path := os.Getenv(FileEnvVar)
	if path == "" {
		path = FileDefault
	}
	return path
}

func FileEffective() string {
	file := File()
	if !pathx.Exists(file) {
		return ""
	}
	return file
}

func OutputFormats() []string {
	return []string{fmtx.Text, fmtx.Table, fmtx.YML, fmtx.JSON, fmtx.None}
}

func (c *Config) ValidateOutputFormat() error {
	if !lo.Contains(OutputFormats(), c.values.Output.Format) {
		return fmt.Errorf("unsupported output format '%s'; supported ones are: %s", c.values.Output.Format, strings.Join(OutputFormats(), ", "))
	}
	return nil
}

// ConfigureLogger directs log entries to the given writer, typically STDERR
func (c *Config) ConfigureLogger(writer io.Writer) error {
	log.SetOutput(writer)
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: c.values.Log.TimestampFormat,
		FullTimestamp:   c.values.Log.FullTimestamp,
		ForceColors:     !c.values.Output.NoColor,
		DisableColors:   c.values.Output.NoColor,
		DisableQuote:    true,
	})
	level, err := log.ParseLevel(c.values.Log.Level)
	if err != nil {
		return fmt.Errorf("unsupported log level specified: '%s'", c.values.Log.Level)
	}
	log.SetLevel(level)
	return nil
}
