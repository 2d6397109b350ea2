package main

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wttech/maxfour/pkg/cfg"
	"github.com/wttech/maxfour/pkg/common/fmtx"
	"github.com/wttech/maxfour/pkg/common/timex"
	"github.com/wttech/maxfour/pkg/quad"
	"io"
	"os"
	"strings"
	"time"
)

type CLI struct {
	config *cfg.Config

	cmd   *cobra.Command
	error error

	started time.Time
	ended   time.Time

	outputFormat   string
	outputResult   string
	outputResponse *OutputResponse
}

func NewCLI(config *cfg.Config) *CLI {
	result := new(CLI)

	result.config = config

	result.outputFormat = fmtx.Text
	result.outputResponse = outputResponseDefault()
	result.cmd = result.rootCmd()

	return result
}

// OutputResponse defines a structure of data to be printed
type OutputResponse struct {
	Msg     string         `yaml:"msg" json:"msg"`
	Failed  bool           `yaml:"failed" json:"failed"`
	Data    map[string]any `yaml:"data" json:"data"`
	Ended   time.Time      `yaml:"ended" json:"ended"`
	Elapsed time.Duration  `yaml:"elapsed" json:"elapsed"`
}

func outputResponseDefault() *OutputResponse {
	return &OutputResponse{
		Msg:    "",
		Failed: false,
		Data:   map[string]any{},
	}
}

// Exec runs the command tree and returns the process exit code
func (c *CLI) Exec() int {
	c.error = c.cmd.Execute()
	if c.error != nil {
		log.Error(c.error)
		return 1
	}
	if c.outputResponse.Failed {
		return 1
	}
	return 0
}

func (c *CLI) configure() error {
	flags := c.cmd.PersistentFlags()
	if err := c.config.BindFlags(map[string]*pflag.Flag{
		"output.format":   flags.Lookup("output-format"),
		"output.no_color": flags.Lookup("no-color"),
		"log.level":       flags.Lookup("log-level"),
	}); err != nil {
		return err
	}
	if err := c.config.ConfigureLogger(c.cmd.ErrOrStderr()); err != nil {
		return err
	}
	if err := c.config.ValidateOutputFormat(); err != nil {
		return err
	}
	c.outputFormat = c.config.Values().Output.Format
	c.started = time.Now()
	return nil
}

func (c *CLI) elapsed() time.Duration {
	return c.ended.Sub(c.started)
}

// exit prints the captured output in the configured format
func (c *CLI) exit() error {
	c.ended = time.Now()
	c.outputResponse.Ended = c.ended
	c.outputResponse.Elapsed = c.elapsed()

	if c.outputResponse.Failed {
		log.Error(c.outputResponse.Msg)
	} else {
		log.Debug(c.outputResponse.Msg)
	}

	out := c.cmd.OutOrStdout()
	switch c.outputFormat {
	case fmtx.None:
		return nil
	case fmtx.Text:
		return c.printOutputText(out)
	case fmtx.Table:
		return c.printOutputTable(out)
	default:
		return c.printOutputMarshaled(out)
	}
}

func (c *CLI) printOutputText(out io.Writer) error {
	if c.outputResponse.Failed || c.outputResult == "" {
		return nil
	}
	value, ok := c.outputResponse.Data[c.outputResult]
	if !ok {
		return nil
	}
	_, err := fmt.Fprintln(out, strings.TrimSuffix(fmtx.MarshalText(value), "\n"))
	return err
}

func (c *CLI) printOutputTable(out io.Writer) error {
	if !c.outputResponse.Failed && c.outputResult != "" {
		rows := fmtx.MarshalTable(c.outputResult, c.outputResponse.Data[c.outputResult])
		if _, err := fmt.Fprint(out, fmtx.TblRows("command output", []string{"name", "value"}, rows)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(out, fmtx.TblList("command result", [][]any{
		{"message", c.outputResponse.Msg},
		{"failed", c.outputResponse.Failed},
		{"elapsed", timex.HumanDuration(c.outputResponse.Elapsed)},
		{"ended", timex.Human(c.outputResponse.Ended)},
	}))
	return err
}

func (c *CLI) printOutputMarshaled(out io.Writer) error {
	var (
		text string
		err  error
	)
	switch c.outputFormat {
	case fmtx.JSON:
		text, err = fmtx.MarshalJSON(c.outputResponse)
	case fmtx.YML:
		text, err = fmtx.MarshalYML(c.outputResponse)
	default:
		err = fmt.Errorf("unsupported output format '%s'", c.outputFormat)
	}
	if err != nil {
		return fmt.Errorf("cannot serialize CLI output: %w", err)
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func (c *CLI) Ok(message string) {
	c.outputResponse.Failed = false
	c.outputResponse.Msg = message
}

func (c *CLI) Fail(msg string) {
	c.outputResponse.Failed = true
	c.outputResponse.Msg = msg
}

func (c *CLI) Error(err error) {
	c.Fail(fmt.Sprintf("%s", err))
}

// ReadInput reads values from the input string if given, otherwise from the input file or STDIN.
// The source is taken from flags only, never from config files or env vars.
func (c *CLI) ReadInput() (quad.Quad, error) {
	flags := c.cmd.PersistentFlags()
	str, err := flags.GetString("input-string")
	if err != nil {
		return quad.Quad{}, err
	}
	file, err := flags.GetString("input-file")
	if err != nil {
		return quad.Quad{}, err
	}

	if len(str) > 0 {
		result, err := quad.ReadString(str)
		if err != nil {
			return result, fmt.Errorf("cannot parse string input properly: %w", err)
		}
		return result, nil
	} else if file == "" || file == cfg.InputStdin {
		result, err := quad.Read(c.cmd.InOrStdin())
		if err != nil {
			return result, fmt.Errorf("cannot parse STDIN input properly: %w", err)
		}
		return result, nil
	}
	fileDesc, err := os.Open(file)
	if err != nil {
		return quad.Quad{}, fmt.Errorf("cannot open input file '%s': %w", file, err)
	}
	defer fileDesc.Close()
	result, err := quad.Read(fileDesc)
	if err != nil {
		return result, fmt.Errorf("cannot parse input file '%s' properly: %w", file, err)
	}
	return result, nil
}

func (c *CLI) SetOutput(name string, data any) {
	c.outputResponse.Data[name] = data
}

// SetResult sets output data which is also the only thing printed in text format
func (c *CLI) SetResult(name string, data any) {
	c.SetOutput(name, data)
	c.outputResult = name
}
