package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/wttech/maxfour/pkg/common"
	"runtime"
	"runtime/debug"
)

// set by the linker on release builds
var (
	appVersion    = ""
	appCommit     = ""
	appCommitDate = ""
)

const unknown = "<unknown>"

type AppInfo struct {
	Version    string `yaml:"version" json:"version"`
	Commit     string `yaml:"commit" json:"commit"`
	CommitDate string `yaml:"commit_date" json:"commitDate"`
	GoVersion  string `yaml:"go_version" json:"goVersion"`
}

// NewAppInfo prefers linker values and falls back to the VCS stamp of 'go build'
func NewAppInfo() AppInfo {
	result := AppInfo{
		Version:    appVersion,
		Commit:     appCommit,
		CommitDate: appCommitDate,
		GoVersion:  runtime.Version(),
	}
	if build, ok := debug.ReadBuildInfo(); ok {
		if result.Version == "" && build.Main.Version != "(devel)" {
			result.Version = build.Main.Version
		}
		for _, setting := range build.Settings {
			switch setting.Key {
			case "vcs.revision":
				if result.Commit == "" {
					result.Commit = setting.Value
				}
			case "vcs.time":
				if result.CommitDate == "" {
					result.CommitDate = setting.Value
				}
			}
		}
	}
	result.Version = orUnknown(result.Version)
	result.Commit = orUnknown(result.Commit)
	result.CommitDate = orUnknown(result.CommitDate)
	return result
}

func orUnknown(value string) string {
	if value == "" {
		return unknown
	}
	return value
}

func (a AppInfo) MarshalText() string {
	return fmt.Sprintf("%s %s (commit %s on %s)", common.AppName, a.Version, a.Commit, a.CommitDate)
}

func (a AppInfo) MarshalTable() [][]any {
	return [][]any{
		{"version", a.Version},
		{"commit", a.Commit},
		{"commit date", a.CommitDate},
		{"go version", a.GoVersion},
	}
}

func (c *CLI) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print application version and build details",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c.SetResult("app", NewAppInfo())
			c.Ok("application details printed")
		},
	}
}
