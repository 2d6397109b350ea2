package main

import (
	"github.com/wttech/maxfour/pkg/cfg"
	"github.com/wttech/maxfour/pkg/common/osx"
	"os"
)

func main() {
	osx.EnvVarsLoad()

	cli := NewCLI(cfg.NewConfig())
	os.Exit(cli.Exec())
}
