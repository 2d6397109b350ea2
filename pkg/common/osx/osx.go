package osx

import (
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/wttech/maxfour/pkg/common/pathx"
	"os"
	"strings"
)

const (
	EnvFileExt = "env"
)

// EnvVarsLoad loads '.env' then '.env.local' from the working directory; already defined variables win
func EnvVarsLoad() {
	files := lo.Filter(EnvFiles(), func(file string, _ int) bool { return pathx.Exists(file) })
	if len(files) == 0 {
		return
	}
	if err := godotenv.Load(files...); err != nil {
		log.Fatalf("cannot load env files '%s': %s", strings.Join(files, ", "), err)
	}
}

func EnvFiles() []string {
	return []string{"." + EnvFileExt, "." + EnvFileExt + ".local"}
}

func EnvVarsMap() map[string]string {
	result := make(map[string]string)
	for _, e := range os.Environ() {
		if i := strings.Index(e, "="); i >= 0 {
			result[e[:i]] = e[i+1:]
		}
	}
	return result
}
