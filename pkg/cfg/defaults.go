package cfg

import (
	"github.com/spf13/viper"
	"github.com/wttech/maxfour/pkg/common/fmtx"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.timestamp_format", "2006-01-02 15:04:05")
	v.SetDefault("log.full_timestamp", true)

	v.SetDefault("output.format", fmtx.Text)
	v.SetDefault("output.no_color", false)
}
