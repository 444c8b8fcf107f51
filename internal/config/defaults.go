package config

import "time"

// Default values for every setting.
const (
	DefaultWidth         = 14.0
	DefaultHeightPerPlot = 2.5
	DefaultDPI           = 100.0
	DefaultFormat        = "html"
	DefaultDisplay       = DisplayFile
	DefaultWait          = true
	DefaultOutputDir     = "charts"
	DefaultListen        = "localhost:8089"
	DefaultRefresh       = 2 * time.Second
	DefaultInterval      = time.Duration(0)
	DefaultLogLevel      = "info"
)

func setDefaults(setDefault func(key string, value any)) {
	setDefault("width", DefaultWidth)
	setDefault("height_per_plot", DefaultHeightPerPlot)
	setDefault("dpi", DefaultDPI)
	setDefault("format", DefaultFormat)
	setDefault("display", DefaultDisplay)
	setDefault("wait", DefaultWait)
	setDefault("output_dir", DefaultOutputDir)
	setDefault("output", "")
	setDefault("listen", DefaultListen)
	setDefault("refresh", DefaultRefresh)
	setDefault("interval", DefaultInterval)
	setDefault("log_level", DefaultLogLevel)
}
