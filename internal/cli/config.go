package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/flowdoc/pkg/errors"
	"github.com/matzehuels/flowdoc/pkg/fonts"
	"github.com/matzehuels/flowdoc/pkg/pipeline"
)

// Config is the optional flowdoc.toml file.
//
//	output_dir  = "docs/generated"
//	formats     = ["pdf", "svg"]
//	supersample = 2
//
//	[fonts]
//	dirs    = ["/usr/share/fonts/truetype/dejavu"]
//	bold    = "DejaVuSans-Bold.ttf"
//	regular = "DejaVuSans.ttf"
type Config struct {
	OutputDir   string     `toml:"output_dir"`
	Formats     []string   `toml:"formats"`
	Supersample int        `toml:"supersample"`
	Fonts       FontConfig `toml:"fonts"`
}

// FontConfig selects font files. Names are resolved against Dirs and then
// the system font directories.
type FontConfig struct {
	Dirs    []string `toml:"dirs"`
	Bold    string   `toml:"bold"`
	Regular string   `toml:"regular"`
}

// Options converts the config into pipeline options.
func (c Config) Options() pipeline.Options {
	return pipeline.Options{
		OutputDir:   c.OutputDir,
		Formats:     c.Formats,
		Supersample: c.Supersample,
		Fonts: fonts.Options{
			Bold:    c.Fonts.Bold,
			Regular: c.Fonts.Regular,
			Dirs:    c.Fonts.Dirs,
		},
	}
}

// loadConfig reads path, or flowdoc.toml in the working directory when path
// is empty. A missing default file yields a zero Config; a missing explicit
// file is an error. Unknown keys are logged and ignored.
func loadConfig(path string, logger *log.Logger) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("ignoring unknown config keys", "file", path, "keys", strings.Join(keys, ", "))
	}
	logger.Debug("loaded config", "file", path)
	return cfg, nil
}
