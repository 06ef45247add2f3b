// Package cli implements the flowdoc command-line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowdoc/pkg/buildinfo"
	"github.com/matzehuels/flowdoc/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and the config file.
	appName = "flowdoc"

	// defaultConfigFile is read from the working directory when present.
	defaultConfigFile = appName + ".toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	flags globalFlags
	cfg   Config
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	output      string
	config      string
	formats     []string
	supersample int
	fontDirs    []string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Without a subcommand it generates both the image and the document.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "flowdoc renders the GestorMapeos integration diagram and its document",
		Long: `flowdoc draws the fixed GestorMapeos → ERP Académico → Expedientes
integration diagram as a PNG and embeds it, together with a description of
the "Primera Matrícula" and "Ampliación" flows, into a DOCX document.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.newRunner().Generate(cmd.Context(), c.options(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "image:%s\n", res.ImagePath)
			fmt.Fprintf(out, "doc:%s\n", res.DocumentPath)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVarP(&c.flags.output, "output", "o", "", "output directory (default \"output\")")
	pf.StringVar(&c.flags.config, "config", "", "config file (default \"flowdoc.toml\" if present)")
	pf.StringSliceVarP(&c.flags.formats, "format", "f", nil, "extra diagram formats: pdf, svg, json (comma-separated; png is always written)")
	pf.IntVar(&c.flags.supersample, "supersample", 0, "render the PNG at N times the size and downsample")
	pf.StringSliceVar(&c.flags.fontDirs, "font-dir", nil, "directories searched for font files")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.imageCommand())
	root.AddCommand(c.docCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(c.flags.config, c.Logger)
	if err != nil {
		return err
	}
	c.cfg = cfg
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// options merges the config file with flags; explicitly set flags win.
func (c *CLI) options(cmd *cobra.Command) pipeline.Options {
	opts := c.cfg.Options()
	flags := cmd.Flags()

	if flags.Changed("output") {
		opts.OutputDir = c.flags.output
	}
	if flags.Changed("format") {
		opts.Formats = c.flags.formats
	}
	if flags.Changed("supersample") {
		opts.Supersample = c.flags.supersample
	}
	if flags.Changed("font-dir") {
		opts.Fonts.Dirs = c.flags.fontDirs
	}
	opts.Logger = c.Logger
	return opts
}
