package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flowdoc/pkg/diagram"
	"github.com/matzehuels/flowdoc/pkg/fonts"
	"github.com/matzehuels/flowdoc/pkg/pipeline"
)

// generateCommand renders the diagram and assembles the document.
func (c *CLI) generateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the diagram image and the document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			res, err := c.newRunner().Generate(ctx, c.options(cmd))
			if err != nil {
				return err
			}
			prog.done("Generated diagram and document")

			out := cmd.OutOrStdout()
			printSuccess(out, "Generated %d files", len(res.Artifacts)+1)
			for _, path := range sortedArtifacts(res.Artifacts) {
				printFile(out, path)
			}
			printFile(out, res.DocumentPath)
			printDetail(out, "fonts: %s", res.FontSource)
			if res.FontSource == fonts.SourceBasic {
				printWarning(out, "no TrueType font found; labels use a bitmap font with approximate metrics")
			}
			return nil
		},
	}
}

// imageCommand renders the diagram only.
func (c *CLI) imageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "image",
		Short: "Generate only the diagram image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			path, err := c.newRunner().GenerateImage(ctx, c.options(cmd))
			if err != nil {
				return err
			}
			prog.done("Rendered diagram")

			out := cmd.OutOrStdout()
			printSuccess(out, "Generated diagram")
			printFile(out, path)
			return nil
		},
	}
}

// docCommand assembles the document only.
func (c *CLI) docCommand() *cobra.Command {
	var image string

	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Generate only the document",
		Long: `Generate only the document.

Without --image the diagram in the output directory is embedded; it is
rendered first when it does not exist yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			opts := c.options(cmd)
			opts.ImagePath = image
			path, err := c.newRunner().GenerateDocument(ctx, opts)
			if err != nil {
				return err
			}
			prog.done("Assembled document")

			out := cmd.OutOrStdout()
			printSuccess(out, "Generated document")
			printFile(out, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "embed this image instead of the rendered diagram")
	return cmd
}

// layoutCommand prints the resolved diagram geometry as JSON.
func (c *CLI) layoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the resolved diagram geometry as JSON",
		Long: `Print the resolved diagram geometry as JSON.

The output lists every box with its centered label lines, every arrow with
its arrowhead triangle and label origin, and the legend, measured with the
fonts the renderer would use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(cmd)
			fo := opts.Fonts
			fo.Logger = loggerFromContext(cmd.Context())

			data, err := diagram.MarshalLayout(diagram.Export(diagram.Default(), fonts.Load(fo)))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

// sortedArtifacts returns artifact paths with the PNG first and the rest in
// format order.
func sortedArtifacts(artifacts map[string]string) []string {
	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		if f != pipeline.FormatPNG {
			formats = append(formats, f)
		}
	}
	sort.Strings(formats)

	var paths []string
	if p, ok := artifacts[pipeline.FormatPNG]; ok {
		paths = append(paths, p)
	}
	for _, f := range formats {
		paths = append(paths, artifacts[f])
	}
	return paths
}
