// Command chartdemo renders a pair of chart axes to a PNG file.
//
// The axes are laid out in two passes: the first measures labels to find
// the space they need, the second computes ticks for the final content
// rectangle. Drawing goes through a recording that is then played back
// onto the selected canvas.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gogpu/chart"
	_ "github.com/gogpu/chart/integration/ggcanvas"
	"github.com/gogpu/chart/recording"
)

var (
	outputPath string
	width      int
	height     int
	xRange     []float64
	yRange     []float64
	limits     []float64
	zoom       float64
	rotation   float64
	locale     string
	title      string
	backend    string
	inverted   bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartdemo",
		Short: "Render chart axes to a PNG file",
		Long: `chartdemo lays out a horizontal and a vertical axis with gridlines,
limit lines and a title, and writes the result as PNG.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "chart.png", "Output PNG file")
	flags.IntVar(&width, "width", 800, "Image width in pixels")
	flags.IntVar(&height, "height", 500, "Image height in pixels")
	flags.Float64SliceVar(&xRange, "x", []float64{0, 100}, "Horizontal data range as min,max")
	flags.Float64SliceVar(&yRange, "y", []float64{-20, 80}, "Vertical data range as min,max")
	flags.Float64SliceVar(&limits, "limit", []float64{60}, "Limit line values on the vertical axis")
	flags.Float64Var(&zoom, "zoom", 1, "Zoom factor applied to both axes")
	flags.Float64Var(&rotation, "rotation", 0, "Horizontal label rotation in degrees")
	flags.StringVar(&locale, "locale", "en", "BCP 47 tag used to format labels")
	flags.StringVar(&title, "title", "", "Chart title, wrapped to the content width")
	flags.StringVar(&backend, "backend", "gg", "Canvas to play the recording back onto")
	flags.BoolVar(&inverted, "inverted", false, "Invert the vertical axis")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log skipped render steps to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// pngWriter is implemented by canvases that can save themselves as PNG.
type pngWriter interface {
	SavePNG(path string) error
}

func run(cmd *cobra.Command, _ []string) error {
	if verbose {
		chart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if len(xRange) != 2 || len(yRange) != 2 {
		return errors.New("ranges need exactly two values: min,max")
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	dst, err := recording.NewCanvas(backend, width, height)
	if err != nil {
		return err
	}
	if c, ok := dst.(interface{ Close() error }); ok {
		defer c.Close()
	}

	d := newDemo(float64(width), float64(height), tag)
	d.layout(dst)

	rec := recording.NewRecorder(width, height, recording.WithMeasurer(dst))
	d.render(rec)
	if err := rec.FinishRecording().Playback(dst); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}

	out, ok := dst.(pngWriter)
	if !ok {
		return fmt.Errorf("canvas %q cannot write PNG", backend)
	}
	if err := out.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Chart saved to %s (%dx%d)\n", outputPath, width, height)
	return nil
}
