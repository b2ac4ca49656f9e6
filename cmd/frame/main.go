package main

import (
	"fmt"
	"os"
	"runtime"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/framekit/frame/pkg/frame"
	"github.com/framekit/frame/pkg/logger"
	"github.com/framekit/frame/pkg/render"
)

var version = "0.1.0"

func main() {
	var logLevel string

	root := &cobra.Command{
		Use:   "frame",
		Short: "frame - columnar DataFrame toolkit",
		Long: `frame is an in-memory columnar DataFrame library with a typed
selection algebra, element-wise string operations, and Arrow interchange.
This tool walks through the library's surface on a sample table.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{
				Level:    logLevel,
				Encoding: "console",
			})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("frame v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	var asJSON bool
	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the shape and column kinds of the sample table",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := sampleFrame()
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(df)
			}
			rows, cols := df.Shape()
			fmt.Printf("shape: %d rows x %d columns\n\n", rows, cols)
			fmt.Println(render.Text(df.Dtypes()))
			return nil
		},
	}
	describeCmd.Flags().BoolVar(&asJSON, "json", false, "emit shape and dtypes as JSON")
	root.AddCommand(describeCmd)

	root.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Walk each selector shape over the sample table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	})

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

// sampleFrame builds the table the demo and describe commands operate on
func sampleFrame() (*frame.DataFrame, error) {
	return frame.New(
		frame.Strings("city", "oslo", "lima", "accra", "quito", "perth"),
		frame.Ints("population", 717710, 10719000, 2514000, 2011000, 2141834),
		frame.Floats("area_km2", 454.12, 2672.3, 173.0, 372.4, 6417.9),
		frame.Bools("coastal", true, true, true, false, true),
	)
}

func runDemo() error {
	log := logger.WithOperation("demo")

	df, err := sampleFrame()
	if err != nil {
		return err
	}
	rows, cols := df.Shape()
	log.Info("built sample frame", zap.Int("rows", rows), zap.Int("columns", cols))

	steps := []struct {
		title string
		sel   frame.Selector
	}{
		{"single column", frame.Col("city")},
		{"column list", frame.Cols("city", "population")},
		{"rows 1-2 of the last column", frame.At(frame.Rows(1, 2), frame.ColAt(-1))},
		{"label range city:area_km2 (stop inclusive)", frame.At(frame.AllRows(), frame.NameRange("city", "area_km2"))},
		{"index range 0:2 (stop exclusive)", frame.At(frame.AllRows(), frame.IndexRange(0, 2))},
	}

	for _, step := range steps {
		out, err := df.Select(step.sel)
		if err != nil {
			return err
		}
		fmt.Printf("-- %s --\n%s\n", step.title, render.Text(out))
	}

	mask, err := df.Str().StartsWith("city", "p")
	if err != nil {
		return err
	}
	filtered, err := df.Select(frame.Mask(mask))
	if err != nil {
		return err
	}
	fmt.Printf("-- cities starting with 'p' --\n%s\n", render.Text(filtered))

	stats, err := df.Mean()
	if err != nil {
		return err
	}
	fmt.Printf("-- column means --\n%s\n", render.Text(stats))

	log.Info("demo complete")
	return logger.Sync()
}

// printJSON emits shape and per-column kinds in machine-readable form
func printJSON(df *frame.DataFrame) error {
	rows, cols := df.Shape()
	kinds := make(map[string]string, cols)
	dtypes := df.Dtypes()
	for i := 0; i < cols; i++ {
		name, err := dtypes.Cell(i, "Column Name")
		if err != nil {
			return err
		}
		kind, err := dtypes.Cell(i, "Data Type")
		if err != nil {
			return err
		}
		kinds[name.(string)] = kind.(string)
	}

	out, err := json.MarshalIndent(struct {
		Rows    int               `json:"rows"`
		Columns int               `json:"columns"`
		Dtypes  map[string]string `json:"dtypes"`
	}{Rows: rows, Columns: cols, Dtypes: kinds}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
