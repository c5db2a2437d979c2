package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/chartjs-go/pkg/chartjs"
	"github.com/ukaji3/chartjs-go/pkg/chartjs/models"
	"github.com/ukaji3/chartjs-go/pkg/chartjs/output"
)

// outputOptions holds the flags shared by commands that emit configurations.
type outputOptions struct {
	outputPath string
	pretty     bool
	format     string
	selectPath string
}

func (o *outputOptions) flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("output", pflag.ContinueOnError)
	fs.StringVarP(&o.outputPath, "output", "o", "", "Output file path (default: stdout)")
	fs.BoolVar(&o.pretty, "pretty", false, "Pretty-print JSON output")
	fs.StringVar(&o.format, "format", "json", "Output format: json, yaml")
	fs.StringVar(&o.selectPath, "select", "", "JSONPath expression selecting part of the output")
	return fs
}

// encode serializes v, applying the --select expression when set.
func (o *outputOptions) encode(v any) ([]byte, error) {
	format, err := output.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}

	if o.selectPath != "" {
		data, err := output.ToJSON(v, false)
		if err != nil {
			return nil, fmt.Errorf("serialization failed: %w", err)
		}
		if v, err = output.Select(data, o.selectPath); err != nil {
			return nil, err
		}
	}

	data, err := output.Encode(v, format, o.pretty)
	if err != nil {
		return nil, fmt.Errorf("serialization failed: %w", err)
	}
	return data, nil
}

// write emits data to --output, or to w when no output file is set.
func (o *outputOptions) write(w io.Writer, data []byte) error {
	if o.outputPath != "" {
		if err := os.WriteFile(o.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(w, string(data))
	return err
}

func newRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "chartjs",
		Short: "Convert Excel charts to Chart.js configurations",
		Long: `chartjs-go reads the charts of Excel workbooks and emits typed
Chart.js configurations as JSON or YAML.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	logger := func(cmd *cobra.Command) *slog.Logger {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	}

	rootCmd.AddCommand(newConvertCmd(logger), newFmtCmd())
	return rootCmd
}

func newConvertCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var (
		out       outputOptions
		mode      string
		tables    bool
		sheetsDir string
	)

	cmd := &cobra.Command{
		Use:   "convert [input.xlsx]",
		Short: "Convert the charts of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			convertMode, ok := chartjs.ParseMode(mode)
			if !ok {
				return fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", mode)
			}

			opts := chartjs.Options{
				Mode:   convertMode,
				Logger: logger(cmd),
			}
			if cmd.Flags().Changed("tables") {
				opts.IncludeTables = &tables
			}

			wb, err := chartjs.Convert(args[0], opts)
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}

			if sheetsDir != "" {
				if err := writeSheetFiles(wb, sheetsDir, &out); err != nil {
					return fmt.Errorf("failed to write sheet files: %w", err)
				}
				if out.outputPath == "" {
					return nil
				}
			}

			data, err := out.encode(wb)
			if err != nil {
				return err
			}
			return out.write(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().AddFlagSet(out.flags())
	cmd.Flags().StringVar(&mode, "mode", "standard", "Conversion mode: light, standard, verbose")
	cmd.Flags().BoolVar(&tables, "tables", false, "Chart detected tables on sheets without charts")
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")

	return cmd
}

func newFmtCmd() *cobra.Command {
	var (
		out         outputOptions
		inputFormat string
	)

	cmd := &cobra.Command{
		Use:   "fmt [config.json|config.yaml]",
		Short: "Normalize a Chart.js configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			format := output.DetectFormat(args[0])
			if inputFormat != "" {
				if format, err = output.ParseFormat(inputFormat); err != nil {
					return err
				}
			}

			var chart models.Chart[[]models.XYDataset, models.AnyAnnotation]
			if err := output.Decode(data, format, &chart); err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			encoded, err := out.encode(chart)
			if err != nil {
				return err
			}
			return out.write(cmd.OutOrStdout(), encoded)
		},
	}

	cmd.Flags().AddFlagSet(out.flags())
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "Input format: json, yaml (default: from extension)")

	return cmd
}

func writeSheetFiles(wb *chartjs.Workbook, dir string, out *outputOptions) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	ext := ".json"
	if f, err := output.ParseFormat(out.format); err == nil && f == output.FormatYAML {
		ext = ".yaml"
	}

	for sheetName, configs := range wb.Sheets {
		data, err := out.encode(configs)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+ext)
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	}

	return nil
}
