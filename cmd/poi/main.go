// Package main provides the poi command: it writes the sample workbooks and
// dumps xlsx files as JSON.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/renameio/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi"
	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/demo"
	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/output"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type cli struct {
	log     *logrus.Logger
	verbose bool

	outDir string
	format string
	only   []string

	outputPath string
	pretty     bool
	sheetsDir  string
}

func newRootCmd() *cobra.Command {
	c := &cli{log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "poi",
		Short: "Write and inspect xls and xlsx workbooks",
		Long: `poi writes spreadsheets from an in-memory document model as .xls
(BIFF8) or .xlsx files, and dumps .xlsx files as JSON.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.log.SetOutput(cmd.ErrOrStderr())
			if c.verbose {
				c.log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log debug output")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Write the sample workbooks",
		Args:  cobra.NoArgs,
		RunE:  c.runDemo,
	}
	demoCmd.Flags().StringVarP(&c.outDir, "out", "d", ".", "Output directory")
	demoCmd.Flags().StringVarP(&c.format, "format", "f", "", "Output format: xls or xlsx (default: per demo)")
	demoCmd.Flags().StringSliceVar(&c.only, "only", nil, "Write only the named demos")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the sample workbooks",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, d := range demo.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", d.Name, d.File)
			}
		},
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Dump an xlsx workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runInspect,
	}
	inspectCmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Output file path (default: stdout)")
	inspectCmd.Flags().BoolVar(&c.pretty, "pretty", false, "Pretty-print JSON output")
	inspectCmd.Flags().StringVar(&c.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")

	rootCmd.AddCommand(demoCmd, listCmd, inspectCmd)
	return rootCmd
}

func (c *cli) runDemo(cmd *cobra.Command, args []string) error {
	demos := demo.All()
	if len(c.only) > 0 {
		demos = demos[:0]
		for _, name := range c.only {
			d, ok := demo.Find(name)
			if !ok {
				return fmt.Errorf("unknown demo: %s", name)
			}
			demos = append(demos, d)
		}
	}

	opts := poi.DefaultOptions()
	opts.Logger = c.log
	if c.format != "" {
		format, err := poi.ParseFormat(c.format)
		if err != nil {
			return err
		}
		opts.Format = format
	}
	if err := os.MkdirAll(c.outDir, 0755); err != nil {
		return err
	}

	now := time.Now()
	for _, d := range demos {
		wb, err := d.Build(now)
		if err != nil {
			return fmt.Errorf("building %s: %w", d.Name, err)
		}
		file := d.File
		if opts.Format != "" {
			file = strings.TrimSuffix(file, filepath.Ext(file)) + "." + string(opts.Format)
		}
		path := filepath.Join(c.outDir, file)
		if err := poi.Save(wb, path, opts); err != nil {
			return fmt.Errorf("saving %s: %w", d.Name, err)
		}
		c.log.WithFields(logrus.Fields{"demo": d.Name, "path": path}).Info("wrote workbook")
	}
	return nil
}

func (c *cli) runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	wb, err := poi.Open(inputPath)
	if err != nil {
		return fmt.Errorf("reading failed: %w", err)
	}
	data := output.FromWorkbook(wb, filepath.Base(inputPath))

	jsonData, err := output.ToJSON(data, c.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if c.outputPath != "" {
		if err := renameio.WriteFile(c.outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if c.sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if c.sheetsDir != "" {
		if err := c.writeSheetFiles(data, c.sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}
	return nil
}

func (c *cli) writeSheetFiles(data *output.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range data.Sheets {
		sheet := &data.Sheets[i]
		jsonData, err := output.SheetToJSON(sheet, c.pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheet.Name+".json")
		if err := renameio.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}
	return nil
}
