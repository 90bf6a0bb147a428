// Package main provides the CLI entry point for dutyfill.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yctsai/dutyfill-go/pkg/dutyfill"
)

var (
	verbose      bool
	dateKey      string
	outputPath   string
	settingsPath string
	pretty       bool

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dutyfill",
		Short: "Fill a distribution table from a duty-roster workbook",
		Long: `dutyfill reads one day of a duty-roster workbook (one sheet per day,
named with a 4-digit MMDD key) and writes the normalized assignments into a
distribution-table template, preserving the template's formatting.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	datesCmd := &cobra.Command{
		Use:   "dates [duty.xlsx]",
		Short: "List the duty workbook's available date keys",
		Args:  cobra.ExactArgs(1),
		RunE:  runDates,
	}

	fillCmd := &cobra.Command{
		Use:   "fill [duty.xlsx] [template.xlsx]",
		Short: "Fill the distribution table for one date",
		Args:  cobra.ExactArgs(2),
		RunE:  runFill,
	}
	fillCmd.Flags().StringVarP(&dateKey, "date", "d", "", "4-digit date key (MMDD) to extract")
	fillCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: suggested filename)")
	fillCmd.Flags().StringVar(&settingsPath, "settings", "", "YAML settings file")
	_ = fillCmd.MarkFlagRequired("date")

	recordCmd := &cobra.Command{
		Use:   "record [duty.xlsx]",
		Short: "Print one date's extracted record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runRecord,
	}
	recordCmd.Flags().StringVarP(&dateKey, "date", "d", "", "4-digit date key (MMDD) to extract")
	recordCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	recordCmd.Flags().StringVar(&settingsPath, "settings", "", "YAML settings file")
	_ = recordCmd.MarkFlagRequired("date")

	rootCmd.AddCommand(datesCmd, fillCmd, recordCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDates(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open duty workbook: %w", err)
	}
	defer f.Close()

	dates, err := dutyfill.ListAvailableDates(f)
	if err != nil {
		return err
	}
	if len(dates) == 0 {
		return dutyfill.ErrNoDateSheets
	}

	for _, d := range dates {
		fmt.Println(d)
	}
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	settings, err := dutyfill.LoadSettings(settingsPath)
	if err != nil {
		return err
	}

	duty, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open duty workbook: %w", err)
	}
	defer duty.Close()

	rec, err := dutyfill.Extract(duty, dateKey, settings)
	if err != nil {
		return err
	}

	var jsonData []byte
	if pretty {
		jsonData, err = json.MarshalIndent(rec, "", "  ")
	} else {
		jsonData, err = json.Marshal(rec)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func runFill(cmd *cobra.Command, args []string) error {
	settings, err := dutyfill.LoadSettings(settingsPath)
	if err != nil {
		return err
	}

	duty, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open duty workbook: %w", err)
	}
	defer duty.Close()

	template, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("open template workbook: %w", err)
	}
	defer template.Close()

	logger.Debug("Processing roster",
		zap.String("duty", args[0]),
		zap.String("template", args[1]),
		zap.String("date", dateKey))

	out, suggested, err := dutyfill.Process(duty, template, dateKey, settings)
	if err != nil {
		return err
	}

	path := outputPath
	if path == "" {
		path = suggested
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("Distribution table written",
		zap.String("path", path),
		zap.Int("bytes", len(out)))
	return nil
}
