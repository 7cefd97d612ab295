package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ReportOutput locates the CSV report files
type ReportOutput struct {
	OutputDir  string
	BySetFile  string
	ByNameFile string
}

// SetupReportOutput fills empty fields from config, creates the output
// directory and turns the file names into paths inside it.
func SetupReportOutput(cfg *ReportOutput) error {
	if cfg.OutputDir == "" {
		cfg.OutputDir = viper.GetString("output.dir")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	cfg.OutputDir = filepath.Clean(cfg.OutputDir)

	if cfg.BySetFile == "" {
		cfg.BySetFile = viper.GetString("report.by_set_file")
	}
	if cfg.BySetFile == "" {
		cfg.BySetFile = "cards-by-set.csv"
	}
	if cfg.ByNameFile == "" {
		cfg.ByNameFile = viper.GetString("report.by_name_file")
	}
	if cfg.ByNameFile == "" {
		cfg.ByNameFile = "cards-by-name.csv"
	}

	if !filepath.IsAbs(cfg.BySetFile) {
		cfg.BySetFile = filepath.Join(cfg.OutputDir, cfg.BySetFile)
	}
	if !filepath.IsAbs(cfg.ByNameFile) {
		cfg.ByNameFile = filepath.Join(cfg.OutputDir, cfg.ByNameFile)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return nil
}
