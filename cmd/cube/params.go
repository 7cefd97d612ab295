// Package cube implements the fetch, report and cache workflows of the CLI.
package cube

import (
	"time"

	"github.com/lepinkainen/paupercube/internal/cmdutil"
	"github.com/lepinkainen/paupercube/internal/config"
	"github.com/lepinkainen/paupercube/internal/report"
	"github.com/lepinkainen/paupercube/internal/scryfall"
	"github.com/spf13/viper"
)

// Params holds everything a workflow needs. ParamsFromConfig fills it from
// the loaded configuration.
type Params struct {
	ListsDir       string
	ListExtensions []string
	DataFile       string

	WaitTime    time.Duration
	MaxFetches  int
	ScryfallURL string
	UserAgent   string
	HTTPTimeout time.Duration

	Output cmdutil.ReportOutput
	Report report.Options
}

// ParamsFromConfig builds Params from the config package and viper.
func ParamsFromConfig() Params {
	return Params{
		ListsDir:       config.ListsDir,
		ListExtensions: config.ListExtensions,
		DataFile:       config.DataFile,

		WaitTime:    config.WaitTime,
		MaxFetches:  config.MaxFetches,
		ScryfallURL: viper.GetString("scryfall.base_url"),
		UserAgent:   viper.GetString("scryfall.user_agent"),
		HTTPTimeout: viper.GetDuration("scryfall.timeout"),

		Output: cmdutil.ReportOutput{
			OutputDir:  config.OutputDir,
			BySetFile:  viper.GetString("report.by_set_file"),
			ByNameFile: viper.GetString("report.by_name_file"),
		},
		Report: report.Options{
			IgnoreSets:     viper.GetStringSlice("report.ignore_sets"),
			IgnoreSetTypes: viper.GetStringSlice("report.ignore_set_types"),
			Languages:      viper.GetStringSlice("report.languages"),
			SkipDigital:    viper.GetBool("report.skip_digital"),
		},
	}
}

func (p Params) newClient() *scryfall.Client {
	return scryfall.NewClient(
		scryfall.WithBaseURL(p.ScryfallURL),
		scryfall.WithUserAgent(p.UserAgent),
		scryfall.WithTimeout(p.HTTPTimeout),
		scryfall.WithWaitTime(p.WaitTime),
	)
}
