package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default values shared by the CLI, the generated config file and tests
const (
	DefaultListsDir     = "./Pauper Cube Lists"
	DefaultDataFile     = "./data.json"
	DefaultOutputDir    = "."
	DefaultWaitTime     = 100 * time.Millisecond
	DefaultScryfallURL  = "https://api.scryfall.com"
	DefaultUserAgent    = "paupercube/1.0"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultBySetFile    = "cards-by-set.csv"
	DefaultByNameFile   = "cards-by-name.csv"
	DefaultDatasetteDB  = "./paupercube.db"
	DefaultDatasetteMod = "local"
)

var (
	// DefaultListExtensions selects which files in the lists directory are card lists
	DefaultListExtensions = []string{".txt"}

	// DefaultIgnoredSets are promo and reprint products left out of the by-set report
	DefaultIgnoredSets = []string{
		"Summer Magic / Edgar",
		"Mystery Booster",
		"The List",
		"Limited Edition Alpha",
		"Limited Edition Beta",
		"Unlimited Edition",
	}

	// DefaultIgnoredSetTypes are Scryfall set types left out of the by-set report
	DefaultIgnoredSetTypes = []string{"masterpiece", "alchemy", "memorabilia"}

	// DefaultLanguages are the printing languages kept in the by-set report
	DefaultLanguages = []string{"en"}
)

// Global configuration variables
var (
	// ListsDir is the directory holding the cube list files
	ListsDir string
	// ListExtensions filters which files in ListsDir are read
	ListExtensions []string
	// DataFile is the JSON card cache
	DataFile string
	// OutputDir is where the CSV reports are written
	OutputDir string
	// WaitTime is the minimum spacing between Scryfall requests
	WaitTime time.Duration
	// MaxFetches caps the number of new fetches per run, 0 means no cap
	MaxFetches int
)

// SetDefaults registers default values for every configuration key
func SetDefaults() {
	viper.SetDefault("lists.dir", DefaultListsDir)
	viper.SetDefault("lists.extensions", DefaultListExtensions)
	viper.SetDefault("data.file", DefaultDataFile)
	viper.SetDefault("output.dir", DefaultOutputDir)

	viper.SetDefault("fetch.wait_time", DefaultWaitTime.String())
	viper.SetDefault("fetch.max_fetches", 0)

	viper.SetDefault("scryfall.base_url", DefaultScryfallURL)
	viper.SetDefault("scryfall.user_agent", DefaultUserAgent)
	viper.SetDefault("scryfall.timeout", DefaultHTTPTimeout.String())

	viper.SetDefault("report.by_set_file", DefaultBySetFile)
	viper.SetDefault("report.by_name_file", DefaultByNameFile)
	viper.SetDefault("report.ignore_sets", DefaultIgnoredSets)
	viper.SetDefault("report.ignore_set_types", DefaultIgnoredSetTypes)
	viper.SetDefault("report.languages", DefaultLanguages)
	viper.SetDefault("report.skip_digital", true)

	viper.SetDefault("datasette.enabled", false)
	viper.SetDefault("datasette.mode", DefaultDatasetteMod)
	viper.SetDefault("datasette.dbfile", DefaultDatasetteDB)
}

// InitConfig initializes the global configuration
func InitConfig() {
	SetDefaults()

	ListsDir = viper.GetString("lists.dir")
	ListExtensions = viper.GetStringSlice("lists.extensions")
	DataFile = viper.GetString("data.file")
	OutputDir = viper.GetString("output.dir")
	WaitTime = viper.GetDuration("fetch.wait_time")
	MaxFetches = viper.GetInt("fetch.max_fetches")
}

// SetWaitTime overrides the request spacing
func SetWaitTime(wait time.Duration) {
	WaitTime = wait
}

// SetMaxFetches overrides the per-run fetch quota
func SetMaxFetches(limit int) {
	MaxFetches = limit
}
