package testutil

import (
	"testing"
	"time"

	"github.com/lepinkainen/paupercube/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	ListsDir       string
	ListExtensions []string
	DataFile       string
	OutputDir      string
	WaitTime       time.Duration
	MaxFetches     int
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		ListsDir:       config.ListsDir,
		ListExtensions: config.ListExtensions,
		DataFile:       config.DataFile,
		OutputDir:      config.OutputDir,
		WaitTime:       config.WaitTime,
		MaxFetches:     config.MaxFetches,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.ListsDir = state.ListsDir
	config.ListExtensions = state.ListExtensions
	config.DataFile = state.DataFile
	config.OutputDir = state.OutputDir
	config.WaitTime = state.WaitTime
	config.MaxFetches = state.MaxFetches
}

// ResetConfig resets viper and restores the config package state when the
// test completes.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetTestConfig points every path setting into env and disables request
// spacing so tests never sleep. The previous state is restored on cleanup.
func SetTestConfig(t *testing.T, env *TestEnv) {
	t.Helper()

	ResetConfig(t)
	config.SetDefaults()

	viper.Set("lists.dir", env.Path("lists"))
	viper.Set("data.file", env.Path("data.json"))
	viper.Set("output.dir", env.Path("out"))
	viper.Set("fetch.wait_time", "0s")

	config.InitConfig()
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// viper has no Unset, a key that was absent keeps the test value
	})
}

// SetupDatasetteDB enables the local datasette export into a database
// inside env and returns its path.
func SetupDatasetteDB(t *testing.T, env *TestEnv) string {
	t.Helper()

	dbPath := env.Path("paupercube.db")

	SetViperValue(t, "datasette.enabled", true)
	SetViperValue(t, "datasette.mode", "local")
	SetViperValue(t, "datasette.dbfile", dbPath)

	return dbPath
}
