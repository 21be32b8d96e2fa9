// Package config resolves the on-disk locations used by cmdy.
package config

import (
	"os"
	"path/filepath"
)

// Environment variables that override the default locations.
const (
	EnvCmdyHome   = "CMDY_HOME"
	EnvCmdyConfig = "CMDY_CONFIG"
	EnvCmdyLog    = "CMDY_LOG"
	EnvCmdyDB     = "CMDY_DB"
)

const (
	configFile = "config.json"
	logFile    = "cmdy.log"
	dbFile     = "history.db"
)

// DataDir returns the directory used to store cmdy data. CMDY_HOME wins over
// the default ~/.cmdy.
func DataDir() (string, error) {
	if d := os.Getenv(EnvCmdyHome); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cmdy"), nil
}

// ConfigPath returns the full path to the JSON config file.
func ConfigPath() (string, error) {
	return resolve(EnvCmdyConfig, configFile)
}

// LogPath returns the full path to the execution log.
func LogPath() (string, error) {
	return resolve(EnvCmdyLog, logFile)
}

// DBPath returns the full path to the run history database.
func DBPath() (string, error) {
	return resolve(EnvCmdyDB, dbFile)
}

func resolve(env, name string) (string, error) {
	if p := os.Getenv(env); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, name), nil
}
