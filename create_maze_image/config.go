package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Holds the default values of the command-line flags. Each can be overridden
// by an environment variable, which may in turn come from a .env file in the
// working directory.
type defaults struct {
	Rows      int
	Cols      int
	Algorithm string
	CellSize  int
}

func loadDefaults() defaults {
	if e := godotenv.Load(); e != nil {
		log.WithError(e).Debug(".env file not loaded")
	}
	return defaults{
		Rows:      getEnvAsIntWithDefault("MAZE_ROWS", 20),
		Cols:      getEnvAsIntWithDefault("MAZE_COLS", 20),
		Algorithm: getEnvWithDefault("MAZE_ALGORITHM", "recursive_backtracker"),
		CellSize:  getEnvAsIntWithDefault("MAZE_CELL_SIZE", 10),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Falls back to the default, with a warning, if the variable isn't an
// integer.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, e := strconv.Atoi(valueStr)
	if e != nil {
		log.WithFields(logrus.Fields{
			"variable": key,
			"value":    valueStr,
		}).Warn("Ignoring non-integer environment variable")
		return defaultValue
	}
	return value
}
