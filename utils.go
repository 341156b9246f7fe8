/* utils.go
 * Utility functions used by the root command to compute its defaults
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// outputDirName is the directory created under the home directory when no output directory is configured
const outputDirName = "PlayerStats"

// convertStrToBool converts a string of true or false into a boolean for comparisons
// Preconditions: Receives string containing either true or false (case insensitive)
// Postconditions: Returns boolean value or an error if the string is not true or false
func convertStrToBool(str string) (bool, error) {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)

	if str == "true" {
		return true, nil
	} else if str == "false" {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string")
}

// debugFromEnv reads STANDINGS_DEBUG. An unset or unparsable value means debug logging is off
func debugFromEnv() bool {
	debug, err := convertStrToBool(os.Getenv("STANDINGS_DEBUG"))
	if err != nil {
		return false
	}
	return debug
}

// defaultOutputDir returns STANDINGS_OUTPUT_DIR if set, else PlayerStats in the home directory
// Postconditions: Returns PlayerStats relative to the working directory if the home directory cannot be found
func defaultOutputDir() string {
	if dir := os.Getenv("STANDINGS_OUTPUT_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return outputDirName
	}
	return filepath.Join(home, outputDirName)
}
