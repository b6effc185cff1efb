// Package envfile supplies sync credentials from the environment,
// optionally seeded from .env files. Variables already set in the
// environment take precedence over file contents.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Environment variables consulted for remote credentials.
const (
	UsernameVar = "WFCTL_USERNAME"
	PasswordVar = "WFCTL_PASSWORD"
)

// LoadWorkspace loads env files associated with a working directory:
// first .wfctl/env, then .env at the workspace root. Missing files are
// skipped.
func LoadWorkspace(workingDir string) error {
	for _, path := range []string{
		filepath.Join(workingDir, ".wfctl", "env"),
		filepath.Join(workingDir, ".env"),
	} {
		if err := Load(path); err != nil {
			return err
		}
	}
	return nil
}

// Credentials returns the remote username and password from the
// environment. Either may be empty.
func Credentials() (username, password string) {
	return os.Getenv(UsernameVar), os.Getenv(PasswordVar)
}

// Load reads a .env file and sets any variables not already in the environment.
// Returns nil if the file doesn't exist. Returns an error only for read failures.
func Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}

		// Only set if not already in the environment
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	return nil
}

// parseEnvLine extracts KEY=VALUE from a line.
// Handles optional quoting (single or double quotes) around the value.
func parseEnvLine(line string) (key, value string, ok bool) {
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	key = strings.TrimSpace(parts[0])
	value = strings.TrimSpace(parts[1])

	if key == "" {
		return "", "", false
	}

	// Strip optional export prefix
	key = strings.TrimPrefix(key, "export ")
	key = strings.TrimSpace(key)

	// Strip matching quotes from value
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	return key, value, true
}
