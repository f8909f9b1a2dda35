package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// logGitignoreEntry keeps the diagnostic log directory out of version control.
const logGitignoreEntry = ".jester/"

// InitFile writes the default jester.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}

// ScaffoldProject creates jester.toml and makes sure .gitignore excludes the
// log directory. Files that already exist are left untouched, apart from
// appending the missing .gitignore entry. Returns the list of created or
// modified paths.
func ScaffoldProject(dir string) ([]string, error) {
	var created []string

	tomlPath := filepath.Join(dir, FileName)
	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		if _, initErr := InitFile(dir); initErr != nil {
			return created, initErr
		}
		created = append(created, tomlPath)
	}

	gitignorePath := filepath.Join(dir, ".gitignore")
	existing, err := os.ReadFile(gitignorePath)
	if os.IsNotExist(err) {
		if writeErr := os.WriteFile(gitignorePath, []byte(logGitignoreEntry+"\n"), 0644); writeErr != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", gitignorePath, writeErr)
		}
		created = append(created, gitignorePath)
	} else if err != nil {
		return created, fmt.Errorf("scaffold: read %s: %w", gitignorePath, err)
	} else if !strings.Contains(string(existing), logGitignoreEntry) {
		content := string(existing)
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content += "\n"
		}
		content += logGitignoreEntry + "\n"
		if writeErr := os.WriteFile(gitignorePath, []byte(content), 0644); writeErr != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", gitignorePath, writeErr)
		}
		created = append(created, gitignorePath)
	}

	return created, nil
}

const configTemplate = `# jester.toml — Jester configuration
# Place this file in the directory you run jester from (or any parent).

[api]
endpoint = "https://official-joke-api.appspot.com/jokes/random"
timeout_seconds = 10

[timing]
reveal_delay_ms = 1200  # pause between the response and showing the joke
celebration_ms = 2000   # how long the confetti stays up

[tui]
accent_color = "#FF00FF"  # hex color for the card border and title

[log]
level = "info"                 # debug, info, warn, error
format = "text"                # text or json
file = ".jester/jester.log"    # empty = no diagnostic log
max_size_mb = 10
max_backups = 3
`
