// Package config loads the tool configuration: the list of repositories to
// analyze and the output file locations.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/lechnerc77/github-pr-analytics/internal/domain"
)

// Config is the resolved tool configuration.
type Config struct {
	Repositories []domain.Repository
	Output       Output
}

// Output holds the target paths for the file-based output formats.
type Output struct {
	JSONFile string
	CSVFile  string
}

// Load reads pr-analytics.yaml from the working directory, or the file given
// by path when non-empty. A missing default config file is not an error: the
// built-in defaults apply. An explicitly requested file must exist.
func Load(path string, logger *log.Logger) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pr-analytics")
		v.AddConfigPath(".")
	}

	v.SetDefault("repositories", []string{"lechnerc77/github-pr-analytics"})
	v.SetDefault("output.json_file", "output.json")
	v.SetDefault("output.csv_file", "output.csv")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		logger.Println("No config file found, using built-in defaults.")
	}

	repos, err := parseRepositories(v.GetStringSlice("repositories"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Repositories: repos,
		Output: Output{
			JSONFile: v.GetString("output.json_file"),
			CSVFile:  v.GetString("output.csv_file"),
		},
	}, nil
}

// parseRepositories splits "owner/name" entries into Repository values.
func parseRepositories(entries []string) ([]domain.Repository, error) {
	repos := make([]domain.Repository, 0, len(entries))
	for _, entry := range entries {
		owner, name, ok := strings.Cut(strings.TrimSpace(entry), "/")
		if !ok || owner == "" || name == "" {
			return nil, fmt.Errorf("invalid repository entry %q, expected owner/name", entry)
		}
		repos = append(repos, domain.Repository{Owner: owner, Name: name})
	}
	return repos, nil
}
