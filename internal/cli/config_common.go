package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/metsgen/internal/config"
	"github.com/vvka-141/metsgen/pkg/metsgen"
)

// commonFlagValues holds the flags shared by local and fetch.
type commonFlagValues struct {
	repoURL     string
	outputDir   string
	strict      bool
	cacheModels bool
	retries     int
	timeout     time.Duration
}

func addCommonFlags(cmd *cobra.Command, f *commonFlagValues) {
	cmd.Flags().StringVar(&f.repoURL, "repo_url", "",
		"Base URL of the Islandora repository, e.g. https://islandora.example.edu\n"+
			"Falls back to repo_url in metsgen.yaml")
	cmd.Flags().StringVar(&f.outputDir, "outputdir", "",
		"Directory for generated METS files\n"+
			"Missing directories fall back to the working directory")
	cmd.Flags().BoolVar(&f.strict, "strict", false,
		"Fail the object when a model or parent lookup fails\n"+
			"instead of writing \"invalid url\" or skipping the parent")
	cmd.Flags().BoolVar(&f.cacheModels, "cache-models", false,
		"Look up each taxonomy term at most once per run")
	cmd.Flags().IntVar(&f.retries, "retries", 0,
		"Retry transient HTTP failures (timeouts, 429, 5xx) up to N times")
	cmd.Flags().DurationVar(&f.timeout, "timeout", metsgen.DefaultTimeout,
		"Abort the whole run after this long (e.g. 30m, 2h); 0 means no deadline\n"+
			"The clock starts after credentials are entered")
}

// loadProjectConfig loads .env and the project configuration.
// Returns nil config if ./metsgen.yaml does not exist (not an error); an
// explicit --config path must exist.
func loadProjectConfig(configPath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	if configPath != "" {
		projectCfg, err := config.LoadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w: %w", configPath, metsgen.ErrInvalidConfig, err)
		}
		return projectCfg, nil
	}

	projectCfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w: %w", config.ConfigFileName, metsgen.ErrInvalidConfig, err)
	}
	return projectCfg, nil
}

// buildRunConfig merges flag values with metsgen.yaml. Explicitly set
// flags win; unset flags take the file value, then the default.
func buildRunConfig(
	cmd *cobra.Command,
	mode metsgen.Mode,
	flags commonFlagValues,
	projectCfg *config.ProjectConfig,
	verbose bool,
) (metsgen.RunConfig, error) {
	cfg := metsgen.RunConfig{
		Mode:            mode,
		RepoURL:         flags.repoURL,
		OutputDir:       flags.outputDir,
		NamingAuthority: metsgen.DefaultNamingAuthority,
		Strict:          flags.strict,
		CacheModels:     flags.cacheModels,
		Retries:         flags.retries,
		Timeout:         flags.timeout,
		Verbose:         verbose,
	}

	if projectCfg != nil {
		changed := cmd.Flags().Changed

		if !changed("repo_url") && projectCfg.RepoURL != "" {
			cfg.RepoURL = projectCfg.RepoURL
		}
		if !changed("outputdir") && projectCfg.OutputDir != "" {
			cfg.OutputDir = projectCfg.OutputDir
		}
		if projectCfg.NamingAuthority != "" {
			cfg.NamingAuthority = projectCfg.NamingAuthority
		}
		if !changed("strict") && projectCfg.Strict {
			cfg.Strict = true
		}
		if !changed("cache-models") && projectCfg.CacheModels {
			cfg.CacheModels = true
		}
		if !changed("retries") && projectCfg.Retries != 0 {
			cfg.Retries = projectCfg.Retries
		}
		if !changed("timeout") {
			timeout, err := projectCfg.TimeoutDuration()
			if err != nil {
				return metsgen.RunConfig{}, fmt.Errorf("%s: %w: %w", config.ConfigFileName, metsgen.ErrInvalidConfig, err)
			}
			if timeout > 0 {
				cfg.Timeout = timeout
			}
		}
	}

	cfg.RepoURL = strings.TrimRight(strings.TrimSpace(cfg.RepoURL), "/")
	return cfg, nil
}
