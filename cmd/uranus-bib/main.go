// Package main provides the uranus-bib CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/uranus-web/uranus-bib/internal/config"
	"github.com/uranus-web/uranus-bib/internal/logging"
	"github.com/uranus-web/uranus-bib/internal/pipeline"
	"github.com/uranus-web/uranus-bib/internal/render"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	outFormat          string
	bibAssetsDir       string
	bibAssetsURLPrefix string
	peopleFile         string
	configFile         string
	logLevel           string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "uranus-bib <bib> <out>",
	Short: "Generate publication page data from a BibTeX file",
	Long: `uranus-bib converts a BibTeX bibliography and an optional people roster
into the data file read by the website's publication page.

For every entry it links the paper PDF ({id}.pdf) and slides ({id}-slides.pdf)
found in the assets directory, adds a GitHub star badge for www-url fields
pointing at GitHub, and links each author to their roster profile or to a
Google Scholar author search.

Examples:
  uranus-bib papers.bib src/app/data/papers.json --out-format json
  uranus-bib papers.bib src/app/data/papers.ts --out-format ts \
      --bib-assets-dir src/assets/pp --bib-assets-url-prefix /assets/pp \
      --people people.yml`,
	Args:          cobra.ExactArgs(2),
	RunE:          runBuild,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&outFormat, "out-format", "", "Output format: json or ts")
	rootCmd.PersistentFlags().StringVar(&bibAssetsDir, "bib-assets-dir", "", "Directory holding paper and slide PDFs")
	rootCmd.PersistentFlags().StringVar(&bibAssetsURLPrefix, "bib-assets-url-prefix", "", "URL prefix for files in the assets directory")
	rootCmd.PersistentFlags().StringVar(&peopleFile, "people", "", "People roster YAML file")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Defaults file (default: ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: "+logging.DefaultLevel+")")
	rootCmd.Version = Version
}

// settings is the merged view of command line flags and the config file.
type settings struct {
	OutFormat       string
	AssetsDir       string
	AssetsURLPrefix string
	People          string
	LogLevel        string
}

// loadSettings reads the config file and lets explicitly set flags win.
func loadSettings(cmd *cobra.Command) (settings, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return settings{}, fmt.Errorf("%w: %w", errConfig, err)
	}

	s := settings{
		OutFormat:       outFormat,
		AssetsDir:       bibAssetsDir,
		AssetsURLPrefix: bibAssetsURLPrefix,
		People:          peopleFile,
		LogLevel:        logLevel,
	}

	flags := cmd.Flags()
	fromConfig := func(flag string, dst *string, value string) {
		if !flags.Changed(flag) && value != "" {
			*dst = value
		}
	}
	fromConfig("out-format", &s.OutFormat, cfg.OutFormat)
	fromConfig("bib-assets-dir", &s.AssetsDir, cfg.BibAssetsDir)
	fromConfig("bib-assets-url-prefix", &s.AssetsURLPrefix, cfg.BibAssetsURLPrefix)
	fromConfig("people", &s.People, cfg.People)
	fromConfig("log-level", &s.LogLevel, cfg.LogLevel)

	return s, nil
}

func newLogger(cmd *cobra.Command, s settings) (zerolog.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), s.LogLevel)
}

func runBuild(cmd *cobra.Command, args []string) error {
	bibPath, outPath := args[0], args[1]

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, s)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(s.OutFormat)
	if err != nil {
		return err
	}

	content, err := pipeline.Build(pipeline.Options{
		BibPath:         bibPath,
		AssetsDir:       s.AssetsDir,
		AssetsURLPrefix: s.AssetsURLPrefix,
		PeoplePath:      s.People,
		Format:          format,
		Logger:          &log,
	})
	if err != nil {
		return err
	}

	if err := pipeline.WriteOutput(outPath, content); err != nil {
		return err
	}
	log.Info().Str("path", outPath).Str("format", string(format)).Msg("wrote output")
	return nil
}
