package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eringen/seokit"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	configPath string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seokit",
	Short: "seokit - robots.txt, sitemaps and structured data for a site",
	Long: `seokit resolves a site's SEO settings from the environment (SITE_URL,
SITE_NAME, APP_ENV, SEO_INDEXING, ...) and an optional YAML site file, then
prints, writes or serves the derived artifacts.

Outside production robots.txt always disallows everything.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the seokit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "seokit %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", seokit.EnvOr("SEOKIT_CONFIG", ""), "YAML site file (default $SEOKIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	sitemapCmd.Flags().StringVarP(&outDir, "out", "o", "public", "Directory to write sitemap files into")
	sitemapCmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when validation issues or route failures exist")

	rootCmd.AddCommand(robotsCmd)
	rootCmd.AddCommand(sitemapCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp loads the site file and builds an initialized App.
func newApp() (*seokit.App, error) {
	cfg, err := seokit.LoadSiteConfig(configPath)
	if err != nil {
		return nil, err
	}
	app := seokit.New(cfg, seokit.WithLogger(logger))
	if err := app.Init(); err != nil {
		return nil, err
	}
	return app, nil
}
