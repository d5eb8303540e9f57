package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/seokit"
	"github.com/eringen/seokit/robots"
)

var (
	outDir string
	strict bool
)

var robotsCmd = &cobra.Command{
	Use:   "robots",
	Short: "Print robots.txt for the current environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		opts := app.RobotsOptions()
		for _, w := range robots.Validate(opts) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
		}
		fmt.Fprint(cmd.OutOrStdout(), robots.ToText(robots.Generate(opts)))
		return nil
	},
}

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Write sitemap.xml (and child sitemaps when needed)",
	Long: `Collects entries from the site file routes and the page store, then
writes sitemap.xml. Past the per-file limit sitemap.xml becomes an index and
the entries go to sitemap-0.xml, sitemap-1.xml, ...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		res, err := app.Cache.Get(cmd.Context())
		if err != nil {
			return err
		}
		written, err := seokit.WriteSitemapFiles(outDir, res)
		if err != nil {
			return err
		}
		for _, p := range written {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		logger.Info("sitemap written",
			zap.String("dir", outDir),
			zap.Int("entries", len(res.Entries)),
			zap.Int("files", len(written)))

		problems := seokit.SitemapProblems(res)
		if problems == nil {
			return nil
		}
		if strict {
			return fmt.Errorf("sitemap: %w", problems)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", problems)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the SEO configuration, robots settings and sitemap entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		warnings := app.Warnings()
		res, err := app.Cache.Get(cmd.Context())
		if err != nil {
			return err
		}
		warnings = append(warnings, res.Issues...)
		for _, route := range res.Failed {
			warnings = append(warnings, fmt.Sprintf("route %s failed", route))
		}
		for _, w := range warnings {
			fmt.Fprintln(cmd.OutOrStdout(), w)
		}
		if len(warnings) > 0 {
			return fmt.Errorf("%d problem(s) found", len(warnings))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve robots.txt, sitemaps and the structured data preview",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := seokit.LoadSiteConfig(configPath)
		if err != nil {
			return err
		}
		app := seokit.New(cfg, seokit.WithLogger(logger))
		defer app.Close()
		return app.Start()
	},
}
