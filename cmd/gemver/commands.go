package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gemsw/gemver/pkg/config"
	"github.com/gemsw/gemver/pkg/deploy"
	"github.com/gemsw/gemver/pkg/gemver"
	"github.com/gemsw/gemver/pkg/logging"
	"github.com/gemsw/gemver/pkg/report"
)

var (
	configPath   string
	rootDir      string
	epicsVersion string
	site         string
	verbose      bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gemver",
		Short: "Inventory and cross-reference an EPICS deployment tree",
		Long: "gemver answers what the deployed IOCs and support modules depend on, at\n" +
			"what version, and how two or more deployed instances differ.",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.Init(verbose)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to an optional config file")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Deployment tree root (default $GEM_SW_ROOT or "+config.DefaultRoot+")")
	rootCmd.PersistentFlags().StringVarP(&epicsVersion, "epics", "e", "", "EPICS version (default $GEM_EPICS_RELEASE or newest in prod)")
	rootCmd.PersistentFlags().StringVarP(&site, "site", "s", "", "Site, cp or mk (default $GEM_SITE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		newCompareCmd(),
		newDepsCmd(),
		newActiveCmd(),
		newReportCmd(),
		newDependsCmd(),
		newListCmd(),
	)
	return rootCmd
}

// newApp loads the configuration, applies flag overrides and verifies the
// tree precondition shared by every command.
func newApp() (*gemver.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if rootDir != "" {
		cfg.Root = rootDir
	}
	if epicsVersion != "" {
		cfg.EpicsVersion = epicsVersion
	}
	if site != "" {
		cfg.Site = site
	}
	app := gemver.New(cfg)
	if err := app.CheckTree(); err != nil {
		return nil, err
	}
	return app, nil
}

func newCompareCmd() *cobra.Command {
	var (
		csvOut  bool
		noColor bool
	)
	cmd := &cobra.Command{
		Use:   "compare SPEC...",
		Short: "Cross-reference the dependencies of two or more deployed entities",
		Long: "Each SPEC is target[/site]:version where version is a numeric release,\n" +
			"'current' (resolved through the redirector), 'work', or a path to the\n" +
			"entity's top directory. A missing version means 'current'. Prefix one\n" +
			"SPEC with * to diff every other entity against it.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			matrix, err := app.Compare(cmd.Context(), args)
			if err != nil {
				return err
			}
			if csvOut {
				return report.RenderMatrixCSV(os.Stdout, matrix)
			}
			report.RenderMatrix(os.Stdout, matrix, !noColor)
			return nil
		},
	}
	cmd.Flags().BoolVar(&csvOut, "csv", false, "CSV output")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable agreement coloring")
	return cmd
}

func newDepsCmd() *cobra.Command {
	var deep bool
	cmd := &cobra.Command{
		Use:   "deps SPEC",
		Short: "Print the direct dependencies of one deployed entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			entity, deps, hops, err := app.EntityDependencies(cmd.Context(), args[0], deep)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", entity.Name, entity.Version())
			for _, variable := range sortedKeys(deps) {
				fmt.Printf("   %s %s\n", variable, deps[variable])
				for _, sub := range sortedKeys(hops[variable]) {
					fmt.Printf("      %s %s\n", sub, hops[variable][sub])
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&deep, "deep", false, "Also print each dependency's own dependencies")
	return cmd
}

func newActiveCmd() *cobra.Command {
	var (
		links    bool
		excludes []string
	)
	cmd := &cobra.Command{
		Use:   "active",
		Short: "Summarize the currently active deployments in the redirector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			entries, err := app.Active(cmd.Context(), excludes)
			if err != nil {
				return err
			}
			nameWidth := 0
			for _, entry := range entries {
				if len(entry.Entity.Name) > nameWidth {
					nameWidth = len(entry.Entity.Name)
				}
			}
			for _, entry := range entries {
				e := entry.Entity
				if links {
					fmt.Printf("%-*s  %s\n", nameWidth, e.Name, entry.Link)
					continue
				}
				fmt.Printf("%-*s  %-5s %-14s %-15s %-13s %s\n",
					nameWidth, e.Name, e.Maturity, e.EpicsVersion, e.BSP, e.Version(), e.Boot)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&links, "links", "l", false, "Print the raw redirector links")
	cmd.Flags().StringSliceVarP(&excludes, "exclude", "x", nil, "Exclude matching entries")
	return cmd
}

func newReportCmd() *cobra.Command {
	var (
		ioc      bool
		csvOut   bool
		allEpics bool
		excludes []string
	)
	cmd := &cobra.Command{
		Use:   "report [NAME...]",
		Short: "Print the production dependency matrix per EPICS version",
		Long: "One line per production release, one column per support module referenced\n" +
			"by at least one of them. NAME arguments keep only matching entries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			area := deploy.AreaSupport
			if ioc {
				area = deploy.AreaIOC
			}
			versions := []string{app.EpicsVersion()}
			if allEpics {
				versions = app.Catalog().EpicsVersions(deploy.MaturityProd)
				// Newest EPICS version first.
				sort.Sort(sort.Reverse(sort.StringSlice(versions)))
			}
			for i, epics := range versions {
				if i > 0 {
					fmt.Println()
				}
				rows, err := app.InventoryRows(cmd.Context(), area, epics, args, excludes)
				if err != nil {
					return err
				}
				if err := report.RenderInventory(os.Stdout, epics, rows, csvOut); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&ioc, "ioc", "i", false, "Report IOCs instead of support modules")
	cmd.Flags().BoolVar(&csvOut, "csv", false, "CSV output")
	cmd.Flags().BoolVar(&allEpics, "all-epics", false, "Report every EPICS version in prod")
	cmd.Flags().StringSliceVarP(&excludes, "exclude", "x", nil, "Exclude matching entries")
	return cmd
}

func newDependsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "depends NAME...",
		Short: "List the production entities that depend on the named modules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			epics := app.EpicsVersion()
			result, err := app.WhatDepends(cmd.Context(), epics, args)
			if err != nil {
				return err
			}
			fmt.Println(epics)
			for _, name := range sortedKeys(result) {
				fmt.Printf("   %s  %v\n", name, result[name])
			}
			return nil
		},
	}
	return cmd
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "list {epics|iocs|support}",
		Short:     "List what is available in the production tree",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"epics", "iocs", "support"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			cat := app.Catalog()
			versions := cat.EpicsVersions(deploy.MaturityProd)
			if args[0] == "epics" {
				for _, epics := range versions {
					fmt.Println(epics)
				}
				return nil
			}
			// Per-name list of the EPICS versions it is deployed for,
			// newest version first.
			sort.Sort(sort.Reverse(sort.StringSlice(versions)))
			byName := make(map[string][]string)
			for _, epics := range versions {
				var names []string
				if args[0] == "iocs" {
					names = cat.IOCs(epics, deploy.MaturityProd)
				} else {
					names = cat.SupportModules(epics, deploy.MaturityProd)
				}
				for _, name := range names {
					byName[name] = append(byName[name], epics)
				}
			}
			nameWidth := 0
			for name := range byName {
				if len(name) > nameWidth {
					nameWidth = len(name)
				}
			}
			for _, name := range sortedKeys(byName) {
				fmt.Printf("%-*s    %v\n", nameWidth, name, byName[name])
			}
			return nil
		},
	}
	return cmd
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
