package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/glidechart/internal/config"
	"github.com/san-kum/glidechart/internal/motion"
	"github.com/san-kum/glidechart/internal/series"
	"github.com/san-kum/glidechart/internal/ui"
)

var (
	configFile string
	preset     string
	fps        int
	samples    int
	seed       int64
	outPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glidechart",
		Short: "interactive time-series chart with momentum pan and focal zoom",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, []string{"damped"})
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "motion preset")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	viewCmd := &cobra.Command{
		Use:   "view [file]",
		Short: "view a series from a json or csv file",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}

	demoCmd := &cobra.Command{
		Use:   "demo [kind]",
		Short: "view a generated demo series",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDemo,
	}
	demoCmd.Flags().IntVar(&samples, "samples", 2000, "number of samples")
	demoCmd.Flags().Int64Var(&seed, "seed", 42, "random seed")

	genCmd := &cobra.Command{
		Use:   "gen [kind]",
		Short: "generate a series and write it to a file",
		Args:  cobra.ExactArgs(1),
		RunE:  runGen,
	}
	genCmd.Flags().IntVar(&samples, "samples", 2000, "number of samples")
	genCmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	genCmd.Flags().StringVarP(&outPath, "out", "o", "series.json", "output path (.json or .csv)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list motion presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-10s zoom %dms %s, zeta %.1f\n", name, p.ZoomDurationMs, p.Easing, p.Zeta)
			}
			return nil
		},
	}

	easingsCmd := &cobra.Command{
		Use:   "easings",
		Short: "list available easing curves",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range motion.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(viewCmd, demoCmd, genCmd, presetsCmd, easingsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	// Config file overrides preset; explicit flags override both.
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := series.Load(args[0])
	if err != nil {
		return err
	}
	return ui.Run(s, cfg)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	kind := "damped"
	if len(args) > 0 {
		kind = args[0]
	}
	s, err := series.Generate(kind, samples, seed)
	if err != nil {
		return err
	}
	return ui.Run(s, cfg)
}

func runGen(cmd *cobra.Command, args []string) error {
	s, err := series.Generate(args[0], samples, seed)
	if err != nil {
		return err
	}
	if strings.HasSuffix(outPath, ".csv") {
		err = s.SaveCSV(outPath)
	} else {
		err = s.SaveJSON(outPath)
	}
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d samples to %s\n", s.Len(), outPath)
	return nil
}
