// Command scram is the thin CLI shell over the analysis kernel: it
// parses flags, loads a model and settings, drives one engine.Engine
// run, and writes a report.Report to the chosen sink. It holds no
// analysis logic of its own (§6, §9) — everything here is wiring.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scram-ng/scram-core/engine"
	"github.com/scram-ng/scram-core/errs"
	"github.com/scram-ng/scram-core/model"
	"github.com/scram-ng/scram-core/modelio"
	"github.com/scram-ng/scram-core/report"
)

// cliConfig is what --config PATH populates via viper; flags passed
// on the command line override any field set here.
type cliConfig struct {
	MissionTime       float64 `mapstructure:"mission_time"`
	ProductSizeLimit  int     `mapstructure:"limit_order"`
	ProbabilityCutoff float64 `mapstructure:"probability_cutoff"`
	NumTrials         int     `mapstructure:"num_trials"`
	Seed              uint64  `mapstructure:"seed"`
	SILBuckets        int     `mapstructure:"sil_buckets"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		configPath      string
		useBDD          bool
		useZBDD         bool
		useMOCUS        bool
		rareEvent       bool
		mcub            bool
		limitOrder      int
		wantProbability bool
		wantImportance  bool
		wantUncertainty bool
		numTrials       int
		seed            uint64
		missionTime     float64
		outputPath      string
		debug           bool
	)

	root := &cobra.Command{
		Use:     "scram [model.yaml]",
		Short:   "scram — probabilistic risk analysis kernel",
		Version: "0.1.0",
		Args:    cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(debug)

			settings, err := loadSettings(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mission-time") {
				settings.MissionTime = missionTime
			}
			if cmd.Flags().Changed("limit-order") {
				settings.ProductSizeLimit = limitOrder
			}
			if cmd.Flags().Changed("num-trials") {
				settings.NumTrials = numTrials
			}
			if cmd.Flags().Changed("seed") {
				settings.Seed = seed
			}
			if !wantUncertainty {
				settings.NumTrials = 0
				settings.SILBuckets = 0
			}
			switch {
			case rareEvent:
				settings.Approximation = model.RareEvent
			case mcub:
				settings.Approximation = model.MCUB
			}

			mode := engine.ModeBDD
			switch {
			case useBDD:
				mode = engine.ModeBDD
			case useZBDD:
				mode = engine.ModeZBDD
			case useMOCUS:
				mode = engine.ModeMOCUS
			}

			f, err := os.Open(args[0])
			if err != nil {
				return errs.IOf("cmd/scram", err, "opening model file %s", args[0])
			}
			defer f.Close()

			mdl, err := modelio.Load(f)
			if err != nil {
				return err
			}

			r, err := engine.Run(context.Background(), mdl, settings, mode, log)
			if err != nil {
				return err
			}
			if !wantImportance {
				r.Importance = nil
			}
			if !wantProbability {
				r.TopEventProbability = 0
				r.CutSets = nil
			}

			return writeReport(r, outputPath)
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "Settings file (YAML/JSON/TOML)")
	root.Flags().BoolVar(&useBDD, "bdd", false, "Compile via the BDD engine (the default)")
	root.Flags().BoolVar(&useZBDD, "zbdd", false, "Compile cut sets via the ZBDD engine")
	root.Flags().BoolVar(&useMOCUS, "mocus", false, "Compile cut sets via MOCUS")
	root.Flags().BoolVar(&rareEvent, "rare-event", false, "Use the rare-event probability approximation")
	root.Flags().BoolVar(&mcub, "mcub", false, "Use the MCUB probability approximation")
	root.Flags().IntVar(&limitOrder, "limit-order", 0, "Maximum cut-set size (0 = unlimited)")
	root.Flags().BoolVar(&wantProbability, "probability", true, "Report the top-event probability")
	root.Flags().BoolVar(&wantImportance, "importance", false, "Report importance factors")
	root.Flags().BoolVar(&wantUncertainty, "uncertainty", false, "Run Monte Carlo uncertainty propagation")
	root.Flags().IntVar(&numTrials, "num-trials", 1000, "Monte Carlo trial count")
	root.Flags().Uint64Var(&seed, "seed", 1, "Monte Carlo random seed")
	root.Flags().Float64Var(&missionTime, "mission-time", 1.0, "Mission time T")
	root.Flags().StringVar(&outputPath, "output", "", "Report output path (default: stdout)")
	root.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	code := 0
	if err := root.Execute(); err != nil {
		printError(err)
		code = errs.ExitCode(err)
	}
	return code
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func loadSettings(configPath string) (model.Settings, error) {
	settings := model.DefaultSettings()

	if configPath != "" {
		v := viper.New()
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return settings, errs.IOf("cmd/scram.loadSettings", err, "reading config %s", configPath)
		}
		var cfg cliConfig
		if err := v.Unmarshal(&cfg); err != nil {
			return settings, errs.IOf("cmd/scram.loadSettings", err, "parsing config %s", configPath)
		}
		if cfg.MissionTime > 0 {
			settings.MissionTime = cfg.MissionTime
		}
		if cfg.ProductSizeLimit > 0 {
			settings.ProductSizeLimit = cfg.ProductSizeLimit
		}
		if cfg.NumTrials > 0 {
			settings.NumTrials = cfg.NumTrials
		}
		if cfg.Seed > 0 {
			settings.Seed = cfg.Seed
		}
		if cfg.SILBuckets > 0 {
			settings.SILBuckets = cfg.SILBuckets
		}
	}

	return settings, settings.Validate()
}

func writeReport(r *report.Report, outputPath string) error {
	if outputPath == "" {
		return report.ConsoleSink{W: os.Stdout}.Write(r)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return errs.IOf("cmd/scram.writeReport", err, "creating %s", outputPath)
	}
	defer f.Close()
	return report.YAMLSink{W: f}.Write(r)
}

func printError(err error) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(os.Stderr, "%s %v\n", red("error:"), err)
}
