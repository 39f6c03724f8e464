package main

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"

	"panchayat/internal/config"
	"panchayat/internal/election"
	"panchayat/internal/formatter"
	"panchayat/internal/handlers"
	"panchayat/internal/models"
	"panchayat/internal/parser"
	"panchayat/internal/tiffin"
	"panchayat/internal/validator"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Failed to load configuration: %v", err)
	}

	logger, err := config.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		config.Exitf("Failed to initialize logger: %v", err)
	}
	slog.SetDefault(logger)
	if cfg.NoColor {
		color.NoColor = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(cfg, logger).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "panchayat",
		Short:        "Village election tallying and tiffin plan pricing",
		SilenceUsage: true,
	}
	root.AddCommand(newElectionCmd(cfg, logger), newTiffinCmd())
	return root
}

func newElectionCmd(cfg config.Config, logger *slog.Logger) *cobra.Command {
	var (
		scenarioPath string
		ballotsPath  string
		sortBy       string
	)

	cmd := &cobra.Command{
		Use:   "election",
		Short: "Replay an election scenario and print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			compare, err := resultOrder(sortBy)
			if err != nil {
				return err
			}

			manager := parser.NewParserManager(logger)
			scenario, err := manager.ParseFile(cmd.Context(), scenarioPath)
			if err != nil {
				return err
			}
			if ballotsPath != "" {
				extra, err := manager.ParseFile(cmd.Context(), ballotsPath)
				if err != nil {
					return err
				}
				scenario.Merge(extra)
			}

			rules := validator.DefaultRules()
			rules.MinAge = cfg.MinVoterAge
			session := election.New(scenario.Candidates,
				election.WithLogger(logger),
				election.WithMinAge(cfg.MinVoterAge),
				election.WithValidator(validator.New(rules)),
			)

			report, err := handlers.NewElectionHandler(session, logger).HandleScenario(cmd.Context(), scenario, compare)
			if err != nil {
				return err
			}
			return formatter.New(cmd.OutOrStdout()).WriteReport(report)
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "scenario file (.json)")
	cmd.Flags().StringVar(&ballotsPath, "ballots", "", "additional ballots file (.csv or .json)")
	cmd.Flags().StringVar(&sortBy, "sort", "votes", "result order: votes or name")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func resultOrder(sortBy string) (func(a, b models.Result) int, error) {
	switch sortBy {
	case "", "votes":
		return nil, nil
	case "name":
		return func(a, b models.Result) int { return cmp.Compare(a.Name, b.Name) }, nil
	default:
		return nil, fmt.Errorf("unknown sort order %q", sortBy)
	}
}

func newTiffinCmd() *cobra.Command {
	var (
		req    models.PlanRequest
		meal   string
		days   int
		addons map[string]int
	)

	cmd := &cobra.Command{
		Use:   "tiffin",
		Short: "Price a tiffin plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.MealType = models.MealType(meal)
			if cmd.Flags().Changed("days") {
				req.Days = &days
			}
			plan, err := tiffin.NewPlan(req)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(addons))
			for name := range addons {
				names = append(names, name)
			}
			slices.Sort(names)
			extras := make([]models.Addon, 0, len(names))
			for _, name := range names {
				extras = append(extras, models.Addon{Name: name, Price: addons[name]})
			}

			priced := tiffin.ApplyAddons(&plan, extras...)
			formatter.New(cmd.OutOrStdout()).WritePlan(*priced)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "customer name")
	cmd.Flags().StringVar(&meal, "meal", string(models.MealTypeVeg), "meal type: veg, nonveg or jain")
	cmd.Flags().IntVar(&days, "days", tiffin.DefaultDays, "number of days")
	cmd.Flags().StringToIntVar(&addons, "addon", nil, "add-on prices per day, e.g. raita=15,papad=5")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
