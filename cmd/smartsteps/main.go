package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/TheAugDev/smart-steps-to-wealth/internal/calculation"
	"github.com/TheAugDev/smart-steps-to-wealth/internal/config"
	"github.com/TheAugDev/smart-steps-to-wealth/internal/domain"
	"github.com/TheAugDev/smart-steps-to-wealth/internal/output"
	"github.com/TheAugDev/smart-steps-to-wealth/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// stderrLogger adapts the standard library logger to the calculation Logger.
type stderrLogger struct {
	l *log.Logger
}

func (s stderrLogger) Debugf(format string, args ...any) { s.l.Printf("DEBUG "+format, args...) }
func (s stderrLogger) Infof(format string, args ...any)  { s.l.Printf("INFO "+format, args...) }
func (s stderrLogger) Warnf(format string, args ...any)  { s.l.Printf("WARN "+format, args...) }
func (s stderrLogger) Errorf(format string, args ...any) { s.l.Printf("ERROR "+format, args...) }

func newRootCmd() *cobra.Command {
	var configFile string
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "smartsteps",
		Short:         "Debt payoff planner",
		Long:          "Simulates month-by-month debt payoff under snowball or avalanche strategies and compares what-if scenarios against a minimums-only baseline.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log engine details to stderr")

	newEngine := func() *calculation.CalculationEngine {
		engine := calculation.NewCalculationEngine()
		if debug {
			engine.SetLogger(stderrLogger{log.New(os.Stderr, "", log.LstdFlags)})
		}
		return engine
	}

	rootCmd.AddCommand(newCalculateCmd(&configFile, newEngine))
	rootCmd.AddCommand(newScheduleCmd(&configFile, newEngine))
	rootCmd.AddCommand(newExampleCmd())

	return rootCmd
}

func newCalculateCmd(configFile *string, newEngine func() *calculation.CalculationEngine) *cobra.Command {
	var format string
	var save bool

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run all configured scenarios and report the comparison",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(*configFile)
			if err != nil {
				return err
			}

			results, err := newEngine().RunScenarios(cfg)
			if err != nil {
				return err
			}

			if output.NormalizeFormatName(format) == "console" && !save {
				f := output.GetFormatterByName("console")
				data, err := f.Format(results)
				if err != nil {
					return err
				}
				cmd.OutOrStdout().Write(data)
				return nil
			}
			return output.GenerateReport(results, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "report format: console, json, csv, detailed-csv, all")
	cmd.Flags().BoolVar(&save, "save", false, "write the report to a timestamped file instead of stdout")
	return cmd
}

func newScheduleCmd(configFile *string, newEngine func() *calculation.CalculationEngine) *cobra.Command {
	var strategy string
	var extra float64
	var target string

	cmd := &cobra.Command{
		Use:   "schedule <debt-name>",
		Short: "Print the amortization schedule for one debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(*configFile)
			if err != nil {
				return err
			}

			engine := newEngine()
			result := engine.Simulator.Simulate(cfg.Debts, domain.Strategy(strategy),
				decimal.NewFromFloat(extra), nil, target)

			schedule := result.ScheduleFor(args[0])
			if schedule == nil {
				return fmt.Errorf("debt %q not found in %s", args[0], *configFile)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "Month\tPayment\tPrincipal\tInterest\tBalance\t")
			for _, row := range schedule.Rows {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
					row.Month,
					money.Format(row.Payment),
					money.Format(row.Principal),
					money.Format(row.Interest),
					money.Format(row.Balance),
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nTotal interest on %s: %s\n", schedule.Name, money.Format(schedule.InterestPaid))
			return nil
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", string(domain.StrategySnowball), "payoff strategy: snowball or avalanche")
	cmd.Flags().Float64Var(&extra, "extra", 0, "extra monthly payment")
	cmd.Flags().StringVar(&target, "target", domain.TargetByStrategy, "debt to prioritize for extra payments")
	return cmd
}

func newExampleCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write a starter configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.WriteExampleConfiguration(outFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "example_config.yaml", "destination file")
	return cmd
}
