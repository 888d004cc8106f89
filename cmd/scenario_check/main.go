package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"arogya-ai/internal/config"
	"arogya-ai/internal/llm"
	"arogya-ai/internal/random"
	"arogya-ai/internal/service"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

var (
	flagSeed        uint64
	flagFailureRate float64
	flagConditions  string
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "scenario_check [file...]",
	Short: "Run regression scenarios against the rule engines",
	Long: `Evaluates YAML scenarios (mood, symptoms, diet, companion) against the
mood analyzer, symptom matcher, diet generator and companion responder.
Without arguments the embedded scenario set is used.`,
	SilenceUsage: true,
	RunE:         runScenarios,
}

func init() {
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 42, "random seed for the generators")
	rootCmd.Flags().Float64Var(&flagFailureRate, "failure-rate", 0, "simulated model failure rate")
	rootCmd.Flags().StringVar(&flagConditions, "conditions", "", "condition table YAML (defaults to CONDITIONS_FILE or the embedded table)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log service debug output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScenarios(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if flagVerbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	path := flagConditions
	if path == "" {
		path = cfg.ConditionsFile
	}
	table, err := service.DefaultConditionTable()
	if path != "" {
		table, err = service.LoadConditionFile(path)
	}
	if err != nil {
		return fmt.Errorf("condition table: %w", err)
	}

	scenarios, err := collectScenarios(args)
	if err != nil {
		return err
	}

	rnd := random.New(flagSeed)
	mood := service.NewMoodAnalyzer()
	r := &runner{
		mood:      mood,
		symptoms:  service.NewSymptomService(llm.NewSimulatedService(cfg.ModelVersion, flagFailureRate, 0, 0, rnd, logger), table, logger),
		diet:      service.NewDietService(rnd, logger),
		companion: service.NewCompanionService(mood, rnd, logger),
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	failed, err := report(ctx, cmd.OutOrStdout(), r, scenarios)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(scenarios))
	}
	return nil
}

func collectScenarios(paths []string) ([]Scenario, error) {
	if len(paths) == 0 {
		return loadScenarios(bytes.NewReader(defaultScenarios))
	}
	var all []Scenario
	for _, p := range paths {
		scs, err := loadScenarioFile(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		all = append(all, scs...)
	}
	return all, nil
}

// report ejecuta los escenarios, imprime el veredicto y devuelve cuántos fallaron.
func report(ctx context.Context, w io.Writer, r *runner, scenarios []Scenario) (int, error) {
	failed := 0
	for _, sc := range scenarios {
		res, err := r.Run(ctx, sc)
		if err != nil {
			return failed, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		if res.Passed() {
			fmt.Fprintf(w, "%sPASS%s [%s] %s\n", colorGreen, colorReset, sc.Kind, sc.Name)
			continue
		}
		failed++
		fmt.Fprintf(w, "%sFAIL%s [%s] %s\n", colorRed, colorReset, sc.Kind, sc.Name)
		for _, f := range res.Failures {
			fmt.Fprintf(w, "     - %s\n", f)
		}
	}
	fmt.Fprintf(w, "%s==== %d/%d escenarios OK ====%s\n", colorCyan, len(scenarios)-failed, len(scenarios), colorReset)
	return failed, nil
}
