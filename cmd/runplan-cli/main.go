package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meltforce/runplan/internal/library"
	"github.com/meltforce/runplan/internal/localstore"
	"github.com/meltforce/runplan/internal/models"
	"github.com/meltforce/runplan/internal/planner"
	"gopkg.in/yaml.v3"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const usage = `Usage: runplan-cli <command> [flags]

Commands:
  generate -profile profile.yaml   generate a plan and print it as JSON
  history [-limit N]               list previously generated plans
  show <plan-id>                   print a previously generated plan
  presets                          list the preset plans
  preset <preset-id>               print a preset plan
  version                          print version and exit
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	// Logs go to stderr so stdout stays valid JSON.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "generate":
		err = runGenerate(args, log)
	case "history":
		err = runHistory(args)
	case "show":
		err = runShow(args)
	case "presets":
		err = runPresets()
	case "preset":
		err = runPreset(args)
	case "version":
		fmt.Println("runplan-cli", Version)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		log.Error(os.Args[1]+" failed", "error", err)
		os.Exit(1)
	}
}

func runGenerate(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	profilePath := fs.String("profile", "", "path to profile YAML (required)")
	outPath := fs.String("out", "", "write the plan to this file instead of stdout")
	raceDistance := fs.String("race-distance", planner.DefaultRaceDistance, "target used for race plans that name none")
	noHistory := fs.Bool("no-history", false, "do not record the plan in the local history")
	fs.Parse(args)

	if *profilePath == "" {
		fs.Usage()
		return fmt.Errorf("-profile is required")
	}

	profile, err := readProfile(*profilePath)
	if err != nil {
		return err
	}

	lib, err := library.Load()
	if err != nil {
		return fmt.Errorf("loading workout library: %w", err)
	}
	gen := planner.NewGenerator(lib, planner.WithDefaultRaceDistance(*raceDistance))

	var store planner.PlanStore
	if !*noHistory {
		hist, err := openHistory()
		if err != nil {
			return err
		}
		defer hist.Close()
		store = historyStore{hist}
	}

	plan, err := planner.NewService(gen, store, log).Generate(context.Background(), profile, store != nil)
	if err != nil {
		if planner.IsValidation(err) {
			return fmt.Errorf("%s: %w", planner.Code(err), err)
		}
		return err
	}

	out := io.Writer(os.Stdout)
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", *outPath, err)
		}
		defer f.Close()
		out = f
	}
	return printJSON(out, plan)
}

func runHistory(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	limit := fs.Int("limit", 20, "maximum number of plans to list")
	fs.Parse(args)

	hist, err := openHistory()
	if err != nil {
		return err
	}
	defer hist.Close()

	plans, err := hist.List(*limit)
	if err != nil {
		return err
	}
	for _, p := range plans {
		fmt.Printf("%s  %-40s  %2d weeks  %d days  %s\n",
			p.CreatedAt.Local().Format("2006-01-02 15:04"), p.ID, p.Weeks, p.DaysPerWeek, p.Name)
	}
	return nil
}

func runShow(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: runplan-cli show <plan-id>")
	}
	hist, err := openHistory()
	if err != nil {
		return err
	}
	defer hist.Close()

	plan, err := hist.Get(args[0])
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, plan)
}

func runPresets() error {
	lib, err := library.Load()
	if err != nil {
		return err
	}
	for _, p := range lib.Presets() {
		fmt.Printf("%-24s  %-12s  %2d weeks  %d days  %s\n", p.ID, p.Level, p.Weeks, len(p.Days), p.Name)
	}
	return nil
}

func runPreset(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: runplan-cli preset <preset-id>")
	}
	lib, err := library.Load()
	if err != nil {
		return err
	}
	plan, err := planner.NewGenerator(lib).Preset(args[0])
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, plan)
}

// readProfile loads an athlete profile from YAML. race_date may be a plain
// calendar date.
func readProfile(path string) (models.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	var p models.Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return models.Profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return p, nil
}

func openHistory() (*localstore.Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return localstore.Open(filepath.Join(homeDir, ".runplan"))
}

// historyStore adapts the local history to the planner's PlanStore.
type historyStore struct {
	s *localstore.Store
}

func (h historyStore) SavePlan(_ context.Context, profile models.Profile, plan *models.Plan) error {
	return h.s.Record(profile, plan)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
