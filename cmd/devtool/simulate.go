package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/osse101/SpinVault_Go/internal/bootstrap"
	"github.com/osse101/SpinVault_Go/internal/config"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/lottery"
	"github.com/osse101/SpinVault_Go/internal/session"
)

const defaultSimulationSeed = 42

// gameParams is the slice of the game registry a simulation needs.
type gameParams interface {
	Params(key string, draws int) (session.Params, error)
}

// simulationReport tallies a batch of draws against the configured odds.
type simulationReport struct {
	Game     string
	Trials   int
	ByTier   map[domain.Tier]int
	BySource map[domain.DrawSource]int
	Expected map[domain.Tier]float64
	// GrandChance is zero when the game has no reachable grand prize.
	GrandChance float64
}

type SimulateCommand struct{}

func (c *SimulateCommand) Name() string {
	return "simulate"
}

func (c *SimulateCommand) Description() string {
	return "Monte-Carlo tier frequencies for a game: simulate <game> <trials> [seed]"
}

func (c *SimulateCommand) Run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: simulate <game> <trials> [seed]")
	}
	trials, err := strconv.Atoi(args[1])
	if err != nil || trials < 1 {
		return fmt.Errorf("trials must be a positive integer, got %q", args[1])
	}
	seed := uint64(defaultSimulationSeed)
	if len(args) > 2 {
		if seed, err = strconv.ParseUint(args[2], 10, 64); err != nil {
			return fmt.Errorf("invalid seed %q: %w", args[2], err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx := context.Background()
	cat, err := bootstrap.LoadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	games, err := bootstrap.LoadGames(ctx, cfg, cat)
	if err != nil {
		return err
	}

	report, err := simulate(games, args[0], trials, seed)
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

// simulate draws trials outcomes for one game with a seeded source, so
// the same seed always yields the same report.
func simulate(games gameParams, key string, trials int, seed uint64) (*simulationReport, error) {
	params, err := games.Params(key, 1)
	if err != nil {
		return nil, err
	}

	engine := lottery.NewEngine(lottery.NewSeededSource(seed))
	draws, err := engine.Draw(params.Pool, params.Table, trials, params.Grand)
	if err != nil {
		return nil, err
	}

	report := &simulationReport{
		Game:     key,
		Trials:   trials,
		ByTier:   make(map[domain.Tier]int),
		BySource: make(map[domain.DrawSource]int),
		Expected: params.Table.Probabilities(),
	}
	if params.Grand != nil && len(params.Grand.Entries) > 0 {
		report.GrandChance = params.Grand.Chance
	}
	for _, d := range draws {
		report.ByTier[d.Entry.Tier]++
		report.BySource[d.Source]++
	}
	return report, nil
}

func printReport(r *simulationReport) {
	PrintHeader(fmt.Sprintf("%s: %d draws", r.Game, r.Trials))

	tiers := make([]domain.Tier, 0, len(r.ByTier))
	for t := range r.ByTier {
		tiers = append(tiers, t)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i] < tiers[j] })

	tbl := newTable("TIER", "HITS", "OBSERVED", "TARGETED")
	for _, t := range tiers {
		expected := "-"
		if p, ok := r.Expected[t]; ok {
			expected = fmt.Sprintf("%.2f%%", p*(1-r.GrandChance)*100)
		}
		tbl.Row(string(t), strconv.Itoa(r.ByTier[t]), fmt.Sprintf("%.2f%%", percent(r.ByTier[t], r.Trials)), expected)
	}
	tbl.Flush()

	fmt.Fprintln(out)
	for _, s := range []domain.DrawSource{domain.SourceGrandPrize, domain.SourceTier, domain.SourceBase, domain.SourcePool} {
		if n := r.BySource[s]; n > 0 {
			PrintInfo("%-6s %d (%.2f%%)", s, n, percent(n, r.Trials))
		}
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
