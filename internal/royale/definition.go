package royale

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/osse101/SpinVault_Go/internal/catalog"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/lottery"
	"github.com/osse101/SpinVault_Go/internal/pool"
	"github.com/osse101/SpinVault_Go/internal/session"
)

// Definitions is the root of a games file.
type Definitions struct {
	Games []GameDef `yaml:"games"`
}

// GameDef declares one mini-game: what it costs, what its pool holds and
// how draws are weighted.
type GameDef struct {
	Key          string           `yaml:"key"`
	Name         string           `yaml:"name"`
	Currency     domain.Currency  `yaml:"currency"`
	Offers       []Offer          `yaml:"offers"`
	XP           int64            `yaml:"xp"`
	Reveal       time.Duration    `yaml:"reveal,omitempty"`
	Counter      string           `yaml:"counter,omitempty"`
	Sources      []SourceDef      `yaml:"sources,omitempty"`
	Static       []EntryDef       `yaml:"static,omitempty"`
	Fillers      []EntryDef       `yaml:"fillers,omitempty"`
	Tiers        TiersDef         `yaml:"tiers"`
	GrandPrize   *GrandPrizeDef   `yaml:"grand_prize,omitempty"`
	Compensation *CompensationDef `yaml:"compensation,omitempty"`
}

// Offer prices a number of draws.
type Offer struct {
	Draws int   `yaml:"draws" json:"draws"`
	Cost  int64 `yaml:"cost" json:"cost"`
}

// MatchDef filters catalog items. Empty lists do not filter.
type MatchDef struct {
	Categories        []string `yaml:"categories,omitempty"`
	ExcludeCategories []string `yaml:"exclude_categories,omitempty"`
	Rarities          []string `yaml:"rarities,omitempty"`
	ExcludeRarities   []string `yaml:"exclude_rarities,omitempty"`
	NameContains      string   `yaml:"name_contains,omitempty"`
}

// SourceDef pulls catalog items into the pool.
//
// Items are tagged through TierMap (rarity name to tier) when set, with Tier
// as the fallback; with neither, items are tagged by rarity name.
type SourceDef struct {
	Match      MatchDef               `yaml:"match"`
	Tier       domain.Tier            `yaml:"tier,omitempty"`
	TierMap    map[string]domain.Tier `yaml:"tier_map,omitempty"`
	MaxItems   int                    `yaml:"max_items,omitempty"`
	TierLimits map[domain.Tier]int    `yaml:"tier_limits,omitempty"`
}

// EntryDef is a pool entry declared inline: a currency grant, a fragment
// or a fixed item.
type EntryDef struct {
	ID       string           `yaml:"id"`
	Name     string           `yaml:"name"`
	Kind     domain.PrizeKind `yaml:"kind"`
	Tier     domain.Tier      `yaml:"tier,omitempty"`
	Rarity   string           `yaml:"rarity,omitempty"`
	Category string           `yaml:"category,omitempty"`
	Image    string           `yaml:"image,omitempty"`
	Currency domain.Currency  `yaml:"currency,omitempty"`
	Amount   int64            `yaml:"amount,omitempty"`
}

// TiersDef is a tier table. No bands means uniform over the whole pool.
type TiersDef struct {
	Bands []lottery.Band `yaml:"bands,omitempty"`
	Base  []domain.Tier  `yaml:"base,omitempty"`
}

// GrandPrizeDef awards one matching catalog item with a fixed chance.
type GrandPrizeDef struct {
	Chance float64  `yaml:"chance"`
	Match  MatchDef `yaml:"match"`
	Limit  int      `yaml:"limit,omitempty"`
}

// CompensationDef overrides duplicate compensation. Rarities left out keep
// the default amounts.
type CompensationDef struct {
	Currency domain.Currency  `yaml:"currency,omitempty"`
	Amounts  map[string]int64 `yaml:"amounts,omitempty"`
}

// Load reads and validates a games file.
func Load(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read games file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a games document.
func Parse(data []byte) (*Definitions, error) {
	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("%w: failed to parse games: %v", domain.ErrInvalidConfig, err)
	}
	if err := defs.Validate(); err != nil {
		return nil, err
	}
	return &defs, nil
}

// Validate checks every game and reports all problems at once.
func (d *Definitions) Validate() error {
	var errs []string
	if len(d.Games) == 0 {
		errs = append(errs, "no games defined")
	}

	seen := make(map[string]bool, len(d.Games))
	for i, g := range d.Games {
		label := g.Key
		if label == "" {
			label = fmt.Sprintf("games[%d]", i)
			errs = append(errs, label+": key is required")
		} else if seen[g.Key] {
			errs = append(errs, label+": duplicate key")
		}
		seen[g.Key] = true

		for _, e := range g.validate() {
			errs = append(errs, label+": "+e)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

func (g GameDef) validate() []string {
	var errs []string
	if !g.Currency.Valid() {
		errs = append(errs, fmt.Sprintf("unknown currency %q", g.Currency))
	}
	if len(g.Offers) == 0 {
		errs = append(errs, "at least one offer is required")
	}
	draws := make(map[int]bool, len(g.Offers))
	for _, o := range g.Offers {
		if o.Draws < 1 {
			errs = append(errs, fmt.Sprintf("offer draws must be >= 1, got %d", o.Draws))
		}
		if o.Cost <= 0 {
			errs = append(errs, fmt.Sprintf("offer cost must be > 0, got %d", o.Cost))
		}
		if draws[o.Draws] {
			errs = append(errs, fmt.Sprintf("duplicate offer for %d draws", o.Draws))
		}
		draws[o.Draws] = true
	}
	if g.XP < 0 {
		errs = append(errs, "xp must be >= 0")
	}
	if g.Reveal < 0 {
		errs = append(errs, "reveal must be >= 0")
	}

	if len(g.Fillers)+len(g.Static) == 0 {
		errs = append(errs, "at least one filler or static entry is required")
	}
	for _, e := range append(append([]EntryDef(nil), g.Static...), g.Fillers...) {
		if _, err := e.entry(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	for _, s := range g.Sources {
		if _, _, err := s.build(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if _, err := g.Tiers.table(); err != nil {
		errs = append(errs, err.Error())
	}
	if gp := g.GrandPrize; gp != nil {
		if gp.Chance < 0 || gp.Chance > 1 {
			errs = append(errs, fmt.Sprintf("grand prize chance %v outside [0,1]", gp.Chance))
		}
		if _, err := gp.Match.predicate(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if g.Compensation != nil {
		if _, err := g.Compensation.resolve(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

func (m MatchDef) predicate() (pool.Predicate, error) {
	preds := []pool.Predicate{}

	categories := func(raw []string) ([]domain.Category, error) {
		out := make([]domain.Category, 0, len(raw))
		for _, r := range raw {
			c, ok := catalog.ParseCategory(r)
			if !ok {
				return nil, fmt.Errorf("unknown category %q", r)
			}
			out = append(out, c)
		}
		return out, nil
	}
	rarities := func(raw []string) ([]domain.Rarity, error) {
		out := make([]domain.Rarity, 0, len(raw))
		for _, r := range raw {
			parsed, ok := catalog.ParseRarity(r)
			if !ok {
				return nil, fmt.Errorf("unknown rarity %q", r)
			}
			out = append(out, parsed)
		}
		return out, nil
	}

	if len(m.Categories) > 0 {
		cs, err := categories(m.Categories)
		if err != nil {
			return nil, err
		}
		preds = append(preds, pool.InCategories(cs...))
	}
	if len(m.ExcludeCategories) > 0 {
		cs, err := categories(m.ExcludeCategories)
		if err != nil {
			return nil, err
		}
		preds = append(preds, pool.NotInCategories(cs...))
	}
	if len(m.Rarities) > 0 {
		rs, err := rarities(m.Rarities)
		if err != nil {
			return nil, err
		}
		preds = append(preds, pool.InRarities(rs...))
	}
	if len(m.ExcludeRarities) > 0 {
		rs, err := rarities(m.ExcludeRarities)
		if err != nil {
			return nil, err
		}
		preds = append(preds, pool.NotInRarities(rs...))
	}
	if m.NameContains != "" {
		preds = append(preds, pool.NameContains(m.NameContains))
	}
	return pool.And(preds...), nil
}

func (s SourceDef) build() (pool.Predicate, pool.TierFunc, error) {
	pred, err := s.Match.predicate()
	if err != nil {
		return nil, nil, err
	}

	var tierOf pool.TierFunc
	switch {
	case len(s.TierMap) > 0:
		m := make(map[domain.Rarity]domain.Tier, len(s.TierMap))
		for raw, tier := range s.TierMap {
			r, ok := catalog.ParseRarity(raw)
			if !ok {
				return nil, nil, fmt.Errorf("unknown rarity %q in tier_map", raw)
			}
			m[r] = tier
		}
		fallback := s.Tier
		if fallback == "" {
			fallback = domain.Tier(domain.RarityCommon.String())
		}
		tierOf = pool.RarityMap(m, fallback)
	case s.Tier != "":
		tierOf = pool.FixedTier(s.Tier)
	default:
		tierOf = pool.ByRarity()
	}
	return pred, tierOf, nil
}

func (s SourceDef) options() []pool.Option {
	var opts []pool.Option
	if s.MaxItems > 0 {
		opts = append(opts, pool.WithMaxItems(s.MaxItems))
	}
	for tier, n := range s.TierLimits {
		opts = append(opts, pool.WithTierLimit(tier, n))
	}
	return opts
}

func (e EntryDef) entry() (domain.PoolEntry, error) {
	if e.ID == "" {
		return domain.PoolEntry{}, fmt.Errorf("entry %q: id is required", e.Name)
	}
	out := domain.PoolEntry{
		ID:       e.ID,
		Name:     e.Name,
		Kind:     e.Kind,
		Tier:     e.Tier,
		ImageRef: e.Image,
	}
	if out.Name == "" {
		out.Name = e.ID
	}
	if e.Rarity != "" {
		r, ok := catalog.ParseRarity(e.Rarity)
		if !ok {
			return domain.PoolEntry{}, fmt.Errorf("entry %s: unknown rarity %q", e.ID, e.Rarity)
		}
		out.Rarity = r
	}
	if out.Tier == "" {
		out.Tier = domain.Tier(out.Rarity.String())
	}

	switch e.Kind {
	case domain.PrizeCurrency:
		if !e.Currency.Valid() || e.Amount <= 0 {
			return domain.PoolEntry{}, fmt.Errorf("entry %s: currency entries need a currency and a positive amount", e.ID)
		}
		out.Category = domain.CategoryCurrencyGrant
		out.Currency = e.Currency
		out.Amount = e.Amount
	case domain.PrizeFragment:
		out.Category = domain.CategoryFragment
	case domain.PrizeItem:
		out.Category = domain.CategoryOther
		if e.Category != "" {
			c, ok := catalog.ParseCategory(e.Category)
			if !ok {
				return domain.PoolEntry{}, fmt.Errorf("entry %s: unknown category %q", e.ID, e.Category)
			}
			out.Category = c
		}
	default:
		return domain.PoolEntry{}, fmt.Errorf("entry %s: unknown kind %q", e.ID, e.Kind)
	}
	return out, nil
}

func (t TiersDef) table() (*lottery.TierTable, error) {
	if len(t.Bands) == 0 {
		return lottery.UniformTable(), nil
	}
	return lottery.NewTierTable(t.Bands, t.Base...)
}

func (c CompensationDef) resolve() (session.Compensation, error) {
	out := session.DefaultCompensation()
	if c.Currency != "" {
		if !c.Currency.Valid() {
			return out, fmt.Errorf("unknown compensation currency %q", c.Currency)
		}
		out.Currency = c.Currency
	}
	for raw, amount := range c.Amounts {
		r, ok := catalog.ParseRarity(raw)
		if !ok {
			return out, fmt.Errorf("unknown compensation rarity %q", raw)
		}
		if amount < 0 {
			return out, fmt.Errorf("compensation for %s must be >= 0", raw)
		}
		out.ByRarity[r] = amount
	}
	return out, nil
}
