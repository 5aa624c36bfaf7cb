package royale

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/lottery"
	"github.com/osse101/SpinVault_Go/internal/pool"
	"github.com/osse101/SpinVault_Go/internal/session"
)

// Game is the public summary of a configured game.
type Game struct {
	Key      string          `json:"key"`
	Name     string          `json:"name"`
	Currency domain.Currency `json:"currency"`
	Offers   []Offer         `json:"offers"`
	PoolSize int             `json:"pool_size"`
}

// game is a definition resolved against the catalog.
type game struct {
	def          GameDef
	pool         []domain.PoolEntry
	table        *lottery.TierTable
	grand        *lottery.GrandPrize
	compensation session.Compensation
	reveal       time.Duration
}

// Registry holds every game with its pool built. The catalog is immutable,
// so pools are built once.
type Registry struct {
	games []*game
	byKey map[string]*game
}

type registryOptions struct {
	reveal    time.Duration
	overrides map[string]time.Duration
}

// Option tunes a Registry.
type Option func(*registryOptions)

// WithDefaultReveal sets the reveal delay for games that do not declare one.
func WithDefaultReveal(d time.Duration) Option {
	return func(o *registryOptions) { o.reveal = d }
}

// WithReveal forces the reveal delay of one game.
func WithReveal(key string, d time.Duration) Option {
	return func(o *registryOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]time.Duration)
		}
		o.overrides[key] = d
	}
}

// NewRegistry resolves defs against src. defs must already be valid.
func NewRegistry(ctx context.Context, defs *Definitions, src pool.Source, opts ...Option) (*Registry, error) {
	if err := defs.Validate(); err != nil {
		return nil, err
	}
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := logger.FromContext(ctx)
	builder := pool.NewBuilder(src)
	r := &Registry{byKey: make(map[string]*game, len(defs.Games))}

	for _, def := range defs.Games {
		g, err := resolve(def, builder)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, def.Key, err)
		}

		g.reveal = o.reveal
		if def.Reveal > 0 {
			g.reveal = def.Reveal
		}
		if d, ok := o.overrides[def.Key]; ok {
			g.reveal = d
		}

		fillers := len(def.Fillers) + len(def.Static)
		if len(g.pool) == fillers {
			log.Warn(LogMsgGameWithoutItems, LogFieldGame, def.Key, LogFieldFillers, fillers)
		}
		if def.GrandPrize != nil && g.grand == nil {
			log.Warn(LogMsgNoGrandPrize, LogFieldGame, def.Key)
		}

		r.games = append(r.games, g)
		r.byKey[def.Key] = g
	}

	log.Info(LogMsgDefinitionsLoaded, LogFieldCount, len(r.games))
	return r, nil
}

func resolve(def GameDef, builder *pool.Builder) (*game, error) {
	g := &game{def: def, compensation: session.DefaultCompensation()}

	for _, s := range def.Sources {
		pred, tierOf, err := s.build()
		if err != nil {
			return nil, err
		}
		g.pool = append(g.pool, builder.Items(pred, tierOf, s.options()...)...)
	}
	for _, e := range append(append([]EntryDef(nil), def.Static...), def.Fillers...) {
		entry, err := e.entry()
		if err != nil {
			return nil, err
		}
		g.pool = append(g.pool, entry)
	}

	table, err := def.Tiers.table()
	if err != nil {
		return nil, err
	}
	g.table = table

	if gp := def.GrandPrize; gp != nil && gp.Chance > 0 {
		pred, err := gp.Match.predicate()
		if err != nil {
			return nil, err
		}
		var opts []pool.Option
		if gp.Limit > 0 {
			opts = append(opts, pool.WithMaxItems(gp.Limit))
		}
		entries := builder.Items(pred, pool.ByRarity(), opts...)
		if len(entries) > 0 {
			g.grand = &lottery.GrandPrize{Entries: entries, Chance: gp.Chance}
		}
	}

	if def.Compensation != nil {
		c, err := def.Compensation.resolve()
		if err != nil {
			return nil, err
		}
		g.compensation = c
	}
	return g, nil
}

// Games lists every game in file order.
func (r *Registry) Games() []Game {
	out := make([]Game, 0, len(r.games))
	for _, g := range r.games {
		out = append(out, Game{
			Key:      g.def.Key,
			Name:     g.def.Name,
			Currency: g.def.Currency,
			Offers:   append([]Offer(nil), g.def.Offers...),
			PoolSize: len(g.pool),
		})
	}
	return out
}

// Params builds the session parameters for buying draws of game key.
func (r *Registry) Params(key string, draws int) (session.Params, error) {
	g, ok := r.byKey[key]
	if !ok {
		return session.Params{}, fmt.Errorf("%w: %s", domain.ErrGameNotFound, key)
	}
	for _, o := range g.def.Offers {
		if o.Draws != draws {
			continue
		}
		return session.Params{
			Game:         g.def.Key,
			Counter:      g.def.Counter,
			Pool:         g.pool,
			Table:        g.table,
			Grand:        g.grand,
			Cost:         o.Cost,
			Currency:     g.def.Currency,
			DrawCount:    o.Draws,
			XPAward:      g.def.XP,
			RevealDelay:  g.reveal,
			Compensation: g.compensation,
		}, nil
	}
	return session.Params{}, fmt.Errorf("%w: %s has no %d-draw offer", domain.ErrOfferNotFound, key, draws)
}

// Preview returns the first n pool entries of game key, grand prize
// entries first.
func (r *Registry) Preview(key string, n int) ([]domain.PoolEntry, error) {
	g, ok := r.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrGameNotFound, key)
	}
	if n <= 0 {
		n = DefaultPreviewSize
	}
	var all []domain.PoolEntry
	if g.grand != nil {
		all = append(all, g.grand.Entries...)
	}
	all = append(all, g.pool...)
	if n > len(all) {
		n = len(all)
	}
	return append([]domain.PoolEntry(nil), all[:n]...), nil
}
