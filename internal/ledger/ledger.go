package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/metrics"
	"github.com/osse101/SpinVault_Go/internal/storage"
	"github.com/osse101/SpinVault_Go/internal/utils"
)

// Defaults is the state a brand new player starts with.
type Defaults struct {
	Gold     int64
	Diamonds int64
	Name     string
	Bio      string
}

// Ledger is one player's economy state. Every mutation is written through
// to the store before it becomes visible; a failed write leaves the
// in-memory state untouched.
//
// Methods are safe for concurrent use within a process. Two processes
// sharing a store race as last-write-wins.
type Ledger struct {
	mu       sync.Mutex
	playerID string
	store    storage.Store
	defaults Defaults

	gold      int64
	diamonds  int64
	xp        int64
	profile   domain.Profile
	inventory []domain.OwnedItem
	owned     map[domain.ItemID]struct{}
	equipped  map[domain.Slot]domain.ItemID
}

// Load reads a player's ledger from the store. Missing fields take their
// defaults and are persisted. Fields that fail to parse are reset to their
// defaults, persisted, and reported; loading never fails on bad data.
func Load(ctx context.Context, store storage.Store, playerID string, defaults Defaults) (*Ledger, error) {
	log := logger.FromContext(ctx)

	l := &Ledger{
		playerID: playerID,
		store:    store,
		defaults: defaults,
		owned:    make(map[domain.ItemID]struct{}),
		equipped: make(map[domain.Slot]domain.ItemID),
	}

	repairs := make(map[string]string)
	var loadErr error
	field := func(key string) (string, bool) {
		if loadErr != nil {
			return "", false
		}
		raw, ok, err := store.Get(ctx, playerID, key)
		if err != nil {
			loadErr = err
		}
		return raw, ok
	}
	malformed := func(key, raw string) {
		log.Warn(LogMsgMalformedFieldDrop, LogFieldPlayerID, playerID, LogFieldField, key, LogFieldRaw, raw)
		metrics.PersistedStateResets.WithLabelValues(key).Inc()
	}

	loadInt := func(key string, def int64) int64 {
		raw, ok := field(key)
		if !ok {
			repairs[key] = strconv.FormatInt(def, 10)
			return def
		}
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || v < 0 {
			malformed(key, raw)
			repairs[key] = strconv.FormatInt(def, 10)
			return def
		}
		return v
	}

	l.gold = loadInt(KeyGold, defaults.Gold)
	l.diamonds = loadInt(KeyDiamonds, defaults.Diamonds)
	l.xp = loadInt(KeyXP, 0)

	if raw, ok := field(KeyInventory); ok {
		var items []domain.OwnedItem
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			malformed(KeyInventory, raw)
			repairs[KeyInventory] = "[]"
		} else {
			for _, item := range items {
				l.appendItem(item)
			}
		}
	} else {
		repairs[KeyInventory] = "[]"
	}

	if raw, ok := field(KeyEquipped); ok {
		var slots map[domain.Slot]*domain.ItemID
		if err := json.Unmarshal([]byte(raw), &slots); err != nil {
			malformed(KeyEquipped, raw)
			repairs[KeyEquipped] = "{}"
		} else {
			for slot, id := range slots {
				if id != nil && *id != "" && slot.Valid() {
					l.equipped[slot] = *id
				}
			}
		}
	} else {
		repairs[KeyEquipped] = "{}"
	}

	l.profile.Name = defaults.Name
	if raw, ok := field(KeyName); ok && raw != "" {
		l.profile.Name = raw
	} else if !ok {
		repairs[KeyName] = defaults.Name
	}
	l.profile.Bio = defaults.Bio
	if raw, ok := field(KeyBio); ok {
		l.profile.Bio = raw
	} else {
		repairs[KeyBio] = defaults.Bio
	}

	if loadErr != nil {
		return nil, loadErr
	}

	if len(repairs) > 0 {
		if err := store.SetMany(ctx, playerID, repairs); err != nil {
			return nil, err
		}
		if len(repairs) == len(allKeys) {
			log.Info(LogMsgLedgerCreated, LogFieldPlayerID, playerID)
		}
	}
	return l, nil
}

var allKeys = []string{KeyGold, KeyDiamonds, KeyXP, KeyInventory, KeyEquipped, KeyName, KeyBio}

// PlayerID returns the owning player's id.
func (l *Ledger) PlayerID() string {
	return l.playerID
}

// Balance returns the current balance of currency c.
func (l *Ledger) Balance(c domain.Currency) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balanceLocked(c)
}

// Add credits amount of c. Balances saturate instead of overflowing.
func (l *Ledger) Add(ctx context.Context, c domain.Currency, amount int64) error {
	if err := checkAmount(c, amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.setBalanceLocked(ctx, c, utils.AddInt64(l.balanceLocked(c), amount))
}

// Subtract debits amount of c. It reports false, leaving the balance
// untouched, when the balance is smaller than amount.
func (l *Ledger) Subtract(ctx context.Context, c domain.Currency, amount int64) (bool, error) {
	err := l.Debit(ctx, c, amount)
	if err == nil {
		return true, nil
	}
	var short *domain.InsufficientFundsError
	if errors.As(err, &short) {
		return false, nil
	}
	return false, err
}

// Debit is Subtract returning *domain.InsufficientFundsError on a short balance.
func (l *Ledger) Debit(ctx context.Context, c domain.Currency, amount int64) error {
	if err := checkAmount(c, amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balanceLocked(c)
	if balance < amount {
		return &domain.InsufficientFundsError{Currency: c, Required: amount, Available: balance}
	}
	return l.setBalanceLocked(ctx, c, balance-amount)
}

func (l *Ledger) AddGold(ctx context.Context, amount int64) error {
	return l.Add(ctx, domain.CurrencyGold, amount)
}

func (l *Ledger) SubtractGold(ctx context.Context, amount int64) (bool, error) {
	return l.Subtract(ctx, domain.CurrencyGold, amount)
}

func (l *Ledger) AddDiamonds(ctx context.Context, amount int64) error {
	return l.Add(ctx, domain.CurrencyDiamonds, amount)
}

func (l *Ledger) SubtractDiamonds(ctx context.Context, amount int64) (bool, error) {
	return l.Subtract(ctx, domain.CurrencyDiamonds, amount)
}

// Owns reports whether the item is in the inventory.
func (l *Ledger) Owns(id domain.ItemID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.owned[id]
	return ok
}

// AddItem appends item to the inventory. It reports false without
// changing anything when the item is already owned.
func (l *Ledger) AddItem(ctx context.Context, item domain.OwnedItem) (bool, error) {
	if item.ID == "" {
		return false, fmt.Errorf("%w: empty item id", domain.ErrInvalidInput)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.owned[item.ID]; ok {
		return false, nil
	}

	next := append(append([]domain.OwnedItem(nil), l.inventory...), item)
	if err := l.persistJSON(ctx, KeyInventory, next); err != nil {
		return false, err
	}
	l.appendItem(item)
	return true, nil
}

// Inventory returns a copy of the owned items in acquisition order.
func (l *Ledger) Inventory() []domain.OwnedItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.OwnedItem(nil), l.inventory...)
}

// Equip puts an owned item into a slot. The item's category must match
// the slot.
func (l *Ledger) Equip(ctx context.Context, slot domain.Slot, id domain.ItemID) error {
	if !slot.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSlot, slot)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.findLocked(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotOwned, id)
	}
	if !slot.Accepts(item.Category) {
		return fmt.Errorf("%w: %s is %s, slot is %s", domain.ErrSlotMismatch, id, item.Category, slot)
	}

	next := make(map[domain.Slot]domain.ItemID, len(l.equipped)+1)
	for k, v := range l.equipped {
		next[k] = v
	}
	next[slot] = id
	if err := l.persistJSON(ctx, KeyEquipped, next); err != nil {
		return err
	}
	l.equipped = next
	return nil
}

// UpdateProfile replaces the display name and bio. The name may not be blank.
func (l *Ledger) UpdateProfile(ctx context.Context, name, bio string) error {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("%w: name must be 1-%d characters", domain.ErrInvalidInput, MaxNameLength)
	}
	if utf8.RuneCountInString(bio) > MaxBioLength {
		return fmt.Errorf("%w: bio must be at most %d characters", domain.ErrInvalidInput, MaxBioLength)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.store.SetMany(ctx, l.playerID, map[string]string{KeyName: name, KeyBio: bio}); err != nil {
		return err
	}
	l.profile = domain.Profile{Name: name, Bio: bio}
	return nil
}

// AddXP adds experience and reports whether the level went up.
func (l *Ledger) AddXP(ctx context.Context, amount int64) (bool, error) {
	if amount < 0 {
		return false, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	before := domain.Level(l.xp)
	next := utils.AddInt64(l.xp, amount)
	if err := l.store.Set(ctx, l.playerID, KeyXP, strconv.FormatInt(next, 10)); err != nil {
		return false, err
	}
	l.xp = next
	return domain.Level(next) > before, nil
}

// XP returns accumulated experience.
func (l *Ledger) XP() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.xp
}

// Level returns the level derived from XP.
func (l *Ledger) Level() int {
	return domain.Level(l.XP())
}

// Snapshot returns a consistent copy of the whole ledger.
func (l *Ledger) Snapshot() domain.LedgerSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	equipped := make(map[domain.Slot]domain.ItemID, len(l.equipped))
	for k, v := range l.equipped {
		equipped[k] = v
	}
	return domain.LedgerSnapshot{
		PlayerID:  l.playerID,
		Gold:      l.gold,
		Diamonds:  l.diamonds,
		XP:        l.xp,
		Level:     domain.Level(l.xp),
		Profile:   l.profile,
		Inventory: append([]domain.OwnedItem{}, l.inventory...),
		Equipped:  equipped,
	}
}

// ItemLookup resolves current catalog data for an item id.
type ItemLookup interface {
	Lookup(id domain.ItemID) (domain.ItemDescriptor, bool)
}

// RefreshImages replaces stale inventory image references with the
// catalog's current ones. Items the catalog no longer knows are kept as is.
func (l *Ledger) RefreshImages(ctx context.Context, catalog ItemLookup) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := append([]domain.OwnedItem(nil), l.inventory...)
	changed := 0
	for i, item := range next {
		fresh, ok := catalog.Lookup(item.ID)
		if ok && fresh.ImageRef != "" && fresh.ImageRef != item.ImageRef {
			next[i].ImageRef = fresh.ImageRef
			changed++
		}
	}
	if changed == 0 {
		return nil
	}
	if err := l.persistJSON(ctx, KeyInventory, next); err != nil {
		return err
	}
	l.inventory = next
	logger.FromContext(ctx).Debug(LogMsgImagesRefreshed, LogFieldPlayerID, l.playerID, LogFieldCount, changed)
	return nil
}

func (l *Ledger) appendItem(item domain.OwnedItem) {
	if _, ok := l.owned[item.ID]; ok || item.ID == "" {
		return
	}
	l.owned[item.ID] = struct{}{}
	l.inventory = append(l.inventory, item)
}

func (l *Ledger) findLocked(id domain.ItemID) (domain.OwnedItem, bool) {
	for _, item := range l.inventory {
		if item.ID == id {
			return item, true
		}
	}
	return domain.OwnedItem{}, false
}

func (l *Ledger) balanceLocked(c domain.Currency) int64 {
	if c == domain.CurrencyDiamonds {
		return l.diamonds
	}
	return l.gold
}

func (l *Ledger) setBalanceLocked(ctx context.Context, c domain.Currency, value int64) error {
	key := KeyGold
	if c == domain.CurrencyDiamonds {
		key = KeyDiamonds
	}
	if err := l.store.Set(ctx, l.playerID, key, strconv.FormatInt(value, 10)); err != nil {
		logger.FromContext(ctx).Error(LogMsgPersistFailed, LogFieldPlayerID, l.playerID, LogFieldField, key, "error", err)
		return err
	}
	if c == domain.CurrencyDiamonds {
		l.diamonds = value
	} else {
		l.gold = value
	}
	return nil
}

func (l *Ledger) persistJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := l.store.Set(ctx, l.playerID, key, string(data)); err != nil {
		logger.FromContext(ctx).Error(LogMsgPersistFailed, LogFieldPlayerID, l.playerID, LogFieldField, key, "error", err)
		return err
	}
	return nil
}

func checkAmount(c domain.Currency, amount int64) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCurrency, c)
	}
	if amount < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	return nil
}
