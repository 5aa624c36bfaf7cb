package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinVault_Go/internal/catalog"
	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/metrics"
	"github.com/osse101/SpinVault_Go/internal/storage"
)

var testDefaults = Defaults{Gold: 1000, Diamonds: 100, Name: "Survivor", Bio: "I love Free Fire!"}

func newTestLedger(t *testing.T) (*Ledger, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	l, err := Load(context.Background(), store, "p1", testDefaults)
	require.NoError(t, err)
	return l, store
}

func avatar(id string) domain.OwnedItem {
	return domain.OwnedItem{ID: id, Name: "Avatar " + id, Category: domain.CategoryAvatar, Rarity: domain.RarityEpic, ImageRef: "/assets/" + id + ".png"}
}

func TestLoad_NewPlayerGetsDefaults(t *testing.T) {
	l, store := newTestLedger(t)

	snap := l.Snapshot()
	assert.Equal(t, int64(1000), snap.Gold)
	assert.Equal(t, int64(100), snap.Diamonds)
	assert.Equal(t, int64(0), snap.XP)
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, "Survivor", snap.Profile.Name)
	assert.Equal(t, "I love Free Fire!", snap.Profile.Bio)
	assert.Empty(t, snap.Inventory)
	assert.Empty(t, snap.Equipped)

	raw, ok, err := store.Get(context.Background(), "p1", KeyGold)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1000", raw)
}

func TestLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLedger(t)

	require.NoError(t, l.AddGold(ctx, 50))
	ok, err := l.SubtractDiamonds(ctx, 30)
	require.NoError(t, err)
	require.True(t, ok)
	added, err := l.AddItem(ctx, avatar("900"))
	require.NoError(t, err)
	require.True(t, added)
	require.NoError(t, l.Equip(ctx, domain.SlotAvatar, "900"))
	_, err = l.AddXP(ctx, 400)
	require.NoError(t, err)
	require.NoError(t, l.UpdateProfile(ctx, "Booyah", "hi"))

	reloaded, err := Load(ctx, store, "p1", testDefaults)
	require.NoError(t, err)
	assert.Equal(t, l.Snapshot(), reloaded.Snapshot())
}

func TestLoad_MalformedFieldsReset(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.SetMany(ctx, "p1", map[string]string{
		KeyGold:      "lots",
		KeyDiamonds:  "77",
		KeyInventory: "{not json",
		KeyEquipped:  `{"avatar":null,"banner":"5","hat":"9"}`,
	}))
	before := testutil.ToFloat64(metrics.PersistedStateResets.WithLabelValues(KeyGold))

	l, err := Load(ctx, store, "p1", testDefaults)
	require.NoError(t, err)

	snap := l.Snapshot()
	assert.Equal(t, int64(1000), snap.Gold, "unparseable gold falls back to the seed")
	assert.Equal(t, int64(77), snap.Diamonds, "well-formed fields are kept")
	assert.Empty(t, snap.Inventory)
	assert.Equal(t, map[domain.Slot]domain.ItemID{domain.SlotBanner: "5"}, snap.Equipped)

	raw, _, err := store.Get(ctx, "p1", KeyGold)
	require.NoError(t, err)
	assert.Equal(t, "1000", raw, "reset value is persisted")
	raw, _, err = store.Get(ctx, "p1", KeyInventory)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.PersistedStateResets.WithLabelValues(KeyGold)))
}

func TestLoad_NegativeBalanceIsMalformed(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "p1", KeyXP, "-5"))

	l, err := Load(ctx, store, "p1", testDefaults)
	require.NoError(t, err)
	assert.Equal(t, int64(0), l.XP())
}

func TestSubtract_InsufficientLeavesBalance(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)

	ok, err := l.SubtractGold(ctx, 1001)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(1000), l.Balance(domain.CurrencyGold))

	ok, err = l.SubtractGold(ctx, 1000)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(0), l.Balance(domain.CurrencyGold))
}

func TestDebit_TypedError(t *testing.T) {
	l, _ := newTestLedger(t)

	err := l.Debit(context.Background(), domain.CurrencyDiamonds, 500)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	var short *domain.InsufficientFundsError
	require.True(t, errors.As(err, &short))
	assert.Equal(t, int64(500), short.Required)
	assert.Equal(t, int64(100), short.Available)
	assert.Equal(t, domain.CurrencyDiamonds, short.Currency)
}

func TestAmountValidation(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)

	assert.ErrorIs(t, l.AddGold(ctx, -1), domain.ErrInvalidAmount)
	_, err := l.SubtractGold(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = l.AddXP(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.ErrorIs(t, l.Add(ctx, "coins", 1), domain.ErrInvalidCurrency)
}

func TestAdd_Saturates(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	l, err := Load(ctx, store, "p1", Defaults{Gold: 9223372036854775800})
	require.NoError(t, err)

	require.NoError(t, l.AddGold(ctx, 100))
	assert.Equal(t, int64(9223372036854775807), l.Balance(domain.CurrencyGold))
}

func TestAddItem_Duplicate(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)

	added, err := l.AddItem(ctx, avatar("1"))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = l.AddItem(ctx, avatar("1"))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Len(t, l.Inventory(), 1)
	assert.True(t, l.Owns("1"))
	assert.False(t, l.Owns("2"))
}

func TestEquip(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)
	_, err := l.AddItem(ctx, avatar("1"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		slot    domain.Slot
		id      domain.ItemID
		wantErr error
	}{
		{"unknown slot", "hat", "1", domain.ErrInvalidSlot},
		{"not owned", domain.SlotAvatar, "2", domain.ErrNotOwned},
		{"wrong category", domain.SlotBanner, "1", domain.ErrSlotMismatch},
		{"ok", domain.SlotAvatar, "1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := l.Equip(ctx, tt.slot, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.ItemID("1"), l.Snapshot().Equipped[domain.SlotAvatar])
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)

	require.NoError(t, l.UpdateProfile(ctx, "  Kelly  ", "sprinter"))
	assert.Equal(t, domain.Profile{Name: "Kelly", Bio: "sprinter"}, l.Snapshot().Profile)

	assert.ErrorIs(t, l.UpdateProfile(ctx, "   ", "bio"), domain.ErrInvalidInput)
	assert.Equal(t, "Kelly", l.Snapshot().Profile.Name)
}

func TestAddXP_LevelUp(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)

	up, err := l.AddXP(ctx, 99)
	require.NoError(t, err)
	assert.False(t, up)
	assert.Equal(t, 1, l.Level())

	up, err = l.AddXP(ctx, 1)
	require.NoError(t, err)
	assert.True(t, up)
	assert.Equal(t, 2, l.Level())

	up, err = l.AddXP(ctx, 9900)
	require.NoError(t, err)
	assert.True(t, up)
	assert.Equal(t, 11, l.Level())
	assert.Equal(t, 11, l.Snapshot().Level)
}

func TestRefreshImages(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLedger(t)
	_, err := l.AddItem(ctx, avatar("1"))
	require.NoError(t, err)
	_, err = l.AddItem(ctx, avatar("2"))
	require.NoError(t, err)

	cat := catalog.New(domain.ItemDescriptor{ID: "1", Name: "Avatar 1", Category: domain.CategoryAvatar, ImageRef: "/assets/new.png"})
	require.NoError(t, l.RefreshImages(ctx, cat))

	inv := l.Inventory()
	assert.Equal(t, "/assets/new.png", inv[0].ImageRef)
	assert.Equal(t, "/assets/2.png", inv[1].ImageRef)

	raw, _, err := store.Get(ctx, "p1", KeyInventory)
	require.NoError(t, err)
	assert.Contains(t, raw, "/assets/new.png")
}

// failingStore lets a test make individual writes fail.
type failingStore struct {
	*storage.MemoryStore
	mock.Mock
}

func (f *failingStore) Set(ctx context.Context, ns, key, value string) error {
	args := f.Called(key)
	if err := args.Error(0); err != nil {
		return err
	}
	return f.MemoryStore.Set(ctx, ns, key, value)
}

func TestWriteFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{MemoryStore: storage.NewMemoryStore()}
	l, err := Load(ctx, store, "p1", testDefaults)
	require.NoError(t, err)

	store.On("Set", KeyGold).Return(domain.ErrStorage)
	store.On("Set", KeyInventory).Return(domain.ErrStorage)

	assert.ErrorIs(t, l.AddGold(ctx, 10), domain.ErrStorage)
	assert.Equal(t, int64(1000), l.Balance(domain.CurrencyGold))

	_, err = l.AddItem(ctx, avatar("1"))
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.False(t, l.Owns("1"))

	store.AssertExpectations(t)
}
