package catalog

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinVault_Go/internal/domain"
)

const bulkFeed = `[
	{"itemID": 101, "description": "Scar - Megalodon", "Rare": "RED", "collectionType": "WEAPON_SKIN", "image": "/assets/101.png"},
	{"itemID": 102, "description": "Hip Hop Top", "Rare": "PURPLE", "itemType": "CLOTHES_TOP"},
	{"itemID": 103, "description": "Monster Truck", "Rare": "BLUE", "itemType": "VEHICLE", "image": "/assets/placeholder.png"},
	{"itemID": 104, "description": "", "name": "Plain Avatar", "Rare": "WHITE", "itemType": "AVATAR"}
]`

const extraFeed = `[
	{"itemID": "banner_booyah", "name": "Booyah Banner", "Rare": "legendary", "itemType": "BANNER", "image": "/assets/banner/booyah.png"},
	{"itemID": 101, "description": "Duplicate Scar", "Rare": "WHITE", "image": "/assets/other.png"}
]`

func newTestLoader(t *testing.T) Loader {
	t.Helper()
	l, err := NewLoader()
	require.NoError(t, err)
	return l
}

func TestParse_MergesFeeds(t *testing.T) {
	l := newTestLoader(t)
	imageMap := map[string]string{"102": "/assets/102.png", "101": "/assets/ignored.png"}

	c, err := l.Parse(context.Background(), imageMap, []byte(bulkFeed), []byte(extraFeed))
	require.NoError(t, err)

	assert.Equal(t, 5, c.Len())
	assert.NotEmpty(t, c.Fingerprint())

	scar, ok := c.Lookup("101")
	require.True(t, ok)
	assert.Equal(t, "Scar - Megalodon", scar.Name, "first-seen record wins")
	assert.Equal(t, "/assets/101.png", scar.ImageRef, "record image beats image map")
	assert.Equal(t, domain.RarityMythic, scar.Rarity)
	assert.Equal(t, domain.CategoryWeaponSkin, scar.Category)

	top, _ := c.Lookup("102")
	assert.Equal(t, "/assets/102.png", top.ImageRef, "image map fills missing image")
	assert.Equal(t, domain.CategoryClothing, top.Category)

	avatar, _ := c.Lookup("104")
	assert.Equal(t, "Plain Avatar", avatar.Name, "name used when description is empty")
	assert.Empty(t, avatar.ImageRef)

	banner, ok := c.Lookup("banner_booyah")
	require.True(t, ok)
	assert.Equal(t, domain.RarityLegendary, banner.Rarity)

	assert.Equal(t, []domain.ItemID{"101", "102", "banner_booyah"}, ids(c.Eligible()))
}

func TestParse_DuplicateLoggedAsWarning(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	_, err := newTestLoader(t).Parse(context.Background(), nil, []byte(bulkFeed), []byte(extraFeed))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"level":"WARN","msg":"`+LogMsgDuplicateItem+`"`)
	assert.Contains(t, buf.String(), `"item_id":"101"`)
}

func TestParse_RejectsInvalidFeed(t *testing.T) {
	l := newTestLoader(t)

	_, err := l.Parse(context.Background(), nil, []byte(`[{"description": "no id"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")

	_, err = l.Parse(context.Background(), nil, []byte(`{"itemID": 1}`))
	assert.Error(t, err)
}

func TestParse_SameInputSameFingerprint(t *testing.T) {
	l := newTestLoader(t)
	a, err := l.Parse(context.Background(), nil, []byte(bulkFeed))
	require.NoError(t, err)
	b, err := l.Parse(context.Background(), nil, []byte(bulkFeed))
	require.NoError(t, err)
	c, err := l.Parse(context.Background(), nil, []byte(extraFeed))
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestLoad_FromFiles(t *testing.T) {
	dir := t.TempDir()
	itemsPath := filepath.Join(dir, "items.json")
	extraPath := filepath.Join(dir, "extra.json")
	mapPath := filepath.Join(dir, "image_map.json")
	require.NoError(t, os.WriteFile(itemsPath, []byte(bulkFeed), 0o644))
	require.NoError(t, os.WriteFile(extraPath, []byte(extraFeed), 0o644))
	require.NoError(t, os.WriteFile(mapPath, []byte(`{"104": "/assets/104.png"}`), 0o644))

	l := newTestLoader(t)
	c, err := l.Load(context.Background(), Sources{ItemsPath: itemsPath, ExtraPath: extraPath, ImageMapPath: mapPath})
	require.NoError(t, err)

	avatar, _ := c.Lookup("104")
	assert.Equal(t, "/assets/104.png", avatar.ImageRef)
	_, ok := c.Lookup("banner_booyah")
	assert.True(t, ok)
}

func TestLoad_OptionalFilesMissing(t *testing.T) {
	dir := t.TempDir()
	itemsPath := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(itemsPath, []byte(bulkFeed), 0o644))

	l := newTestLoader(t)
	c, err := l.Load(context.Background(), Sources{
		ItemsPath:    itemsPath,
		ExtraPath:    filepath.Join(dir, "missing_extra.json"),
		ImageMapPath: filepath.Join(dir, "missing_map.json"),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
}

func TestLoad_MissingItemsFeed(t *testing.T) {
	l := newTestLoader(t)
	_, err := l.Load(context.Background(), Sources{ItemsPath: filepath.Join(t.TempDir(), "none.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog feed")
}

func TestFlexibleID(t *testing.T) {
	var id flexibleID
	require.NoError(t, id.UnmarshalJSON([]byte(`906000123`)))
	assert.Equal(t, flexibleID("906000123"), id)

	require.NoError(t, id.UnmarshalJSON([]byte(`" evo_ak "`)))
	assert.Equal(t, flexibleID("evo_ak"), id)

	assert.Error(t, id.UnmarshalJSON([]byte(`true`)))
}
