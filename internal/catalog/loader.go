package catalog

import (
	"bytes"
	"context"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/osse101/SpinVault_Go/internal/domain"
	"github.com/osse101/SpinVault_Go/internal/logger"
	"github.com/osse101/SpinVault_Go/internal/utils"
	"github.com/osse101/SpinVault_Go/internal/validation"
)

//go:embed schema/catalog_items.schema.json
var itemsSchema []byte

// Sources names the files a catalog is assembled from. Only ItemsPath is
// required; the supplementary feed and image map are skipped when absent.
type Sources struct {
	ItemsPath    string
	ExtraPath    string
	ImageMapPath string
	// SchemaPath overrides the embedded feed schema when set.
	SchemaPath string
}

// Loader reads, validates, and merges item feeds into a Catalog.
type Loader interface {
	Load(ctx context.Context, src Sources) (*Catalog, error)
	Parse(ctx context.Context, imageMap map[string]string, feeds ...[]byte) (*Catalog, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
	schema          string
}

// NewLoader creates a Loader validating feeds against the embedded schema.
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.RegisterSchema(ItemsSchemaName, itemsSchema); err != nil {
		return nil, err
	}
	return &loader{schemaValidator: v, schema: ItemsSchemaName}, nil
}

// record is one entry of a raw item feed.
type record struct {
	ItemID         flexibleID `json:"itemID"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Rare           string     `json:"Rare"`
	ItemType       string     `json:"itemType"`
	CollectionType string     `json:"collectionType"`
	Image          string     `json:"image"`
}

// flexibleID accepts both numeric and string ids.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New(ErrMsgInvalidItemID)
	}
	*f = flexibleID(n.String())
	return nil
}

func (l *loader) Load(ctx context.Context, src Sources) (*Catalog, error) {
	log := logger.FromContext(ctx)

	if src.SchemaPath != "" {
		l = &loader{schemaValidator: l.schemaValidator, schema: src.SchemaPath}
	}

	items, err := os.ReadFile(src.ItemsPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFeedFailed, src.ItemsPath, err)
	}
	feeds := [][]byte{items}

	if src.ExtraPath != "" {
		extra, err := os.ReadFile(src.ExtraPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Warn(LogMsgFeedSkipped, "path", src.ExtraPath)
		case err != nil:
			return nil, fmt.Errorf(ErrMsgReadFeedFailed, src.ExtraPath, err)
		default:
			feeds = append(feeds, extra)
		}
	}

	imageMap := map[string]string{}
	if src.ImageMapPath != "" {
		err := utils.LoadJSON(src.ImageMapPath, &imageMap)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Warn(LogMsgImageMapSkipped, "path", src.ImageMapPath)
		case err != nil:
			return nil, fmt.Errorf(ErrMsgImageMapFailed, src.ImageMapPath, err)
		}
	}

	c, err := l.Parse(ctx, imageMap, feeds...)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgCatalogLoaded,
		"items", c.Len(),
		"eligible", len(c.Eligible()),
		"fingerprint", c.Fingerprint())
	return c, nil
}

// Parse merges feeds in order. The first occurrence of an id wins; image
// references fall back to imageMap when a record has none.
func (l *loader) Parse(ctx context.Context, imageMap map[string]string, feeds ...[]byte) (*Catalog, error) {
	log := logger.FromContext(ctx)
	c := New()
	hash := sha256.New()

	for i, feed := range feeds {
		name := fmt.Sprintf("feed[%d]", i)
		if err := l.schemaValidator.ValidateBytes(feed, l.schema); err != nil {
			return nil, fmt.Errorf(ErrMsgSchemaFailed, name, err)
		}

		var records []record
		if err := json.Unmarshal(feed, &records); err != nil {
			return nil, fmt.Errorf(ErrMsgParseFeedFailed, name, err)
		}
		hash.Write(feed)

		for _, rec := range records {
			if rec.ItemID == "" {
				log.Warn(LogMsgMissingIDSkipped, "feed", name)
				continue
			}
			item := rec.descriptor(imageMap)
			if !c.add(item) {
				log.Warn(LogMsgDuplicateItem, "item_id", item.ID, "feed", name)
			}
		}
	}

	c.fingerprint = hex.EncodeToString(hash.Sum(nil))[:16]
	return c, nil
}

func (r record) descriptor(imageMap map[string]string) domain.ItemDescriptor {
	id := string(r.ItemID)

	name := strings.TrimSpace(r.Description)
	if name == "" {
		name = strings.TrimSpace(r.Name)
	}
	if name == "" {
		name = id
	}

	image := strings.TrimSpace(r.Image)
	if image == "" {
		image = imageMap[id]
	}

	return domain.ItemDescriptor{
		ID:       id,
		Name:     name,
		Category: deriveCategory(r.ItemType, r.CollectionType, r.Description),
		Rarity:   NormalizeRarity(r.Rare),
		ImageRef: image,
	}
}
