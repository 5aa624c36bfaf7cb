package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// extraSources are the artwork folders turned into supplementary records,
// keyed by folder name with the item type each one produces.
var extraSources = []struct {
	Folder   string
	ItemType string
}{
	{Folder: "BANNER", ItemType: "BANNER"},
	{Folder: "AVATARS", ItemType: "AVATAR"},
}

// extraItem matches the catalog feed record layout.
type extraItem struct {
	ItemID      any    `json:"itemID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rare        string `json:"Rare"`
	ItemType    string `json:"itemType"`
	Image       string `json:"image"`
	IsUnique    bool   `json:"isUnique"`
}

type ExtraItemsCommand struct{}

func (c *ExtraItemsCommand) Name() string {
	return "extraitems"
}

func (c *ExtraItemsCommand) Description() string {
	return "Build the supplementary item feed: extraitems <imagesDir> <out> [urlPrefix]"
}

func (c *ExtraItemsCommand) Run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: extraitems <imagesDir> <out> [urlPrefix]")
	}
	prefix := assetsURLRoot + "/images"
	if len(args) > 2 {
		prefix = args[2]
	}

	PrintHeader("Scanning banners and avatars")
	items, counts, err := scanExtraItems(args[0], prefix)
	if err != nil {
		return err
	}
	for _, src := range extraSources {
		PrintInfo("Found %d %s items", counts[src.ItemType], strings.ToLower(src.ItemType))
	}
	if err := writeJSON(args[1], items); err != nil {
		return err
	}
	PrintSuccess("Saved %d items to %s", len(items), args[1])
	return nil
}

// scanExtraItems reads <dir>/<folder>/<rarity>/<id>.png for every extra
// source. A missing source folder is skipped with a warning.
func scanExtraItems(dir, prefix string) ([]extraItem, map[string]int, error) {
	items := []extraItem{}
	counts := make(map[string]int)

	for _, src := range extraSources {
		rarities, err := os.ReadDir(filepath.Join(dir, src.Folder))
		if errors.Is(err, fs.ErrNotExist) {
			PrintWarning("Directory not found: %s", filepath.Join(dir, src.Folder))
			continue
		}
		if err != nil {
			return nil, nil, err
		}

		for _, rarity := range rarities {
			if !rarity.IsDir() {
				continue
			}
			files, err := os.ReadDir(filepath.Join(dir, src.Folder, rarity.Name()))
			if err != nil {
				return nil, nil, err
			}
			for _, f := range files {
				if f.IsDir() || !strings.EqualFold(filepath.Ext(f.Name()), pngExtension) {
					continue
				}
				id := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
				items = append(items, extraItem{
					ItemID:      parseItemID(id),
					Name:        fmt.Sprintf("%s %s", src.ItemType, id),
					Description: fmt.Sprintf("A %s %s", rarity.Name(), src.ItemType),
					Rare:        rarity.Name(),
					ItemType:    src.ItemType,
					Image:       path.Join(prefix, src.Folder, rarity.Name(), f.Name()),
					IsUnique:    true,
				})
				counts[src.ItemType]++
			}
		}
	}
	return items, counts, nil
}

// parseItemID keeps numeric ids numeric so they merge with the bulk feed.
func parseItemID(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil && n >= 0 {
		return n
	}
	return id
}
