package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var imageExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true}

type ImageMapCommand struct{}

func (c *ImageMapCommand) Name() string {
	return "imagemap"
}

func (c *ImageMapCommand) Description() string {
	return "Map item ids to artwork paths: imagemap <imagesDir> <out> [urlPrefix]"
}

func (c *ImageMapCommand) Run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: imagemap <imagesDir> <out> [urlPrefix]")
	}
	prefix := assetsURLRoot + "/images"
	if len(args) > 2 {
		prefix = args[2]
	}

	PrintHeader("Scanning images")
	imageMap, err := buildImageMap(args[0], prefix)
	if err != nil {
		return err
	}
	if err := writeJSON(args[1], imageMap); err != nil {
		return err
	}
	PrintSuccess("Generated image map with %d items at %s", len(imageMap), args[1])
	return nil
}

// buildImageMap walks dir and maps each image's base name (the item id)
// to its web path under prefix. The first file seen for an id wins.
func buildImageMap(dir, prefix string) (map[string]string, error) {
	imageMap := make(map[string]string)

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(d.Name())
		if !imageExtensions[strings.ToLower(ext)] {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		id := strings.TrimSuffix(d.Name(), ext)
		if existing, ok := imageMap[id]; ok {
			PrintWarning("Duplicate image for %s, keeping %s", id, existing)
			return nil
		}
		imageMap[id] = path.Join(prefix, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	return imageMap, nil
}

func writeJSON(out string, v any) error {
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, append(data, '\n'), outputFilePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	return nil
}
