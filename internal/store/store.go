// Package store persists the Building aggregate as a JSON document.
// Saving is always an explicit step invoked by the editing layer; the
// calculation core never touches the filesystem.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/heizwerk/heizlast/internal/model"
)

const DefaultBuildingName = "Mein Gebäude"

const filePrefix = "building_data"

// BuildingFilename derives the file name from the building name:
// building_data.json for the default name, otherwise
// building_data_<sanitized name>.json.
func BuildingFilename(buildingName string) string {
	if buildingName == "" || buildingName == DefaultBuildingName {
		return filePrefix + ".json"
	}

	var b strings.Builder
	for _, r := range buildingName {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	safe := strings.Trim(b.String(), "_")
	if safe == "" {
		return filePrefix + ".json"
	}
	return filePrefix + "_" + safe + ".json"
}

// FindBuildingFile returns the first building_data*.json in dir, in
// lexical order.
func FindBuildingFile(dir string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(dir, filePrefix+"*.json"))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)
	return matches[0], true
}

// Load reads, schema-validates and decodes a building document. The
// document is checked against the embedded JSON Schema before decoding
// so malformed files fail with a position, then the decoded entities are
// validated structurally.
func Load(path string) (*model.Building, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read building file: %w", err)
	}

	if err := validateDocument(data); err != nil {
		return nil, fmt.Errorf("building file %s: %w", path, err)
	}

	var b model.Building
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode building file %s: %w", path, err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("building file %s: %w", path, err)
	}
	return &b, nil
}

// LoadOrNew loads the first building file found in dir, or returns a
// fresh building with the default name when none exists.
func LoadOrNew(dir string) (*model.Building, error) {
	path, ok := FindBuildingFile(dir)
	if !ok {
		return &model.Building{Name: DefaultBuildingName, ThermalBridgeSurcharge: 0.05}, nil
	}
	return Load(path)
}

// Save writes the building to dir under its derived file name and
// returns the path written.
func Save(dir string, b *model.Building) (string, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode building: %w", err)
	}

	path := filepath.Join(dir, BuildingFilename(b.Name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write building file: %w", err)
	}
	return path, nil
}
