package models

import (
	"errors"
	"hash/fnv"
	"strings"
)

// Tag-related errors
var (
	ErrEmptyTagName   = errors.New("tag name cannot be empty")
	ErrTagNameTooLong = errors.New("tag name cannot exceed 50 characters")
)

// Tag represents a trip tag with display metadata.
type Tag struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

// TagRegistry holds all tag metadata for a project.
type TagRegistry struct {
	Tags []Tag `yaml:"tags"`
}

// DefaultColorPalette provides a curated set of colors for tags,
// chosen for good contrast on both light and dark terminals.
var DefaultColorPalette = []string{
	"#e74c3c", // red
	"#3498db", // blue
	"#2ecc71", // green
	"#f39c12", // orange
	"#9b59b6", // purple
	"#1abc9c", // turquoise
	"#e67e22", // dark orange
	"#16a085", // dark turquoise
	"#f1c40f", // yellow
	"#27ae60", // nephritis
	"#2980b9", // belize hole
	"#c0392b", // pomegranate
}

// NormalizeTagName lowercases and trims a tag name so lookups and
// uniqueness checks are case-insensitive.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateTagName checks a tag name for registry use.
func ValidateTagName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyTagName
	}
	if len(trimmed) > 50 {
		return ErrTagNameTooLong
	}
	return nil
}

// GetTagColor returns the registry color if set, otherwise a consistent
// palette color derived from the tag name.
func GetTagColor(tagName string, registryColor string) string {
	if registryColor != "" {
		return registryColor
	}
	h := fnv.New32a()
	h.Write([]byte(NormalizeTagName(tagName)))
	return DefaultColorPalette[h.Sum32()%uint32(len(DefaultColorPalette))]
}
