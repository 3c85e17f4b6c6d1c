package domain

import (
	"sort"
	"strings"
)

// MediaType is the category a front end uses to place an image
type MediaType string

const (
	MediaProduct   MediaType = "product"
	MediaCommunity MediaType = "community"
	MediaSite      MediaType = "site"
	MediaOther     MediaType = "other"
)

// classificationRules are checked in order; the first substring found wins.
var classificationRules = []struct {
	substr string
	kind   MediaType
}{
	{"products", MediaProduct},
	{"community", MediaCommunity},
	{"site", MediaSite},
}

// ImageExtensions is the default allow-list, compared against lowercased file names
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"}

// Entry represents one classified image in the manifest.
// Field order is the JSON key order of the generated file.
type Entry struct {
	Path string    `json:"path"`
	Name string    `json:"name"`
	Type MediaType `json:"type"`
}

// Manifest is the ordered list of entries produced by one scan
type Manifest []Entry

// NewEntry builds an entry for the file name found at the walked path
func NewEntry(walkedPath, name string) Entry {
	path := ToWebPath(walkedPath)
	return Entry{
		Path: path,
		Name: name,
		Type: Classify(path),
	}
}

// Classify maps a normalized path to its media type.
// Matching is a plain substring test anywhere in the path.
func Classify(path string) MediaType {
	for _, rule := range classificationRules {
		if strings.Contains(path, rule.substr) {
			return rule.kind
		}
	}
	return MediaOther
}

// IsImageFile reports whether name ends with one of the default image extensions
func IsImageFile(name string) bool {
	return HasExtension(name, ImageExtensions)
}

// HasExtension reports whether the lowercased name ends with any of exts
func HasExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// ToWebPath replaces backslash separators with forward slashes
func ToWebPath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// Counts returns the number of entries per media type
func (m Manifest) Counts() map[MediaType]int {
	counts := make(map[MediaType]int, len(classificationRules)+1)
	for _, e := range m {
		counts[e.Type]++
	}
	return counts
}

// Types returns the media types present in the manifest, sorted
func (m Manifest) Types() []MediaType {
	counts := m.Counts()
	types := make([]MediaType, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
