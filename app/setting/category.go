package setting

import "fmt"

// Category identifies a configuration bucket persisted to its own file.
type Category string

// Known categories. Config lives in the global config directory; Setting is
// the active preset file, named by the user; the rest are style files shared
// across presets.
const (
	Config    Category = "config"
	Setting   Category = "setting"
	Classes   Category = "classes"
	Heatmap   Category = "heatmap"
	Brands    Category = "brands"
	Brakes    Category = "brakes"
	Compounds Category = "compounds"
)

// All lists the known categories in their canonical save order.
func All() []Category {
	return []Category{Config, Setting, Classes, Heatmap, Brands, Brakes, Compounds}
}

// Parse converts a string to a known Category.
func Parse(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Valid reports whether the category is one of the known buckets.
func (c Category) Valid() bool {
	switch c {
	case Config, Setting, Classes, Heatmap, Brands, Brakes, Compounds:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }

// IsStyle reports whether the category is a shared style file.
func (c Category) IsStyle() bool {
	switch c {
	case Classes, Heatmap, Brands, Brakes, Compounds:
		return true
	}
	return false
}

// FileName returns the on-disk name for the category. The setting category
// is the active preset and needs its name supplied; the others are fixed.
func (c Category) FileName(preset string) string {
	if c == Setting {
		return preset + ".json"
	}
	return string(c) + ".json"
}

// StyleFileNames lists the fixed file names that live next to preset files
// and must never be treated as presets themselves.
func StyleFileNames() []string {
	names := make([]string, 0, 5)
	for _, c := range All() {
		if c.IsStyle() {
			names = append(names, c.FileName(""))
		}
	}
	return names
}
