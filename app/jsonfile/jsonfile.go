// Package jsonfile implements the on-disk format for category files: plain
// JSON documents with 4-space indentation, sibling ".bak" recovery copies and
// re-read verification after write. The save engine consumes these primitives
// as black boxes; loaders fall back to defaults instead of failing.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"reflect"
	"time"

	log "github.com/go-pkgz/lgr"
)

// BackupExt is the extension of the recovery copy made before each write.
const BackupExt = ".bak"

// QuarantinePrefix starts the suffix of preserved copies of damaged files,
// followed by a timestamp, i.e. "config.json.backup-2026-01-02-15-04-05".
const QuarantinePrefix = ".backup-"

// Ops bundles the package functions for consumers taking file operations as
// an interface.
type Ops struct{}

// Save writes data as indented JSON to dir/name.
func (Ops) Save(data map[string]any, name, dir string) error { return Save(data, name, dir) }

// Verify re-reads dir/name and compares it against data.
func (Ops) Verify(data map[string]any, name, dir string) error { return Verify(data, name, dir) }

// CreateBackup copies dir/name to its ".bak" sibling.
func (Ops) CreateBackup(name, dir string) error { return CreateBackup(name, dir) }

// RestoreBackup replaces dir/name with its ".bak" sibling.
func (Ops) RestoreBackup(name, dir string) error { return RestoreBackup(name, dir) }

// DeleteBackup removes the ".bak" sibling of dir/name if present.
func (Ops) DeleteBackup(name, dir string) error { return DeleteBackup(name, dir) }

// quarantineLayout stamps preserved copies of damaged files.
const quarantineLayout = "2006-01-02-15-04-05"

// Save writes data as indented JSON to dir/name.
func Save(data map[string]any, name, dir string) error {
	b, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(filepath.Join(dir, name), b, 0o644); err != nil { //nolint:gosec // user-editable config files
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Verify re-reads dir/name and structurally compares it against data. This is
// the write-success oracle: any read, parse or comparison failure comes back
// as an error.
func Verify(data map[string]any, name, dir string) error {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("read back %s: %w", name, err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	want, err := canonical(data)
	if err != nil {
		return fmt.Errorf("canonicalize %s: %w", name, err)
	}
	if !reflect.DeepEqual(want, got) {
		return fmt.Errorf("%s does not match in-memory state", name)
	}
	return nil
}

// CreateBackup copies dir/name to its ".bak" sibling, capturing the pre-write
// state. A missing source is not an error, a first save has nothing to keep.
func CreateBackup(name, dir string) error {
	src := filepath.Join(dir, name)
	if err := copyFile(src, src+BackupExt); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("backup %s: %w", name, err)
	}
	return nil
}

// RestoreBackup replaces dir/name with its ".bak" sibling. A missing backup is
// an error, the caller asked for a recovery point that does not exist.
func RestoreBackup(name, dir string) error {
	src := filepath.Join(dir, name)
	if err := copyFile(src+BackupExt, src); err != nil {
		return fmt.Errorf("restore %s: %w", name, err)
	}
	return nil
}

// DeleteBackup removes the ".bak" sibling of dir/name if present.
func DeleteBackup(name, dir string) error {
	err := os.Remove(filepath.Join(dir, name) + BackupExt)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete backup of %s: %w", name, err)
	}
	return nil
}

// LoadSetting reads a preset or config document and tops up missing keys from
// defaults in memory. A missing file yields a copy of defaults; a damaged one
// is preserved under a timestamped name first. Defaults are not written back
// here, the next save does that.
func LoadSetting(name, dir string, defaults map[string]any) map[string]any {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[INFO] %s not found, using defaults", name)
		return Clone(defaults)
	}
	if err != nil {
		log.Printf("[WARN] %s failed loading, fall back to defaults: %v", name, err)
		return Clone(defaults)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil || m == nil {
		log.Printf("[WARN] %s failed loading, fall back to defaults: %v", name, err)
		if qerr := quarantine(name, dir); qerr != nil {
			log.Printf("[WARN] unable to preserve damaged %s: %v", name, qerr)
		}
		return Clone(defaults)
	}

	addMissing(m, defaults)
	log.Printf("[INFO] %s loaded", name)
	return m
}

// LoadStyle reads a shared style document (classes, heatmap, brands, brakes,
// compounds). Unlike LoadSetting it writes the file back whenever defaults
// had to fill in, so style files on disk always carry the full key set.
func LoadStyle(name, dir string, defaults map[string]any) map[string]any {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[INFO] %s not found, create new default", name)
		m := Clone(defaults)
		if serr := Save(m, name, dir); serr != nil {
			log.Printf("[WARN] unable to write default %s: %v", name, serr)
		}
		return m
	}
	if err != nil {
		log.Printf("[WARN] %s failed loading, fall back to defaults: %v", name, err)
		return Clone(defaults)
	}

	var m map[string]any
	if uerr := json.Unmarshal(b, &m); uerr != nil || m == nil {
		log.Printf("[WARN] %s failed loading, fall back to defaults: %v", name, uerr)
		if qerr := quarantine(name, dir); qerr != nil {
			log.Printf("[WARN] unable to preserve damaged %s: %v", name, qerr)
		}
		m = Clone(defaults)
		if serr := Save(m, name, dir); serr != nil {
			log.Printf("[WARN] unable to write default %s: %v", name, serr)
		}
		return m
	}

	if addMissing(m, defaults) {
		log.Printf("[INFO] %s updated with missing defaults", name)
		if serr := Save(m, name, dir); serr != nil {
			log.Printf("[WARN] unable to update %s: %v", name, serr)
		}
		return m
	}
	log.Printf("[INFO] %s loaded", name)
	return m
}

// Clone deep-copies data through a JSON round trip. Category dictionaries
// hold only JSON-serializable values, so the fallback shallow copy is a
// should-not-happen path.
func Clone(data map[string]any) map[string]any {
	b, err := json.Marshal(data)
	if err != nil {
		return maps.Clone(data)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil || m == nil {
		return maps.Clone(data)
	}
	return m
}

// canonical round-trips data through JSON so numeric types compare equal
// regardless of the in-memory representation (int defaults vs float64 from
// a parsed file).
func canonical(data map[string]any) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// addMissing fills keys absent from data with deep copies of default values,
// descending into nested maps. Reports whether anything was added.
func addMissing(data, defaults map[string]any) (updated bool) {
	for k, dv := range defaults {
		cur, ok := data[k]
		if !ok {
			data[k] = cloneValue(dv)
			updated = true
			continue
		}
		dm, dok := dv.(map[string]any)
		cm, cok := cur.(map[string]any)
		if dok && cok {
			if addMissing(cm, dm) {
				updated = true
			}
		}
	}
	return updated
}

func cloneValue(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}

func quarantine(name, dir string) error {
	src := filepath.Join(dir, name)
	stamp := time.Now().Format(quarantineLayout)
	return copyFile(src, src+QuarantinePrefix+stamp)
}

func copyFile(src, dst string) error {
	b, err := os.ReadFile(src) // #nosec G304 - paths come from the category registry
	if err != nil {
		return err
	}
	return os.WriteFile(dst, b, 0o644) //nolint:gosec // user-editable config files
}
