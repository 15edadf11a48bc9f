// Package preset manages the preset files in the presets directory: listing,
// creating, duplicating, renaming and deleting them. Destructive operations
// first wait for the save queue to drain so a file is never touched while the
// engine is writing it.
package preset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/pitwall-app/pitwall/app/jsonfile"
	"github.com/pitwall-app/pitwall/app/setting"
)

//go:generate moq -out mocks/waiter.go -pkg mocks -skip-ensure -fmt goimports . Waiter

// Waiter blocks until no save is running or queued.
type Waiter interface {
	Wait(ctx context.Context) error
}

// invalid characters match the strictest target filesystem
const invalidNameChars = `\/:*?"<>|`

// ErrNotFound is returned when the requested preset file is not present.
var ErrNotFound = errors.New("preset not found")

// ErrExists is returned when the target preset name is already taken.
var ErrExists = errors.New("preset already exists")

// Manager operates on preset files in a single directory.
type Manager struct {
	dir    string
	waiter Waiter
}

// Info describes one preset file.
type Info struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// New makes a preset manager for the given directory, creating it if needed.
func New(dir string, waiter Waiter) *Manager {
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // user-visible data directory
		log.Printf("[DEBUG] can't make %s, %s", dir, err)
	}
	return &Manager{dir: dir, waiter: waiter}
}

// List returns the presets sorted by modification time, newest first. Style
// files sharing the directory are not presets and never show up. Unreadable
// entries are logged and skipped.
func (m *Manager) List() []Info {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		log.Printf("[WARN] can't list presets in %s, %s", m.dir, err)
		return []Info{}
	}

	res := []Info{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") || isReserved(entry.Name()) {
			continue
		}
		finfo, err := entry.Info()
		if err != nil {
			log.Printf("[WARN] can't get info for %s, %s", entry.Name(), err)
			continue
		}
		res = append(res, Info{
			Name:    strings.TrimSuffix(entry.Name(), ".json"),
			Size:    finfo.Size(),
			ModTime: finfo.ModTime(),
		})
	}

	sort.Slice(res, func(i, j int) bool {
		if !res[i].ModTime.Equal(res[j].ModTime) {
			return res[i].ModTime.After(res[j].ModTime)
		}
		return res[i].Name < res[j].Name
	})
	return res
}

// Exists reports whether a preset file with this name is present.
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.path(normalize(name)))
	return err == nil
}

// Create makes a new preset file from the default template.
func (m *Manager) Create(name string) error {
	name = normalize(name)
	if err := validateName(name); err != nil {
		return err
	}
	if m.Exists(name) {
		return fmt.Errorf("preset %q: %w", name, ErrExists)
	}
	if err := jsonfile.Save(setting.DefaultSetting(), name+".json", m.dir); err != nil {
		return fmt.Errorf("create preset %q: %w", name, err)
	}
	log.Printf("[INFO] preset %q created", name)
	return nil
}

// Duplicate copies a preset under a new name, after the save queue drains.
func (m *Manager) Duplicate(ctx context.Context, src, dst string) error {
	src, dst = normalize(src), normalize(dst)
	if err := m.checkPair(src, dst); err != nil {
		return err
	}
	if err := m.waiter.Wait(ctx); err != nil {
		return fmt.Errorf("duplicate preset %q: %w", src, err)
	}
	b, err := os.ReadFile(m.path(src)) // #nosec G304 - name validated above
	if err != nil {
		return fmt.Errorf("duplicate preset %q: %w", src, err)
	}
	if err := os.WriteFile(m.path(dst), b, 0o644); err != nil { //nolint:gosec // user-editable preset
		return fmt.Errorf("duplicate preset %q: %w", src, err)
	}
	log.Printf("[INFO] preset %q duplicated to %q", src, dst)
	return nil
}

// Rename moves a preset to a new name, after the save queue drains.
func (m *Manager) Rename(ctx context.Context, src, dst string) error {
	src, dst = normalize(src), normalize(dst)
	if err := m.checkPair(src, dst); err != nil {
		return err
	}
	if err := m.waiter.Wait(ctx); err != nil {
		return fmt.Errorf("rename preset %q: %w", src, err)
	}
	if err := os.Rename(m.path(src), m.path(dst)); err != nil {
		return fmt.Errorf("rename preset %q: %w", src, err)
	}
	log.Printf("[INFO] preset %q renamed to %q", src, dst)
	return nil
}

// Delete removes a preset file and its stale backup, after the save queue
// drains.
func (m *Manager) Delete(ctx context.Context, name string) error {
	name = normalize(name)
	if !m.Exists(name) {
		return fmt.Errorf("preset %q: %w", name, ErrNotFound)
	}
	if err := m.waiter.Wait(ctx); err != nil {
		return fmt.Errorf("delete preset %q: %w", name, err)
	}
	if err := os.Remove(m.path(name)); err != nil {
		return fmt.Errorf("delete preset %q: %w", name, err)
	}
	if err := os.Remove(m.path(name) + jsonfile.BackupExt); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[WARN] can't delete backup of preset %q, %s", name, err)
	}
	log.Printf("[INFO] preset %q deleted", name)
	return nil
}

func (m *Manager) path(name string) string {
	return filepath.Join(m.dir, name+".json")
}

func (m *Manager) checkPair(src, dst string) error {
	if err := validateName(dst); err != nil {
		return err
	}
	if !m.Exists(src) {
		return fmt.Errorf("preset %q: %w", src, ErrNotFound)
	}
	if m.Exists(dst) {
		return fmt.Errorf("preset %q: %w", dst, ErrExists)
	}
	return nil
}

func normalize(name string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), ".json"))
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("preset name is empty")
	}
	if strings.ContainsAny(name, invalidNameChars) {
		return fmt.Errorf("preset name %q contains one of %s", name, invalidNameChars)
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("preset name %q starts with a dot", name)
	}
	if isReserved(name + ".json") {
		return fmt.Errorf("preset name %q is reserved", name)
	}
	return nil
}

// isReserved guards the fixed file names sharing the presets directory.
func isReserved(fname string) bool {
	for _, s := range setting.StyleFileNames() {
		if strings.EqualFold(fname, s) {
			return true
		}
	}
	return strings.EqualFold(fname, setting.Config.FileName(""))
}
