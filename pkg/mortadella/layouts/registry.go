package layouts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/mortadella/pkg/mortadella"
	"github.com/BrandonKowalski/mortadella/pkg/mortadella/internal"
)

// Definition declares a layout: a name, the locales it serves, and its
// per-mode row strings. This is also the schema of a TOML layout file:
//
//	name = "qwerty"
//	locales = ["en", "en-US"]
//
//	[rows]
//	alphabetic = ["qwertyuiop", "asdfghjkl", "zxcvbnm"]
type Definition struct {
	Name    string   `toml:"name"`
	Locales []string `toml:"locales"`
	Rows    RowSet   `toml:"rows"`
}

// RowSet holds one layout's row strings per keyboard page. Alphabetic is
// required; numeric and symbolic fall back to the shared default pages.
type RowSet struct {
	Alphabetic []string `toml:"alphabetic"`
	Numeric    []string `toml:"numeric"`
	Symbolic   []string `toml:"symbolic"`
}

// Registry maps locales to layout definitions. Lookups go through a
// language.Matcher so "en-AU" finds the "en" layout; locales no registered
// layout serves fall back to the first registered definition. Safe for
// concurrent use; Watch can reload definitions behind readers.
type Registry struct {
	mu      sync.RWMutex
	defs    []Definition
	tags    []language.Tag // newest-first, so reloaded layouts win ties
	owners  []int          // owners[i] is the index into defs for tags[i]
	matcher language.Matcher
}

// NewRegistry returns a registry preloaded with the built-in layouts.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, def := range builtinDefinitions {
		// Built-ins are compiled in; registration cannot fail.
		if err := r.Register(def); err != nil {
			panic("layouts: bad builtin definition: " + err.Error())
		}
	}
	return r
}

// Register validates def and adds it to the registry. A definition with a
// name that is already registered replaces the previous one, which is what
// a file reload wants.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("layout definition has no name")
	}
	if len(def.Rows.Alphabetic) == 0 {
		return fmt.Errorf("layout %q has no alphabetic rows", def.Name)
	}
	if len(def.Locales) == 0 {
		return fmt.Errorf("layout %q serves no locales", def.Name)
	}
	for _, code := range def.Locales {
		if _, err := language.Parse(code); err != nil {
			return fmt.Errorf("layout %q: locale %q: %w", def.Name, code, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	replaced := false
	for i := range r.defs {
		if r.defs[i].Name == def.Name {
			r.defs[i] = def
			replaced = true
			break
		}
	}
	if !replaced {
		r.defs = append(r.defs, def)
	}
	r.rebuildLocked()
	return nil
}

// rebuildLocked regenerates the matcher. Tags are collected newest-first so
// the most recently registered layout wins when two serve the same locale.
func (r *Registry) rebuildLocked() {
	r.tags = r.tags[:0]
	r.owners = r.owners[:0]
	for i := len(r.defs) - 1; i >= 0; i-- {
		for _, code := range r.defs[i].Locales {
			tag, err := language.Parse(code)
			if err != nil {
				continue // validated at Register time
			}
			r.tags = append(r.tags, tag)
			r.owners = append(r.owners, i)
		}
	}
	r.matcher = language.NewMatcher(r.tags)
}

// lookup resolves tag to a definition, falling back to the first registered
// layout when nothing matches at all.
func (r *Registry) lookup(tag language.Tag) Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.defs) == 0 {
		return Definition{}
	}
	_, idx, conf := r.matcher.Match(tag)
	if conf == language.No {
		return r.defs[0]
	}
	return r.defs[r.owners[idx]]
}

// BaseRows returns the rows for mode in the layout closest to tag,
// case-adjusted for alphabetic modes. Unknown modes yield nil, which the
// layout engine treats as an empty keyboard page.
func (r *Registry) BaseRows(tag language.Tag, mode mortadella.KeyboardMode) mortadella.ActionRows {
	def := r.lookup(tag)

	var rows []string
	switch mode.Type {
	case mortadella.KeyboardAlphabetic:
		rows = def.Rows.Alphabetic
	case mortadella.KeyboardNumeric:
		rows = def.Rows.Numeric
		if len(rows) == 0 {
			rows = defaultNumericRows
		}
	case mortadella.KeyboardSymbolic:
		rows = def.Rows.Symbolic
		if len(rows) == 0 {
			rows = defaultSymbolicRows
		}
	default:
		return nil
	}

	upper := mode.Type == mortadella.KeyboardAlphabetic && mode.Case != mortadella.CaseLowercased
	return rowsFromStrings(rows, upper)
}

// Names returns the registered layout names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.defs))
	for i, def := range r.defs {
		names[i] = def.Name
	}
	return names
}

// LoadFile parses a TOML layout definition and registers it.
func (r *Registry) LoadFile(path string) error {
	var def Definition
	if _, err := toml.DecodeFile(path, &def); err != nil {
		return fmt.Errorf("parse layout file %s: %w", path, err)
	}
	if err := r.Register(def); err != nil {
		return fmt.Errorf("register layout file %s: %w", path, err)
	}
	return nil
}

// LoadDir loads every .toml file in dir. The first failure aborts the load.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		if err := r.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Watch reloads layout files in dir as they are created or written, until
// ctx is cancelled. A file that fails to parse is logged and skipped; the
// registry keeps its previous definition. The error return covers watcher
// setup only.
func (r *Registry) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	log := internal.GetLogger()
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !strings.HasSuffix(event.Name, ".toml") {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				if err := r.LoadFile(event.Name); err != nil {
					log.Warn("layout reload failed", "path", event.Name, "error", err)
					continue
				}
				log.Info("layout reloaded", "path", event.Name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("layout watcher error", "error", err)
			}
		}
	}()
	return nil
}
