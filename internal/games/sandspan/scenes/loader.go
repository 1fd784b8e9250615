package scenes

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"
)

//go:embed data/*.yaml
var bundledFS embed.FS

// Loader reads scene files from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader for scenes under root on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Bundled returns a loader over the scenes compiled into the binary.
func Bundled() *Loader {
	sub, err := fs.Sub(bundledFS, "data")
	if err != nil {
		panic(err)
	}
	return &Loader{Root: "embedded", fsys: sub}
}

// LoadAll recursively scans and loads all scene files.
// Invalid files are skipped. A missing root yields no scenes.
// Returns scenes sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Scene, error) {
	var scenes []Scene

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(FormatExtensions(), strings.ToLower(path.Ext(p))) {
			return nil
		}

		sc, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		scenes = append(scenes, sc)
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("scenes: walking %s: %w", l.Root, err)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes, nil
}

// LoadFile loads a single scene file, relative to the loader root.
func (l *Loader) LoadFile(name string) (Scene, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return Scene{}, fmt.Errorf("scenes: reading %s: %w", name, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("scenes: parsing %s: %w", name, err)
	}
	sc.FilePath = path.Join(l.Root, name)
	return sc, nil
}

// LoadByID loads a specific scene by ID.
func (l *Loader) LoadByID(id string) (Scene, error) {
	scenes, err := l.LoadAll()
	if err != nil {
		return Scene{}, err
	}
	for _, sc := range scenes {
		if sc.ID == id {
			return sc, nil
		}
	}
	return Scene{}, fmt.Errorf("%w: %s", ErrSceneNotFound, id)
}

// Catalog merges user scenes from dir with the bundled ones. A user scene
// replaces a bundled scene with the same ID. An empty dir means bundled only.
func Catalog(dir string) ([]Scene, error) {
	bundled, err := Bundled().LoadAll()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return bundled, nil
	}

	user, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]Scene, len(bundled)+len(user))
	for _, sc := range bundled {
		byID[sc.ID] = sc
	}
	for _, sc := range user {
		byID[sc.ID] = sc
	}

	out := make([]Scene, 0, len(byID))
	for _, sc := range byID {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Find looks up a scene by ID across the user dir and the bundled set.
func Find(dir, id string) (Scene, error) {
	all, err := Catalog(dir)
	if err != nil {
		return Scene{}, err
	}
	for _, sc := range all {
		if sc.ID == id {
			return sc, nil
		}
	}
	return Scene{}, fmt.Errorf("%w: %s", ErrSceneNotFound, id)
}
