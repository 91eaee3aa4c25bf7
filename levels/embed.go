package levels

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.yaml
var LevelsFS embed.FS

// ReadFile returns the raw bytes of a world file. A copy under ./levels on
// disk wins over the embedded one so worlds can be edited without a rebuild.
func ReadFile(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fs.ReadFile(LevelsFS, clean)
}

// Names lists the embedded world files.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func cleanLevelPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}
