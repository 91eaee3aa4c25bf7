package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Stage manifests and tuning specs sit next to this file; HUD scripts live
// in scripts/.
var (
	//go:embed *.yaml
	specFS embed.FS
	//go:embed scripts/*.tengo
	scriptFS embed.FS
)

// diskRoot is where edited copies are looked up first, relative to the
// working directory. Running from the repo root with -watch picks them up.
const diskRoot = "prefabs"

// Load returns the named spec file, e.g. "stages.yaml".
func Load(name string) ([]byte, error) {
	return readFile(specFS, specPath(name))
}

// LoadScript returns the named tengo script, e.g. "hud.tengo".
func LoadScript(name string) ([]byte, error) {
	return readFile(scriptFS, scriptPath(name))
}

func readFile(fsys embed.FS, rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(diskRoot, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	data, err := fsys.ReadFile(rel)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s not on disk or embedded: %w", rel, err)
	}
	return data, nil
}

// specPath accepts "stages.yaml" and "prefabs/stages.yaml".
func specPath(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(name), diskRoot+"/")
}

// scriptPath maps "hud.tengo", "scripts/hud.tengo" and
// "prefabs/scripts/hud.tengo" to "scripts/hud.tengo".
func scriptPath(name string) string {
	s := specPath(name)
	s = strings.TrimPrefix(s, "scripts/")
	return path.Join("scripts", s)
}
