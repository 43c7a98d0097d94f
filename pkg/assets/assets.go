// Package assets embeds the bundled scene files.
package assets

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.json
var scenes embed.FS

// Scene returns the raw JSON of the bundled scene called name.
func Scene(name string) ([]byte, error) {
	return scenes.ReadFile(name + ".json")
}

// Names lists the bundled scenes, sorted.
func Names() []string {
	entries, err := fs.ReadDir(scenes, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
