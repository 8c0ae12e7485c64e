package dev

import (
	"path/filepath"

	"github.com/skooma-dev/skooma/internal/config"
)

// CollectWatchPaths returns the directories the preview server watches:
// the tree directory plus any extra directories, cleaned and deduplicated.
func CollectWatchPaths(cfg *config.Config, extra ...string) []string {
	paths := append([]string{cfg.TreesPath()}, extra...)

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		clean := filepath.Clean(resolvePath(cfg.Dir(), p))
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}
	return unique
}

func resolvePath(projectDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectDir, p)
}
