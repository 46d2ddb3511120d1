package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// CandidatePattern matches files that look like pipeline output.
const CandidatePattern = "**/*.{json,txt}"

// Unused lists files under dir that match CandidatePattern but are not one
// of the configured asset paths. It helps spot a stale or misnamed export.
func Unused(dir string, paths Paths) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), CandidatePattern)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	configured := make(map[string]bool, 5)
	for _, p := range []string{paths.Topics, paths.Scatter, paths.Network, paths.FilterHist, paths.Palette} {
		if abs, err := filepath.Abs(p); err == nil {
			configured[abs] = true
		}
	}

	var unused []string
	for _, m := range matches {
		abs, err := filepath.Abs(filepath.Join(dir, filepath.FromSlash(m)))
		if err != nil {
			return nil, err
		}
		if !configured[abs] {
			unused = append(unused, m)
		}
	}
	sort.Strings(unused)
	return unused, nil
}
