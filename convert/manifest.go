package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"msa2st/config"
	"msa2st/util"
)

// Manifest collects image digests keyed by destination path.
// It is not safe for concurrent use; the aggregating caller owns it.
type Manifest struct {
	entries map[string]string
}

// Add records the digest of a converted result.  Results without a
// digest are ignored.
func (m *Manifest) Add(r Result) {
	if r.Status != Converted || r.Digest == "" {
		return
	}
	if m.entries == nil {
		m.entries = make(map[string]string)
	}
	m.entries[filepath.ToSlash(r.Rel)] = r.Digest
}

// Len returns the number of recorded digests.
func (m *Manifest) Len() int { return len(m.entries) }

// String renders the manifest as "<digest>  <path>" lines sorted by path.
func (m *Manifest) String() string {
	paths := maps.Keys(m.entries)
	slices.Sort(paths)

	var sb strings.Builder
	for _, p := range paths {
		fmt.Fprintf(&sb, "%s  %s\n", m.entries[p], p)
	}
	return sb.String()
}

// WriteFile atomically writes the manifest to path.
func (m *Manifest) WriteFile(path string) error {
	return util.WriteFileAtomic(path, []byte(m.String()), config.DefaultDirPerm, config.DefaultFilePerm)
}
