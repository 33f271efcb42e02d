package convert

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/exp/slices"

	"msa2st/config"
	"msa2st/internal/errors"
	"msa2st/util"
)

// Tree is the outcome of scanning a source directory.
type Tree struct {
	Jobs []Job
	Dirs []string // source directories visited, relative to the root

	// Problems holds per-entry walk failures.  The walk continues past
	// them; the caller decides which are worth reporting.
	Problems []*errors.FSError
}

// Discover walks src and plans one job per .msa file (case-insensitive),
// mirroring the directory layout under dest with a .st extension.
// Only a failure to read src itself is returned as an error.
func Discover(ctx context.Context, src, dest string) (*Tree, error) {
	tree := &Tree{}

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == src {
				return errors.WrapFS("walk", path, err)
			}
			tree.Problems = append(tree.Problems, errors.WrapFS("walk", path, err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			tree.Problems = append(tree.Problems, errors.WrapFS("walk", path, err))
			return nil
		}

		if d.IsDir() {
			tree.Dirs = append(tree.Dirs, rel)
			return nil
		}
		if !d.Type().IsRegular() || !util.HasExtFold(path, config.SourceExt) {
			return nil
		}

		destRel := util.ReplaceExt(rel, config.DestExt)
		tree.Jobs = append(tree.Jobs, Job{
			Source: path,
			Dest:   filepath.Join(dest, destRel),
			Rel:    destRel,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// PruneEmpty removes directories under dest that mirror a source
// directory and are empty, deepest first, finishing with dest itself.
// NotFound and PermissionDenied failures are tolerated silently; other
// failures are returned alongside the removed paths.
func PruneEmpty(dest string, dirs []string) (removed []string, problems []*errors.FSError) {
	ordered := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if d != "." {
			ordered = append(ordered, d)
		}
	}
	// A child's path always sorts after its parent's, so walking the
	// sorted list backwards visits children first.
	slices.Sort(ordered)
	ordered = append([]string{"."}, ordered...)

	for i := len(ordered) - 1; i >= 0; i-- {
		path := filepath.Join(dest, ordered[i])

		entries, err := os.ReadDir(path)
		if err != nil {
			if !errors.IsTolerable(err) {
				problems = append(problems, errors.WrapFS("read", path, err))
			}
			continue
		}
		if len(entries) > 0 {
			continue
		}

		if err := os.Remove(path); err != nil {
			if !errors.IsTolerable(err) {
				problems = append(problems, errors.WrapFS("remove", path, err))
			}
			continue
		}
		removed = append(removed, path)
	}
	return removed, problems
}
