package walk

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Find yields the paths of regular files below root whose names end in ext.
// Hidden directories are skipped. A walk error is yielded once with an empty
// path and ends the sequence.
func Find(root string, ext string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && strings.HasSuffix(path, ext) {
				if !yield(path, nil) {
					return filepath.SkipAll
				}
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}
