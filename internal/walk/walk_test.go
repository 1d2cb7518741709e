package walk

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// createTestFiles creates empty files, and their directories, below baseDir.
func createTestFiles(t *testing.T, baseDir string, files []string) {
	t.Helper()
	for _, file := range files {
		fullPath := filepath.Join(baseDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(fullPath, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFind(t *testing.T) {
	tempDir := t.TempDir()

	createTestFiles(t, tempDir, []string{
		"sum.arith",
		"sum.arith.json",
		"product.arith",
		"readme.md",
		"nested/deep/diff.arith",
		"nested/notes.txt",
		".cache/stale.arith",
	})

	tests := []struct {
		name     string
		ext      string
		expected []string
	}{
		{
			name: "arith files",
			ext:  ".arith",
			expected: []string{
				filepath.Join(tempDir, "nested/deep/diff.arith"),
				filepath.Join(tempDir, "product.arith"),
				filepath.Join(tempDir, "sum.arith"),
			},
		},
		{
			name:     "txt files",
			ext:      ".txt",
			expected: []string{filepath.Join(tempDir, "nested/notes.txt")},
		},
		{
			name:     "no match",
			ext:      ".up",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var results []string
			for path, err := range Find(tempDir, tt.ext) {
				if err != nil {
					t.Fatalf("Find: %v", err)
				}
				results = append(results, path)
			}
			sort.Strings(results)
			if diff := cmp.Diff(tt.expected, results); diff != "" {
				t.Errorf("(-want, +got)\n%s", diff)
			}
		})
	}
}

func TestFindStopsEarly(t *testing.T) {
	tempDir := t.TempDir()
	createTestFiles(t, tempDir, []string{"a.arith", "b.arith", "c.arith"})

	n := 0
	for range Find(tempDir, ".arith") {
		n++
		break
	}
	if n != 1 {
		t.Errorf("expected iteration to stop after one file, got %d", n)
	}
}

func TestFindMissingRoot(t *testing.T) {
	var errs int
	for path, err := range Find(filepath.Join(t.TempDir(), "missing"), ".arith") {
		if err == nil {
			t.Errorf("unexpected path %q", path)
			continue
		}
		errs++
	}
	if errs != 1 {
		t.Errorf("expected one error, got %d", errs)
	}
}
