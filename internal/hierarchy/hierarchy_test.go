package hierarchy_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/haneulworks/assetseal/internal/hierarchy"
)

// Case is a single descriptor test case from a YAML golden file.
type Case struct {
	Name        string   `yaml:"name"`
	Descriptor  string   `yaml:"descriptor"`
	WantErr     bool     `yaml:"want_err,omitempty"`
	Files       []string `yaml:"files,omitempty"`
	TargetFiles []string `yaml:"target_files,omitempty"`
	Directories []string `yaml:"directories,omitempty"`
	Plain       int      `yaml:"plain,omitempty"`
	Targets     int      `yaml:"targets,omitempty"`
}

func loadCases(t *testing.T) []Case {
	t.Helper()

	files, err := filepath.Glob("testdata/*.yml")
	if err != nil {
		t.Fatalf("globbing testdata: %v", err)
	}

	if len(files) == 0 {
		t.Fatal("no testdata/*.yml files found")
	}

	var cases []Case

	for _, f := range files {
		data, err := os.ReadFile(f) //nolint:gosec // test helper reads known testdata files
		if err != nil {
			t.Fatalf("reading %s: %v", f, err)
		}

		var fileCases []Case
		if err := yaml.Unmarshal(data, &fileCases); err != nil {
			t.Fatalf("parsing %s: %v", f, err)
		}

		cases = append(cases, fileCases...)
	}

	return cases
}

func TestParse(t *testing.T) {
	t.Parallel()

	for _, tc := range loadCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			node, err := hierarchy.Parse([]byte(tc.Descriptor))

			if tc.WantErr {
				if err == nil {
					t.Fatal("Parse succeeded, want error")
				}

				return
			}

			if err != nil {
				t.Fatalf("Parse: %v", err)
			}

			if !slices.Equal(node.Files, tc.Files) {
				t.Errorf("Files = %v, want %v", node.Files, tc.Files)
			}

			if !slices.Equal(node.TargetFiles, tc.TargetFiles) {
				t.Errorf("TargetFiles = %v, want %v", node.TargetFiles, tc.TargetFiles)
			}

			var dirs []string
			for name := range node.Directories {
				dirs = append(dirs, name)
			}

			slices.Sort(dirs)

			if !slices.Equal(dirs, tc.Directories) {
				t.Errorf("Directories = %v, want %v", dirs, tc.Directories)
			}

			plain, targets := node.Count()
			if plain != tc.Plain || targets != tc.Targets {
				t.Errorf("Count = (%d, %d), want (%d, %d)", plain, targets, tc.Plain, tc.Targets)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	t.Parallel()

	descriptor := []byte(`{"files":["a"],"target_files":["b"],"directories":{"sub":{"files":["c"]}}}`)

	first, err := hierarchy.Parse(descriptor)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	for range 10 {
		again, err := hierarchy.Parse(descriptor)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}

		if !slices.Equal(first.Files, again.Files) || !slices.Equal(first.TargetFiles, again.TargetFiles) {
			t.Fatal("repeated parses diverged")
		}
	}
}
