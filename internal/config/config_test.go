package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRead(t *testing.T) {
	tt := []struct {
		name          string
		configContent string
		writeFile     bool
		expected      *Config
		expectedErr   bool
	}{
		{
			name:      "defaults when no file exists",
			writeFile: false,
			expected: &Config{
				Extensions: []string{"rs"},
				Markers:    []string{"TODO", "FIXME", "XXX"},
				Ignore:     []string{},
			},
			expectedErr: false,
		},
		{
			name: "all fields set",
			configContent: `
extensions = ["rs", "go"]
markers = ["TODO", "HACK"]
ignore = ["vendored/**", "generated/*.rs"]
`,
			writeFile: true,
			expected: &Config{
				Extensions: []string{"rs", "go"},
				Markers:    []string{"TODO", "HACK"},
				Ignore:     []string{"vendored/**", "generated/*.rs"},
			},
			expectedErr: false,
		},
		{
			name: "partial config keeps defaults for missing fields",
			configContent: `
ignore = ["third_party/**"]
`,
			writeFile: true,
			expected: &Config{
				Extensions: []string{"rs"},
				Markers:    []string{"TODO", "FIXME", "XXX"},
				Ignore:     []string{"third_party/**"},
			},
			expectedErr: false,
		},
		{
			name: "explicitly empty lists fall back to defaults",
			configContent: `
extensions = []
markers = []
`,
			writeFile: true,
			expected: &Config{
				Extensions: []string{"rs"},
				Markers:    []string{"TODO", "FIXME", "XXX"},
				Ignore:     []string{},
			},
			expectedErr: false,
		},
		{
			name:          "invalid toml yields defaults and error",
			configContent: `extensions = [unclosed`,
			writeFile:     true,
			expected: &Config{
				Extensions: []string{"rs"},
				Markers:    []string{"TODO", "FIXME", "XXX"},
				Ignore:     []string{},
			},
			expectedErr: true,
		},
		{
			name: "invalid ignore pattern yields defaults and error",
			configContent: `
ignore = ["[unclosed"]
`,
			writeFile: true,
			expected: &Config{
				Extensions: []string{"rs"},
				Markers:    []string{"TODO", "FIXME", "XXX"},
				Ignore:     []string{},
			},
			expectedErr: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			if tc.writeFile {
				err := os.WriteFile(filepath.Join(root, "todos.toml"), []byte(tc.configContent), 0o644)
				if err != nil {
					t.Fatalf("writing fixture: %v", err)
				}
			}

			cfg, err := Read(root)
			if tc.expectedErr && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(cfg, tc.expected) {
				t.Errorf("config mismatch:\ngot      %+v\nexpected %+v", cfg, tc.expected)
			}
		})
	}
}
