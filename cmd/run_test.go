package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/lingo/internal/config"
)

func TestOpenEventRepo(t *testing.T) {
	tests := []struct {
		name     string
		cfg      func(dir string) config.Config
		wantRepo bool
		wantWarn bool
	}{
		{
			name: "opens store",
			cfg: func(dir string) config.Config {
				return config.Config{DBPath: filepath.Join(dir, "lingo.db"), RecordEvents: true}
			},
			wantRepo: true,
		},
		{
			name: "recording disabled",
			cfg: func(dir string) config.Config {
				return config.Config{DBPath: filepath.Join(dir, "lingo.db"), RecordEvents: false}
			},
		},
		{
			name: "unopenable path warns",
			cfg: func(dir string) config.Config {
				// A directory cannot be opened as a database file.
				return config.Config{DBPath: dir, RecordEvents: true}
			},
			wantWarn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			repo, closeRepo := openEventRepo(tt.cfg(t.TempDir()), &out)
			defer closeRepo()

			assert.Equal(t, tt.wantRepo, repo != nil)
			if tt.wantWarn {
				assert.Contains(t, out.String(), "Request log unavailable")
			} else {
				assert.Empty(t, out.String())
			}
		})
	}
}
