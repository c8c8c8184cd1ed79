package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerURL)
	assert.False(t, c.Quiet)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Precedence(t *testing.T) {
	file := writeConfig(t, `{"server_url": "https://from.json", "quiet": true}`)

	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "defaults",
			args: []string{"send", "file.txt"},
			want: Config{ServerURL: "http://127.0.0.1:8080"},
		},
		{
			name: "json overrides defaults",
			args: []string{"-c", file, "recv", "calm-yak"},
			want: Config{ServerURL: "https://from.json", Quiet: true},
		},
		{
			name: "flags override json",
			args: []string{"-config", file, "-a", "https://from.flag", "recv", "calm-yak"},
			want: Config{ServerURL: "https://from.flag", Quiet: true},
		},
		{
			name: "subcommand flags are ignored",
			args: []string{"-q", "recv", "-o", "out.bin", "calm-yak"},
			want: Config{ServerURL: "http://127.0.0.1:8080", Quiet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := load(tt.args)
			if diff := cmp.Diff(tt.want, *got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseJson_PartialFile(t *testing.T) {
	file := writeConfig(t, `{"quiet": true}`)

	var c Config
	c.LoadDefaults()
	parseJson(&c, []string{"-c", file})

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerURL)
	assert.True(t, c.Quiet)
}

func TestParseJson_PanicsOnBadInput(t *testing.T) {
	bad := writeConfig(t, `{"server_url": 1}`)

	assert.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	assert.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "missing.json")}) })
}

func TestParseFlags_PanicsOnBadValue(t *testing.T) {
	assert.Panics(t, func() { parseFlags(&Config{}, []string{"-q=maybe"}) })
}
