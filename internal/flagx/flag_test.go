package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-i", "-t", "2m"},
			allowedFlags: []string{"-i", "-t"},
			want:         []string{"-i", "-t", "2m"},
		},
		{
			name:         "equals value may look like a flag",
			args:         []string{"-m=--motto--"},
			allowedFlags: []string{"-m"},
			want:         []string{"-m=--motto--"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-a", "one", "-a", "two"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", "one", "-a", "two"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigPath([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", ConfigPath([]string{"-config", "/path/long.json"}))
	assert.Equal(t, "/path/2.json", ConfigPath([]string{"-c", "/path/1.json", "-config=/path/2.json"}))
	assert.Empty(t, ConfigPath([]string{"-x", "1", "-y", "2"}))
	assert.Empty(t, ConfigPath(nil))
}

func TestPositional(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "subcommand after global flags", args: []string{"-a", "http://h:1", "send", "f.txt"}, want: []string{"send", "f.txt"}},
		{name: "boolean flag does not eat operand", args: []string{"-q", "recv", "code"}, want: []string{"recv", "code"}},
		{name: "equals form skipped", args: []string{"-a=http://h", "recv", "x", "-o", "out"}, want: []string{"recv", "x"}},
		{name: "stdin marker kept", args: []string{"send", "-"}, want: []string{"send", "-"}},
		{name: "double dash ends flags", args: []string{"send", "--", "-weird-name"}, want: []string{"send", "-weird-name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Positional(tt.args, []string{"-a", "-c", "-config", "-o", "-n"}))
		})
	}
}
