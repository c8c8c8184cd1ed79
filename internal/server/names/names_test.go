package names

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords_Next_Shape(t *testing.T) {
	g := NewWords()
	for i := 0; i < 200; i++ {
		id := g.Next()
		require.Len(t, strings.Split(id, separator), DefaultWords, id)
		assert.Regexp(t, `^[a-z]+(-[a-z]+)*$`, id)
	}
}

func TestWords_Next_Varies(t *testing.T) {
	g := NewWords()
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		seen[g.Next()] = struct{}{}
	}
	// 1000 draws from tens of millions of codes almost never collide
	assert.Greater(t, len(seen), 990)
}

func TestWords_Next_UsesSource(t *testing.T) {
	var gotWords int
	var gotSep string
	g := &Words{words: 2, generate: func(words int, sep string) string {
		gotWords, gotSep = words, sep
		return "swift" + sep + "otter"
	}}

	assert.Equal(t, "swift-otter", g.Next())
	assert.Equal(t, 2, gotWords)
	assert.Equal(t, "-", gotSep)
}
