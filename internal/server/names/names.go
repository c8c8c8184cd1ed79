// Package names generates human-memorable transfer codes such as
// "gently-brave-lynx". Uniqueness is the caller's concern.
package names

import (
	petname "github.com/dustinkirkland/golang-petname"
)

// DefaultWords is the number of words in a code. Three words (adverb,
// adjective, animal) give tens of millions of codes, which keeps guessing
// a live code impractical within an intent timeout.
const DefaultWords = 3

const separator = "-"

// Generator yields candidate codes.
type Generator interface {
	Next() string
}

// Words draws codes from the petname word lists.
type Words struct {
	words    int
	generate func(words int, separator string) string
}

// NewWords returns a generator of DefaultWords-word codes.
func NewWords() *Words {
	return &Words{words: DefaultWords, generate: petname.Generate}
}

func (w *Words) Next() string {
	return w.generate(w.words, separator)
}
