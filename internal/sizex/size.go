// Package sizex parses human-readable byte sizes such as "8GB" or "512 MiB"
// for configuration files and flags.
package sizex

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// Size is a byte count.
type Size uint64

// Parse accepts SI ("8GB") and IEC ("8GiB") suffixes as well as bare numbers.
func Parse(s string) (Size, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return Size(n), nil
}

// String renders the size in SI units, e.g. "8.0 GB".
func (s Size) String() string {
	return humanize.Bytes(uint64(s))
}

// Set implements flag.Value.
func (s *Size) Set(v string) error {
	parsed, err := Parse(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Size) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		if value < 0 {
			return errors.New("invalid size: negative")
		}
		*s = Size(value)
		return nil
	case string:
		return s.Set(value)
	default:
		return errors.New("invalid size")
	}
}
