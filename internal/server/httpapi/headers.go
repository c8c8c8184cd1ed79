package httpapi

import (
	"fmt"
	"strings"
	"unicode"
)

// contentDisposition builds an attachment header for a client-supplied
// file name. The quoted form keeps ASCII names readable; names with other
// characters additionally get an RFC 5987 filename* parameter.
func contentDisposition(name string) string {
	var plain strings.Builder
	ascii := true
	for _, r := range name {
		switch {
		case r == '"' || r == '\\':
			plain.WriteByte('\\')
			plain.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			plain.WriteByte('_')
		case r > unicode.MaxASCII:
			ascii = false
			plain.WriteByte('_')
		default:
			plain.WriteRune(r)
		}
	}

	v := `attachment; filename="` + plain.String() + `"`
	if !ascii {
		v += "; filename*=UTF-8''" + extValue(name)
	}
	return v
}

// extValue percent-encodes s as an RFC 5987 value.
func extValue(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func isAttrChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}
