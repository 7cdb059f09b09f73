// filepath: internal/checker/encode.go
package checker

import (
	"strings"
)

const upperhex = "0123456789ABCDEF"

// EncodePath percent-encodes every byte of path except unreserved characters
// (A-Z a-z 0-9 - _ . ~) and the path separator "/". Multi-byte characters are
// encoded per UTF-8 byte. Note that url.PathEscape is not a substitute here:
// it leaves sub-delimiters like ":@&=+" unescaped.
func EncodePath(path string) string {
	var sb strings.Builder
	sb.Grow(len(path))
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '/' || isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&0xf])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}
	return false
}

// BuildURL joins the base server address and an encoded resource path with
// exactly one separating slash. The base is taken as-is and never re-encoded.
func BuildURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(EncodePath(path), "/")
}
