package export

import "strings"

// SanitizeName makes an offer or asset name safe as a path segment on common
// filesystems: characters illegal on Windows/macOS/Linux are stripped and
// spaces become underscores. Idempotent.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
			// dropped
		case ' ':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
