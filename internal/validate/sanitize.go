package validate

import "regexp"

// Script markup is stripped, never escaped, so a second pass over already
// clean input finds nothing to do.
var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script[^>]*>`)
	scriptTagRe   = regexp.MustCompile(`(?i)</?script\b[^>]*>`)
)

// Sanitize walks a decoded JSON value and removes script-tag markup from
// every string it finds, recursing through objects and arrays. Non-string
// values pass through untouched. Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(value any) any {
	switch v := value.(type) {
	case string:
		return SanitizeString(v)
	case map[string]any:
		for key, entry := range v {
			v[key] = Sanitize(entry)
		}
		return v
	case []any:
		for i, entry := range v {
			v[i] = Sanitize(entry)
		}
		return v
	default:
		return value
	}
}

// SanitizeString strips script blocks and stray script tags. Removal can
// splice surrounding text into a new tag ("<scr<script></script>ipt>"), so
// it repeats until the string stops shrinking.
func SanitizeString(s string) string {
	for {
		out := scriptBlockRe.ReplaceAllString(s, "")
		out = scriptTagRe.ReplaceAllString(out, "")
		if out == s {
			return out
		}
		s = out
	}
}
