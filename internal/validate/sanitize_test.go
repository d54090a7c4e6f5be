package validate

import (
	"reflect"
	"testing"
)

func TestSanitizeStringStripsScriptBlocks(t *testing.T) {
	cases := map[string]string{
		"hello":                                        "hello",
		"<script>alert('x')</script>":                  "",
		"before<script>alert('x')</script>after":       "beforeafter",
		"<SCRIPT SRC=\"evil.js\"></SCRIPT>trailing":    "trailing",
		"<script>first</script><script>two</script>":   "",
		"multi<script>\nline\npayload\n</script>line":  "multiline",
		"dangling close</script>":                      "dangling close",
		"dangling open<script type=\"text/javascript\">": "dangling open",
		"plain <b>markup</b> survives":                 "plain <b>markup</b> survives",
	}
	for in, want := range cases {
		if got := SanitizeString(in); got != want {
			t.Fatalf("SanitizeString(%q) = %q, want %q", in, got, want)
		}
	}
}

// Sanitization only removes content, so running it twice must yield the same
// result as running it once.
func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"<script>alert('x')</script>",
		"nested <script>a<script>b</script>c</script> text",
		"<scr<script></script>ipt>alert(1)</scr</script>ipt>",
	}
	for _, in := range inputs {
		once := SanitizeString(in)
		twice := SanitizeString(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestSanitizeWalksNestedValues(t *testing.T) {
	in := map[string]any{
		"name": "Asha<script>steal()</script>",
		"age":  float64(34),
		"tags": []any{"ok", "<script>x</script>bad"},
		"address": map[string]any{
			"village": "Rampur<script></script>",
			"pincode": "110001",
		},
	}
	want := map[string]any{
		"name": "Asha",
		"age":  float64(34),
		"tags": []any{"ok", "bad"},
		"address": map[string]any{
			"village": "Rampur",
			"pincode": "110001",
		},
	}
	got := Sanitize(in)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sanitize mismatch:\n got %#v\nwant %#v", got, want)
	}
}

func TestSanitizeLeavesNonStringsAlone(t *testing.T) {
	for _, v := range []any{true, float64(42), nil} {
		if got := Sanitize(v); !reflect.DeepEqual(got, v) {
			t.Fatalf("Sanitize(%v) = %v", v, got)
		}
	}
}
