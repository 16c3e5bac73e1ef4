package tagscan

import (
	"regexp"
	"strings"
	"testing"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
var osc8Regexp = regexp.MustCompile("\x1b\\]8;;.*?\x1b\\\\")

func stripANSI(s string) string {
	s = ansiRegexp.ReplaceAllString(s, "")
	s = osc8Regexp.ReplaceAllString(s, "")
	return s
}

func TestHighlightStylesTokens(t *testing.T) {
	styles := DefaultTheme().Styles()
	out := Highlight("take #note from @me", DefaultTheme())
	if !strings.Contains(out, styles.Tag.Prefix+"#note"+ansiReset) {
		t.Fatalf("missing styled tag in %q", out)
	}
	if !strings.Contains(out, styles.Mention.Prefix+"@me"+ansiReset) {
		t.Fatalf("missing styled mention in %q", out)
	}
}

func TestHighlightPreservesText(t *testing.T) {
	inputs := []string{
		"",
		"no tokens at all",
		"mixed #täg and @usér plus http://exämple.com/x trailing",
		"#a#b@c",
	}
	for _, in := range inputs {
		out := stripANSI(Highlight(in, DefaultTheme()))
		if out != in {
			t.Fatalf("highlight altered text:\n got %q\nwant %q", out, in)
		}
	}
}

func TestHighlightEmptyThemePassthrough(t *testing.T) {
	const in = "keep #this plain"
	if out := Highlight(in, NewTheme("boring", Styles{})); out != in {
		t.Fatalf("expected unstyled passthrough, got %q", out)
	}
}

func TestHighlightOSC8Links(t *testing.T) {
	out := Highlight("see https://example.com now", DefaultTheme(), WithOSC8(true))
	if !strings.Contains(out, osc8Start+"https://example.com\x1b\\") {
		t.Fatalf("missing OSC 8 start sequence in %q", out)
	}
	if !strings.Contains(out, osc8End) {
		t.Fatalf("missing OSC 8 end sequence in %q", out)
	}

	plain := Highlight("see https://example.com now", DefaultTheme())
	if strings.Contains(plain, osc8Start+"https://example.com") {
		t.Fatalf("unexpected OSC 8 sequence without option: %q", plain)
	}
}

func TestHighlightNilThemeUsesDefault(t *testing.T) {
	withNil := Highlight("ping @you", nil)
	withDefault := Highlight("ping @you", DefaultTheme())
	if withNil != withDefault {
		t.Fatalf("nil theme diverges from default:\n%q\n%q", withNil, withDefault)
	}
}
