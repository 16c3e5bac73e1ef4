package tagscan

import "strings"

const ansiReset = "\x1b[0m"

// HighlightOption configures Highlight.
type HighlightOption func(*highlightConfig)

type highlightConfig struct {
	osc8 bool
}

// WithOSC8 wraps link tokens in OSC 8 hyperlink sequences.
func WithOSC8(enabled bool) HighlightOption {
	return func(cfg *highlightConfig) {
		cfg.osc8 = enabled
	}
}

type tokenList []Token

func (l *tokenList) WriteToken(tok Token) error {
	*l = append(*l, tok)
	return nil
}

// Highlight re-emits message with the theme's style prefix around each
// token and a reset after it. Text outside tokens gets the theme's
// Text style. A nil theme uses the default theme.
func Highlight(message string, theme Theme, opts ...HighlightOption) string {
	cfg := highlightConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	styles := theme.Styles()

	var toks tokenList
	s := scannerPool.Get().(*scanner)
	s.reset()
	for _, r := range message {
		_ = s.feedRune(&toks, r)
	}
	_ = s.finalize(&toks)
	scannerPool.Put(s)

	if len(toks) == 0 {
		return styled(message, styles.Text)
	}
	runes := []rune(message)
	var b strings.Builder
	b.Grow(len(message) + len(toks)*16)
	cursor := 0
	for _, tok := range toks {
		if tok.Start > cursor {
			b.WriteString(styled(string(runes[cursor:tok.Start]), styles.Text))
		}
		style := styles.Tag
		switch tok.Kind {
		case tokenMention:
			style = styles.Mention
		case tokenLink:
			style = styles.Link
		}
		if cfg.osc8 && tok.Kind == tokenLink {
			b.WriteString(osc8Start + tok.Text + "\x1b\\")
			b.WriteString(styled(tok.Text, style))
			b.WriteString(osc8End)
		} else {
			b.WriteString(styled(tok.Text, style))
		}
		cursor = tok.End
	}
	if cursor < len(runes) {
		b.WriteString(styled(string(runes[cursor:]), styles.Text))
	}
	return b.String()
}

func styled(text string, style Style) string {
	if text == "" || style.Prefix == "" {
		return text
	}
	return style.Prefix + text + ansiReset
}
