package tagscan

// Token is a classified substring captured from a message. Start and
// End are rune offsets into the message; End is one past the last rune
// of the token (the terminator itself is never part of the token).
type Token struct {
	Text  string
	Kind  tokenKind
	Start int
	End   int
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for consumers and sinks.
type TokenKind = tokenKind

const (
	tokenTag tokenKind = iota
	tokenMention
	tokenLink
)

const (
	// TokenTag classifies hashtag tokens ("#...").
	TokenTag tokenKind = tokenTag
	// TokenMention classifies mention tokens ("@..." or "+...").
	TokenMention tokenKind = tokenMention
	// TokenLink classifies link tokens ("http://..." or "https://...").
	TokenLink tokenKind = tokenLink
)

// String returns the lower-case name of the token kind.
func (k tokenKind) String() string {
	switch k {
	case tokenTag:
		return "tag"
	case tokenMention:
		return "mention"
	case tokenLink:
		return "link"
	}
	return "unknown"
}
