package tagscan

import (
	"sync"
	"unicode/utf8"
)

const (
	linkPrefixHTTP  = "http://"
	linkPrefixHTTPS = "https://"
)

type scanState uint8

const (
	// stateOuter discards plain text until a marker starts a token.
	stateOuter scanState = iota
	// statePrefix buffers runes that may still form a link prefix.
	statePrefix
	// stateToken accumulates an open token until a terminator or EOF.
	stateToken
)

// scanner is the rune-fed tokenizer. Feed runes with feedRune and close
// any open token with finalize; completed tokens go to the sink in
// discovery order. A scanner must be reset before reuse.
type scanner struct {
	state scanState
	kind  tokenKind
	next  int // rune offset of the next incoming rune
	start int // rune offset of the open token's marker

	val  []byte
	pend []rune

	valArr  [256]byte
	pendArr [8]rune
}

var scannerPool = sync.Pool{
	New: func() any {
		return &scanner{}
	},
}

func (s *scanner) reset() {
	s.state = stateOuter
	s.kind = tokenTag
	s.next = 0
	s.start = 0
	s.val = s.valArr[:0]
	s.pend = s.pendArr[:0]
}

// Parse scans message in a single forward pass and returns the tags,
// mentions and links it contains. Parse is total: any input, including
// empty text or invalid UTF-8, yields a well-defined Result. Invalid
// bytes decode to U+FFFD and flow through like any other rune.
func Parse(message string) Result {
	var res Result
	s := scannerPool.Get().(*scanner)
	s.reset()
	for _, r := range message {
		_ = s.feedRune(&res, r)
	}
	_ = s.finalize(&res)
	scannerPool.Put(s)
	return res
}

func (s *scanner) feedRune(sink Sink, r rune) error {
	idx := s.next
	s.next++
	return s.feedAt(sink, r, idx)
}

func (s *scanner) feedAt(sink Sink, r rune, idx int) error {
	switch s.state {
	case stateOuter:
		s.outerRune(r, idx)
		return nil
	case statePrefix:
		return s.prefixRune(sink, r)
	default:
		return s.tokenRune(sink, r, idx)
	}
}

func (s *scanner) outerRune(r rune, idx int) {
	switch r {
	case 'h':
		s.state = statePrefix
		s.start = idx
		s.pend = append(s.pend[:0], r)
	case '#':
		s.begin(tokenTag, r, idx)
	case '@', '+':
		s.begin(tokenMention, r, idx)
	}
	// anything else is plain text between tokens and is not captured
}

func (s *scanner) begin(kind tokenKind, r rune, idx int) {
	s.state = stateToken
	s.kind = kind
	s.start = idx
	s.val = utf8.AppendRune(s.val[:0], r)
}

func (s *scanner) prefixRune(sink Sink, r rune) error {
	s.pend = append(s.pend, r)
	if runesEqual(s.pend, linkPrefixHTTP) || runesEqual(s.pend, linkPrefixHTTPS) {
		s.state = stateToken
		s.kind = tokenLink
		s.val = s.val[:0]
		for _, p := range s.pend {
			s.val = utf8.AppendRune(s.val, p)
		}
		s.pend = s.pend[:0]
		return nil
	}
	if isLinkPrefix(s.pend) {
		return nil
	}
	return s.replayPending(sink)
}

// replayPending rescans buffered prefix runes after a failed link
// prefix match. The leading h cannot start anything else, so it is
// dropped; the rest may contain markers (e.g. "ht#x") or another h.
func (s *scanner) replayPending(sink Sink) error {
	var buf [8]rune
	n := copy(buf[:], s.pend[1:])
	base := s.start + 1
	s.state = stateOuter
	s.pend = s.pend[:0]
	for i := 0; i < n; i++ {
		if err := s.feedAt(sink, buf[i], base+i); err != nil {
			return err
		}
	}
	return nil
}

func (s *scanner) tokenRune(sink Sink, r rune, idx int) error {
	if isTerminator(s.kind, r) {
		if err := s.closeToken(sink, idx); err != nil {
			return err
		}
		// the terminator is re-scanned: it may start the next token
		return s.feedAt(sink, r, idx)
	}
	s.val = utf8.AppendRune(s.val, r)
	return nil
}

func (s *scanner) closeToken(sink Sink, end int) error {
	tok := Token{Text: string(s.val), Kind: s.kind, Start: s.start, End: end}
	s.state = stateOuter
	s.val = s.val[:0]
	return sink.WriteToken(tok)
}

// finalize closes any open token at end-of-input. A dangling link
// prefix ("http:/" at EOF) is plain text and yields nothing.
func (s *scanner) finalize(sink Sink) error {
	if s.state == statePrefix {
		if err := s.replayPending(sink); err != nil {
			return err
		}
	}
	if s.state == stateToken {
		return s.closeToken(sink, s.next)
	}
	return nil
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

func isTerminator(kind tokenKind, r rune) bool {
	if isWhitespace(r) {
		return true
	}
	if kind == tokenLink {
		// # @ + are legal URL characters and never end a link
		return false
	}
	return r == '#' || r == '@' || r == '+'
}

func isLinkPrefix(pend []rune) bool {
	return runesPrefix(pend, linkPrefixHTTP) || runesPrefix(pend, linkPrefixHTTPS)
}

func runesPrefix(pend []rune, full string) bool {
	if len(pend) > len(full) {
		return false
	}
	for i, r := range pend {
		if r != rune(full[i]) {
			return false
		}
	}
	return true
}

func runesEqual(pend []rune, full string) bool {
	return len(pend) == len(full) && runesPrefix(pend, full)
}
