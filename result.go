package tagscan

// Result holds extracted token text grouped by kind. Each slice is in
// left-to-right discovery order; duplicates are preserved and nothing
// is sorted.
type Result struct {
	Tags     []string `json:"tags" yaml:"tags"`
	Mentions []string `json:"mentions" yaml:"mentions"`
	Links    []string `json:"links" yaml:"links"`
}

// WriteToken appends the token text to the slice for its kind. Result
// is therefore usable directly as a Sink.
func (r *Result) WriteToken(tok Token) error {
	switch tok.Kind {
	case tokenTag:
		r.Tags = append(r.Tags, tok.Text)
	case tokenMention:
		r.Mentions = append(r.Mentions, tok.Text)
	case tokenLink:
		r.Links = append(r.Links, tok.Text)
	}
	return nil
}

// Len returns the total number of extracted tokens.
func (r *Result) Len() int {
	return len(r.Tags) + len(r.Mentions) + len(r.Links)
}
