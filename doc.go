// Package tagscan extracts social-media-style tokens from free-form text.
//
// The scanner makes a single forward pass over the input, classifying
// runs of characters by their leading marker: "#" begins a tag, "@" or
// "+" begins a mention, and a literal "http://" or "https://" begins a
// link. Tags and mentions end at whitespace or at the next marker; links
// end only at whitespace, because "#", "@" and "+" are legitimate URL
// characters. Tokens keep their marker and original case and are
// reported in left-to-right discovery order with no deduplication.
//
// Core properties:
//   - Total over its input: any text, including empty or invalid UTF-8,
//     yields a well-defined (possibly empty) Result
//   - Streaming-capable: Scan tokenizes from an io.Reader without
//     buffering the full input
//   - Low allocations in hot paths
//
// Example:
//
//	res := tagscan.Parse("Hi @you check out http://example.com/ #examples")
//	fmt.Println(res.Tags)     // [#examples]
//	fmt.Println(res.Mentions) // [@you]
//	fmt.Println(res.Links)    // [http://example.com/]
//
// Highlight re-emits a message with theme-driven ANSI styling around
// each token, optionally using OSC 8 hyperlinks for links.
package tagscan
