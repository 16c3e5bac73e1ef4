package tagscan

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// Sink receives completed tokens from a scan in discovery order.
type Sink interface {
	WriteToken(Token) error
}

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, 4096)
	},
}

// ScanRequest configures Scan.
type ScanRequest struct {
	Reader io.Reader
	Sink   Sink
}

// Scan tokenizes text from a stream, emitting each completed token to
// the sink. Token boundaries are identical to Parse, including link
// prefixes split across read chunks; undecodable bytes feed U+FFFD,
// matching range iteration over a Go string.
func Scan(req ScanRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("scan: reader is nil")
	}
	if req.Sink == nil {
		return fmt.Errorf("scan: sink is nil")
	}
	s := scannerPool.Get().(*scanner)
	s.reset()
	reader := readerPool.Get().(*bufio.Reader)
	reader.Reset(req.Reader)
	var retErr error
	for {
		r, size, err := reader.ReadRune()
		if size > 0 {
			if ferr := s.feedRune(req.Sink, r); ferr != nil {
				retErr = fmt.Errorf("scan: %w", ferr)
				break
			}
		}
		if err != nil {
			if err != io.EOF {
				retErr = fmt.Errorf("scan: read: %w", err)
			}
			break
		}
	}
	if retErr == nil {
		if err := s.finalize(req.Sink); err != nil {
			retErr = fmt.Errorf("scan: %w", err)
		}
	}
	scannerPool.Put(s)
	readerPool.Put(reader)
	return retErr
}

// Extract scans a stream and collects the result. It errors only on
// read or sink failure; the scan itself is total.
func Extract(r io.Reader) (Result, error) {
	var res Result
	err := Scan(ScanRequest{Reader: r, Sink: &res})
	return res, err
}
