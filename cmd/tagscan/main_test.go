package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"pkt.systems/tagscan"
)

func TestOpenInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	reader, closer, err := openInputs([]string{path})
	if err != nil {
		t.Fatalf("openInputs file: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}

	fileURL := "file://" + path
	reader, closer, err = openInputs([]string{fileURL})
	if err != nil {
		t.Fatalf("openInputs file URL: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file URL content: %q", string(buf))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("stream"))
	}))
	defer srv.Close()
	reader, closer, err = openInputs([]string{srv.URL})
	if err != nil {
		t.Fatalf("openInputs http: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "stream" {
		t.Fatalf("unexpected http content: %q", string(buf))
	}
}

func TestOpenInputsConcatenates(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(first, []byte("#one "), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("#two"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}
	reader, closer, err := openInputs([]string{first, second})
	if err != nil {
		t.Fatalf("openInputs concat: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	res, err := tagscan.Extract(reader)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !reflect.DeepEqual(res.Tags, []string{"#one", "#two"}) {
		t.Fatalf("unexpected tags from concatenated inputs: %+v", res)
	}
}

func TestResolveOSC8(t *testing.T) {
	cases := map[string]bool{
		"on":  true,
		"off": false,
		"1":   true,
		"0":   false,
	}
	for input, want := range cases {
		got, err := resolveOSC8(input)
		if err != nil {
			t.Fatalf("resolveOSC8(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("resolveOSC8(%q)=%v want %v", input, got, want)
		}
	}
	if _, err := resolveOSC8("nope"); err == nil {
		t.Fatalf("expected error for invalid osc8 value")
	}
}

func TestBoringThemeHasNoPrefixes(t *testing.T) {
	styles := boringTheme().Styles()
	for _, prefix := range []string{
		styles.Text.Prefix,
		styles.Tag.Prefix,
		styles.Mention.Prefix,
		styles.Link.Prefix,
	} {
		if prefix != "" {
			t.Fatalf("expected empty prefix, got %q", prefix)
		}
	}
}

func TestWriteReport(t *testing.T) {
	res := tagscan.Result{
		Tags:  []string{"#a", "#b"},
		Links: []string{"http://example.com"},
	}
	var buf bytes.Buffer
	if err := writeReport(&buf, res, "", 80); err != nil {
		t.Fatalf("write report: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"tags (2)", "mentions (0)", "links (1)", "  #a", "  #b", "  http://example.com"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in report:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := writeReport(&buf, res, "tags", 80); err != nil {
		t.Fatalf("write report only: %v", err)
	}
	out = buf.String()
	if !strings.Contains(out, "tags (2)") {
		t.Fatalf("missing tags section: %s", out)
	}
	if strings.Contains(out, "mentions") || strings.Contains(out, "links") {
		t.Fatalf("unexpected sections with --only tags:\n%s", out)
	}
}

func TestWriteResultJSON(t *testing.T) {
	res := tagscan.Result{Tags: []string{"#a"}}
	var buf bytes.Buffer
	if err := writeResult(&buf, res, "json", "", 80); err != nil {
		t.Fatalf("write json: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"tags"`) || !strings.Contains(out, `"#a"`) {
		t.Fatalf("unexpected json output: %s", out)
	}
}

func TestPayloadOnly(t *testing.T) {
	res := tagscan.Result{
		Tags:     []string{"#a"},
		Mentions: []string{"@b"},
		Links:    []string{"http://c"},
	}
	if got := payload(res, "mentions"); !reflect.DeepEqual(got, res.Mentions) {
		t.Fatalf("payload mentions: got %+v", got)
	}
	if got := payload(res, ""); !reflect.DeepEqual(got, res) {
		t.Fatalf("payload full: got %+v", got)
	}
}
