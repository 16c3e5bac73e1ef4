package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/tagscan"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	version.SetDefaultModule("pkt.systems/tagscan")
}

func main() {
	var (
		format     string
		highlight  bool
		themeName  string
		widthFlag  int
		osc8Flag   string
		outPath    string
		boring     bool
		listThemes bool
		only       string
	)

	flags := pflag.NewFlagSet("tagscan", pflag.ExitOnError)
	flags.StringVarP(&format, "format", "f", "text", "Output format: text|json|yaml")
	flags.BoolVarP(&highlight, "highlight", "H", false, "Re-print the input with tokens styled instead of listing them")
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks in highlight mode: auto|on|off")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&boring, "boring", "b", false, "Disable ANSI styling in highlight mode")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVar(&only, "only", "", "Limit output to one kind: tags|mentions|links")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: tagscan [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nInputs are files or http(s):// URLs; stdin is used when none are given.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		printThemes()
		return
	}

	if only != "" && only != "tags" && only != "mentions" && only != "links" {
		fmt.Fprintf(os.Stderr, "invalid --only %q: expected tags|mentions|links\n", only)
		os.Exit(2)
	}
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "text", "json", "yaml":
	default:
		fmt.Fprintf(os.Stderr, "invalid --format %q: expected text|json|yaml\n", format)
		os.Exit(2)
	}

	theme, ok := tagscan.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		printThemes()
		os.Exit(2)
	}
	if boring {
		theme = boringTheme()
	}

	args := flags.Args()
	reader, closer, err := openInputs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	width := resolveWidth(widthFlag)

	if highlight {
		osc8, err := resolveOSC8(osc8Flag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --osc8 %q: %v\n", osc8Flag, err)
			os.Exit(2)
		}
		if err := runHighlight(reader, writer, theme, osc8, width); err != nil {
			fmt.Fprintf(os.Stderr, "highlight: %v\n", err)
			os.Exit(1)
		}
		return
	}

	res, err := tagscan.Extract(reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract: %v\n", err)
		os.Exit(1)
	}
	if err := writeResult(writer, res, format, only, width); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
}

func runHighlight(r io.Reader, w io.Writer, theme tagscan.Theme, osc8 bool, width int) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if err := tagscan.ValidateInput(data); err != nil {
		return err
	}
	out := tagscan.Highlight(string(data), theme, tagscan.WithOSC8(osc8))
	if width > 0 {
		out = wordwrap.String(out, width)
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}

func writeResult(w io.Writer, res tagscan.Result, format, only string, width int) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(payload(res, only), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(payload(res, only))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return writeReport(w, res, only, width)
	}
}

// payload narrows the result to a single slice when --only is set so
// the structured formats do not emit empty siblings.
func payload(res tagscan.Result, only string) any {
	switch only {
	case "tags":
		return res.Tags
	case "mentions":
		return res.Mentions
	case "links":
		return res.Links
	default:
		return res
	}
}

func writeReport(w io.Writer, res tagscan.Result, only string, width int) error {
	sections := []struct {
		name  string
		items []string
	}{
		{"tags", res.Tags},
		{"mentions", res.Mentions},
		{"links", res.Links},
	}
	for _, sec := range sections {
		if only != "" && only != sec.name {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s (%d)\n", sec.name, len(sec.items)); err != nil {
			return err
		}
		if len(sec.items) == 0 {
			continue
		}
		body := strings.Join(sec.items, "\n")
		if width > 2 {
			body = wordwrap.String(body, width-2)
		}
		if _, err := fmt.Fprintln(w, indent.String(body, 2)); err != nil {
			return err
		}
	}
	return nil
}

func printThemes() {
	for _, name := range tagscan.AvailableThemes() {
		fmt.Fprintln(os.Stdout, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return tagscan.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func boringTheme() tagscan.Theme {
	return tagscan.NewTheme("boring", tagscan.Styles{})
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	return &multiInputReader{sources: sources}, nil, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	clean := normalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
