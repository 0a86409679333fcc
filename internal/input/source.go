// Package input resolves analysis sources into plain UTF-8 text. The
// pipeline itself performs no I/O; everything that reads stdin, files
// or the network lives here. A source string is interpreted as inline
// text, "-" for stdin, an existing file path, or an HTTP(S) URL.
package input

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Kind classifies where an input source comes from.
type Kind string

const (
	KindText  Kind = "text"
	KindStdin Kind = "stdin"
	KindFile  Kind = "file"
	KindURL   Kind = "url"
)

// Document is a resolved input ready for analysis.
type Document struct {
	// Text is the plain text handed to the pipeline.
	Text string
	// Source names where the text came from: "inline", "stdin", the
	// file path, or the final URL after redirects.
	Source string
	Kind   Kind
	// Title is the HTML <title> when the source was an HTML page.
	Title string
}

// Resolver turns a source string into a Document.
type Resolver struct {
	fetcher  *Fetcher
	stdin    io.Reader
	maxBytes int64
}

// NewResolver creates a resolver. The fetcher may be nil when URL
// sources are not expected. Local reads (stdin, files) are capped at
// maxBytes; non-positive means the fetcher default.
func NewResolver(fetcher *Fetcher, maxBytes int64) *Resolver {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyBytes
	}
	return &Resolver{
		fetcher:  fetcher,
		stdin:    os.Stdin,
		maxBytes: maxBytes,
	}
}

// DetectKind classifies a source string. It consults the filesystem:
// a source that names an existing regular file is a file, otherwise
// it is inline text.
func DetectKind(source string) Kind {
	if source == "-" {
		return KindStdin
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return KindURL
	}
	if info, err := os.Stat(source); err == nil && !info.IsDir() {
		return KindFile
	}
	return KindText
}

// Resolve reads the source and returns its text. HTML content (an
// .html file or a text/html response) is reduced to visible text
// first.
func (r *Resolver) Resolve(ctx context.Context, source string) (*Document, error) {
	switch DetectKind(source) {
	case KindStdin:
		data, err := io.ReadAll(io.LimitReader(r.stdin, r.maxBytes))
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return &Document{Text: string(data), Source: "stdin", Kind: KindStdin}, nil

	case KindURL:
		if r.fetcher == nil {
			return nil, fmt.Errorf("url source %q: no fetcher configured", source)
		}
		page, err := r.fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, err
		}
		return &Document{Text: page.Text, Source: page.FinalURL, Kind: KindURL, Title: page.Title}, nil

	case KindFile:
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		if int64(len(data)) > r.maxBytes {
			data = data[:r.maxBytes]
		}
		doc := &Document{Source: source, Kind: KindFile}
		if isHTMLPath(source) {
			text, title, err := ExtractText(string(data))
			if err != nil {
				return nil, fmt.Errorf("extract text: %w", err)
			}
			doc.Text = text
			doc.Title = title
		} else {
			doc.Text = string(data)
		}
		return doc, nil

	default:
		return &Document{Text: source, Source: "inline", Kind: KindText}, nil
	}
}

func isHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}
