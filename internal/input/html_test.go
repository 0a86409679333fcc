package input

import (
	"strings"
	"testing"
)

func TestExtractText_SkipsHiddenContent(t *testing.T) {
	doc := `<html><head>
		<title>Night Sky</title>
		<style>body { color: red }</style>
		<script>console.log("noise")</script>
	</head><body>
		<p>The stars wheeled overhead.</p>
		<noscript>enable javascript</noscript>
		<iframe src="ad.html"></iframe>
		<p>Dawn came slowly.</p>
	</body></html>`

	text, title, err := ExtractText(doc)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if title != "Night Sky" {
		t.Errorf("Expected title Night Sky, got %q", title)
	}
	if text != "The stars wheeled overhead. Dawn came slowly." {
		t.Errorf("Unexpected text: %q", text)
	}
	for _, hidden := range []string{"color: red", "console.log", "enable javascript"} {
		if strings.Contains(text, hidden) {
			t.Errorf("Expected %q to be stripped", hidden)
		}
	}
}

func TestExtractText_NoTitle(t *testing.T) {
	text, title, err := ExtractText("<p>just a fragment</p>")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if title != "" {
		t.Errorf("Expected empty title, got %q", title)
	}
	if text != "just a fragment" {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestExtractText_CollapsesWhitespace(t *testing.T) {
	text, _, err := ExtractText("<div>\n\tone\n</div><div>  two  </div>")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "one two" {
		t.Errorf("Unexpected text: %q", text)
	}
}
