package utils

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestHTTPHelper_IsValidURL(t *testing.T) {
	h := NewHTTPHelper()

	tests := map[string]bool{
		"https://example.com/restaurants.json": true,
		"http://localhost:8080/data":           true,
		"ftp://example.com/file":               false,
		"/local/path.json":                     false,
		"https://":                             false,
	}

	for in, want := range tests {
		if got := h.IsValidURL(in); got != want {
			t.Errorf("IsValidURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestHTTPHelper_BuildHeaders(t *testing.T) {
	headers := NewHTTPHelper().BuildHeaders(map[string]string{"If-None-Match": "abc"})

	if headers.Get("User-Agent") != UserAgent {
		t.Errorf("User-Agent = %q", headers.Get("User-Agent"))
	}

	if headers.Get("If-None-Match") != "abc" {
		t.Errorf("If-None-Match = %q", headers.Get("If-None-Match"))
	}
}

func TestStringHelper_TruncateWidth(t *testing.T) {
	s := NewStringHelper()

	if got := s.TruncateWidth("short", 10); got != "short" {
		t.Errorf("TruncateWidth kept-short = %q", got)
	}

	got := s.TruncateWidth("나폴레옹식당 본점", 8)
	if w := runewidth.StringWidth(got); w > 8 {
		t.Errorf("TruncateWidth width = %d, want <= 8 (%q)", w, got)
	}
}

func TestStringHelper_EscapeTableCell(t *testing.T) {
	got := NewStringHelper().EscapeTableCell("Seoul |  Gangnam\n gu")
	if got != `Seoul \| Gangnam gu` {
		t.Errorf("EscapeTableCell = %q", got)
	}
}
