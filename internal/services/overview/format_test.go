package overview

import "testing"

func TestCacheSlots(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get(FormatHTML); ok {
		t.Fatal("new cache must be empty")
	}
	c.Set(FormatHTML, "<table>")
	c.Set(FormatMarkdown, "| a |")
	if out, ok := c.Get(FormatHTML); !ok || out != "<table>" {
		t.Fatalf("html slot = %q, %v", out, ok)
	}
	c.Invalidate(FormatHTML)
	if _, ok := c.Get(FormatHTML); ok {
		t.Fatal("html slot survived Invalidate")
	}
	if _, ok := c.Get(FormatMarkdown); !ok {
		t.Fatal("invalidating html must keep markdown")
	}
	c.Clear()
	if _, ok := c.Get(FormatMarkdown); ok {
		t.Fatal("markdown slot survived Clear")
	}
}

func TestFormatString(t *testing.T) {
	if FormatHTML.String() != "html" || FormatMarkdown.String() != "markdown" {
		t.Fatal("unexpected format names")
	}
	if Format(9).String() != "format(9)" {
		t.Fatalf("unknown format = %q", Format(9).String())
	}
	if len(Formats()) != 2 {
		t.Fatal("expected two formats")
	}
}
