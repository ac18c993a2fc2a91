package findnew

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatProgress(t *testing.T) {
	tests := map[float64]string{
		0:      "00.0%",
		0.0421: "04.2%",
		0.5:    "50.0%",
		0.999:  "99.9%",
		1:      " 100%",
		1.5:    " 100%",
	}
	for ratio, want := range tests {
		if got := FormatProgress(ratio); got != want {
			t.Errorf("FormatProgress(%v) = %q, want %q", ratio, got, want)
		}
	}
}

func TestTextReporterVerbose(t *testing.T) {
	var out bytes.Buffer
	r := &TextReporter{Out: &out, Verbose: true, NoColor: true}

	r.Start(RunInfo{OldDir: "old", NewDir: "new", OldCount: 2, NewCount: 1, Planned: 2})
	r.Compared(0, "new/c.png", "old/a.png", 0.25)
	r.Compared(0.5, "new/c.png", "old/b.png", 0.3)
	r.Unique(1, "new/c.png")
	r.Done(Result{Unique: []string{"new/c.png"}})

	want := strings.Join([]string{
		"old: `old' contains 2 image files.",
		"new: `new' contains 1 image files.",
		"",
		"We will make 2 comparisons.",
		"",
		"[00.0%] comparing: `new/c.png' to `old/a.png': diff: 0.25",
		"[50.0%] comparing: `new/c.png' to `old/b.png': diff: 0.3",
		"[ 100%] found unique image: `new/c.png'.",
		"[ 100%] done.",
		"",
		"Amount of unique images found in `new' directory: 1",
		"",
		"    new/c.png",
		"",
		"",
	}, "\n")
	if out.String() != want {
		t.Fatalf("output =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestTextReporterQuietSkipsComparisons(t *testing.T) {
	var out bytes.Buffer
	r := &TextReporter{Out: &out, NoColor: true}
	r.Compared(0.1, "n", "o", 0.2)
	if out.Len() != 0 {
		t.Fatalf("non-verbose reporter printed %q", out.String())
	}
}
