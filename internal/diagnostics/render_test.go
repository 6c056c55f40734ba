package diagnostics

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderWithExcerpt(t *testing.T) {
	src := SourceFromString("a.rl", "type o;\nlet a : Term q;\n")
	err := New(NoBinding{Ident: "q"}, NewLocation("a.rl", 2, 14))

	r := NewRenderer(nil, false)
	got := r.Format(err, src)
	want := "At a.rl:2:14:\n|\n|\tlet a : Term q;\n|\t             ^\nNoBinding : no binding found for `q`\n"
	if got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderWithoutExcerpt(t *testing.T) {
	err := New(UnboundImplication{}, NewLocation("a.rl", 3, 1))
	var buf bytes.Buffer
	NewRenderer(&buf, false).Render(err, nil)
	want := "At a.rl:3:1:\nUnboundImplication : implication between non-nullary formulae\n"
	if buf.String() != want {
		t.Errorf("Render() = %q, want %q", buf.String(), want)
	}
}

func TestRenderColor(t *testing.T) {
	err := New(UnboundTheorem{}, NewLocation("a.rl", 1, 1))
	got := NewRenderer(nil, true).Format(err, nil)
	if !strings.Contains(got, ansiRed) || !strings.Contains(got, ansiReset) {
		t.Errorf("expected ANSI colors in %q", got)
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{BindingExists{Ident: "x"}, "duplicate binding of `x`"},
		{ITypeMismatch{Found: "o", Expected: "(o -> o)"}, "found type `o`, expected type `(o -> o)`"},
		{MTypeMismatch{Found: "Type", Expected: "Term _"}, "found metalogical type `Type`, expected metalogical type `Term _`"},
		{UnexpectedToken{Found: ")", Expected: []string{";", "="}}, "found token \")\", expected one of [\";\", \"=\"]"},
		{UnboundTheorem{}, "axiom/theorem accepts logical arguments"},
	}
	for _, tt := range tests {
		if got := tt.kind.Message(); got != tt.want {
			t.Errorf("%s.Message() = %q, want %q", tt.kind.Name(), got, tt.want)
		}
	}
}

func TestLoadSourceMissing(t *testing.T) {
	ctx := NewLocation("<prelude>", 0, 0)
	_, err := LoadSource(filepath.Join(t.TempDir(), "missing.rl"), ctx)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if KindName(err) != "FileOpenFailure" {
		t.Errorf("KindName = %q, want FileOpenFailure", KindName(err))
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected error to wrap os.ErrNotExist")
	}
	if !strings.Contains(err.Error(), "`NotFound`") {
		t.Errorf("message should classify the OS error: %s", err)
	}
}

func TestLoadSourceLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.rl")
	if err := os.WriteFile(path, []byte("type o;\r\nlet a : Term o;"), 0o644); err != nil {
		t.Fatal(err)
	}
	src, err := LoadSource(path, NewLocation("<prelude>", 0, 0))
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	if src.LineCount() != 2 {
		t.Fatalf("LineCount = %d, want 2", src.LineCount())
	}
	if line, _ := src.Line(1); line != "type o;" {
		t.Errorf("Line(1) = %q", line)
	}
	if line, _ := src.Line(2); line != "let a : Term o;" {
		t.Errorf("Line(2) = %q", line)
	}
	if _, ok := src.Line(3); ok {
		t.Errorf("Line(3) should be out of range")
	}
}
