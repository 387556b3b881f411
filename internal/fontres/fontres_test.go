package fontres

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func TestResolveFallsBackToBuiltin(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "broken.ttf")
	if err := os.WriteFile(garbage, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}

	h := Resolve([]string{filepath.Join(dir, "missing.ttf"), garbage}, 64, nil)
	defer h.Close()

	if !h.Builtin() {
		t.Fatalf("Source = %q, want %q", h.Source, BuiltinSource)
	}
	if h.Face == nil {
		t.Fatal("builtin handle has nil face")
	}
	if h.Size != 64 {
		t.Errorf("Size = %d, want 64", h.Size)
	}
}

func TestResolveNoCandidates(t *testing.T) {
	h := Resolve(nil, 12, nil)
	if !h.Builtin() {
		t.Errorf("Source = %q, want builtin", h.Source)
	}
}

func TestResolveEmbedded(t *testing.T) {
	h := Resolve([]string{"/nonexistent/Arial.ttf", Embedded}, 48, nil)
	defer h.Close()

	if h.Source != Embedded {
		t.Fatalf("Source = %q, want %q", h.Source, Embedded)
	}
	if h.Builtin() {
		t.Error("embedded handle reported as builtin")
	}
	// A 48pt face is much taller than the 13px bitmap font.
	if lh := h.Face.Metrics().Height.Ceil(); lh <= 13 {
		t.Errorf("line height = %d, want > 13", lh)
	}
}

func TestResolveFirstLoadableWins(t *testing.T) {
	dir := t.TempDir()
	ttf := filepath.Join(dir, "Bold.ttf")
	if err := os.WriteFile(ttf, gobold.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	h := Resolve([]string{ttf, Embedded}, 20, nil)
	defer h.Close()
	if h.Source != ttf {
		t.Errorf("Source = %q, want %q", h.Source, ttf)
	}
}

func TestResolveNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -8} {
		h := Resolve([]string{Embedded}, size, nil)
		if !h.Builtin() {
			t.Errorf("size %d: Source = %q, want builtin", size, h.Source)
		}
	}
}

func TestResolveDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	Resolve([]string{"/nonexistent/font.ttf"}, 10, &buf)

	out := buf.String()
	if !strings.Contains(out, "fontres: /nonexistent/font.ttf:") {
		t.Errorf("debug output missing candidate failure: %q", out)
	}
	if !strings.Contains(out, BuiltinSource) {
		t.Errorf("debug output missing builtin notice: %q", out)
	}
}

func TestCandidatesNonEmpty(t *testing.T) {
	c := Candidates()
	if len(c) != 2 {
		t.Fatalf("len(Candidates()) = %d, want 2", len(c))
	}
	for _, p := range c {
		if !filepath.IsAbs(p) {
			t.Errorf("candidate %q is not absolute", p)
		}
	}
}

func TestBuiltinCloseIsNoop(t *testing.T) {
	h := Resolve(nil, 8, nil)
	if err := h.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	// The shared builtin face must stay usable after Close.
	if adv, ok := h.Face.GlyphAdvance('C'); !ok || adv == 0 {
		t.Error("builtin face unusable after Close")
	}
}
