package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func writeRecord(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRecordBrowser(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "a.sgf", recordSGF)
	last := writeRecord(t, dir, "b.sgf", `(;SZ[5];B[cc];W[bb])`)

	var opened []string
	done := 0
	rb := NewRecordBrowser(dir, func(path string) { opened = append(opened, path) }, func() { done++ })

	if n := len(rb.Records()); n != 2 {
		t.Fatalf("listed %d records, want 2", n)
	}
	r, ok := rb.Selected()
	if !ok || r.FilePath != last {
		t.Fatalf("selected %q, want %q", r.FilePath, last)
	}

	b := rb.finalBoard(last)
	if b == nil || b.Width() != 5 {
		t.Fatalf("final board of b.sgf = %v", b)
	}
	if rb.finalBoard(last) != b {
		t.Error("final board was not cached")
	}

	rb.open()
	if len(opened) != 1 || opened[0] != last {
		t.Errorf("opened %v, want [%s]", opened, last)
	}

	if rb.handleInput(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) != nil || done != 1 {
		t.Errorf("q: done called %d times, want 1", done)
	}
	if rb.handleInput(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)) == nil {
		t.Error("arrow keys should reach the list")
	}
}

func TestRecordBrowserEmptyDir(t *testing.T) {
	rb := NewRecordBrowser(t.TempDir(), nil, nil)
	if _, ok := rb.Selected(); ok {
		t.Error("empty dir has a selection")
	}
	rb.open()
}
