package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuffer_InsertChar(t *testing.T) {
	b := Empty()
	b.InsertChar(0, 0, 'a')
	b.InsertChar(0, 1, 'c')
	b.InsertChar(0, 1, 'b')
	b.InsertChar(0, 0, 'π')

	if got, want := b.Line(0), "πabc"; got != want {
		t.Fatalf("line=%q, want %q", got, want)
	}
}

func TestBuffer_RemoveChar(t *testing.T) {
	b := FromLines([]string{"aπc"})

	if got := b.RemoveChar(0, 1); got != 'π' {
		t.Fatalf("removed=%q, want 'π'", got)
	}
	if got, want := b.Line(0), "ac"; got != want {
		t.Fatalf("line=%q, want %q", got, want)
	}
	if got := b.RemoveChar(0, 1); got != 'c' {
		t.Fatalf("removed=%q, want 'c'", got)
	}
	if got := b.RemoveChar(0, 0); got != 'a' {
		t.Fatalf("removed=%q, want 'a'", got)
	}
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
}

func TestBuffer_RemoveChar_AtEndPanics(t *testing.T) {
	b := FromLines([]string{"ab"})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	b.RemoveChar(0, 2)
}

func TestBuffer_SplitLine(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		row  int
		col  int
		want []string
	}{
		{name: "middle", in: []string{"abcd"}, row: 0, col: 2, want: []string{"ab", "cd"}},
		{name: "start", in: []string{"ab"}, row: 0, col: 0, want: []string{"", "ab"}},
		{name: "end", in: []string{"ab"}, row: 0, col: 2, want: []string{"ab", ""}},
		{name: "later row", in: []string{"x", "yz", "w"}, row: 1, col: 1, want: []string{"x", "y", "z", "w"}},
		{name: "empty", in: []string{""}, row: 0, col: 0, want: []string{"", ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := FromLines(tc.in)
			b.SplitLine(tc.row, tc.col)
			if diff := cmp.Diff(tc.want, b.Lines()); diff != "" {
				t.Fatalf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuffer_SplitLine_HalvesDoNotAlias(t *testing.T) {
	b := FromLines([]string{"abcd"})
	b.SplitLine(0, 2)
	b.InsertChar(0, 2, 'X')
	if diff := cmp.Diff([]string{"abX", "cd"}, b.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestBuffer_JoinWithPrevious(t *testing.T) {
	b := FromLines([]string{"ab", "cd", "ef"})
	b.JoinWithPrevious(1)
	if diff := cmp.Diff([]string{"abcd", "ef"}, b.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}

	b.JoinWithPrevious(1)
	if diff := cmp.Diff([]string{"abcdef"}, b.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestBuffer_JoinWithPrevious_FirstLinePanics(t *testing.T) {
	b := FromLines([]string{"ab", "cd"})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
		if got := b.LineCount(); got != 2 {
			t.Fatalf("line count=%d, want 2", got)
		}
	}()
	b.JoinWithPrevious(0)
}

func TestBuffer_InsertLine(t *testing.T) {
	b := FromLines([]string{"a", "c"})
	b.InsertLine(1, []rune("b"))
	b.InsertLine(3, []rune("d"))
	b.InsertLine(0, nil)

	if diff := cmp.Diff([]string{"", "a", "b", "c", "d"}, b.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestBuffer_InsertLine_CopiesText(t *testing.T) {
	b := Empty()
	text := []rune("xy")
	b.InsertLine(1, text)
	text[0] = 'z'
	if got := b.Line(1); got != "xy" {
		t.Fatalf("line=%q, want %q", got, "xy")
	}
}

func TestBuffer_SplitThenJoinRestores(t *testing.T) {
	b := FromLines([]string{"hello world", "next"})
	b.SplitLine(0, 5)
	b.JoinWithPrevious(1)
	if diff := cmp.Diff([]string{"hello world", "next"}, b.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}
