package main

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func TestParseFlags(t *testing.T) {
	cases := []struct {
		args    []string
		want    options
		wantErr bool
	}{
		{args: nil, want: options{backend: "ansi"}},
		{args: []string{"notes.txt"}, want: options{backend: "ansi", path: "notes.txt"}},
		{args: []string{"-backend", "tcell", "-clip", "a"}, want: options{backend: "tcell", clip: true, path: "a"}},
		{args: []string{"-log", "x.log", "-version"}, want: options{backend: "ansi", logPath: "x.log", version: true}},
		{args: []string{"a", "b"}, wantErr: true},
		{args: []string{"-backend", "curses"}, wantErr: true},
		{args: []string{"-nope"}, wantErr: true},
	}

	for _, tc := range cases {
		got, err := parseFlags(tc.args, io.Discard)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseFlags(%q): expected error", tc.args)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseFlags(%q): %v", tc.args, err)
		}
		if got != tc.want {
			t.Fatalf("parseFlags(%q): got %+v, want %+v", tc.args, got, tc.want)
		}
	}
}

func TestParseFlags_Help(t *testing.T) {
	if _, err := parseFlags([]string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err=%v, want flag.ErrHelp", err)
	}
}
