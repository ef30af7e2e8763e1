package main

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestReadHeader(t *testing.T) {
	r := csv.NewReader(strings.NewReader("ISBN, Title ,pages\n123,Go,100\n"))
	header, err := readHeader(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row, err := r.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := valueAt(header, row, "isbn"); got != "123" {
		t.Fatalf("expected %q, got %q", "123", got)
	}
	if got := valueAt(header, row, "title"); got != "Go" {
		t.Fatalf("expected %q, got %q", "Go", got)
	}
	if got := valueAt(header, row, "missing"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "empty", raw: "", want: 0},
		{name: "number", raw: "264", want: 264},
		{name: "garbage", raw: "abc", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseInt(tc.raw)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
