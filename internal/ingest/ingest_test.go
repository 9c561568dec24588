package ingest

import (
	"slices"
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []float64
		wantErr  bool
	}{
		{"Empty", "", []float64{}, false},
		{"WhitespaceOnly", "  \n\t ", []float64{}, false},
		{"SpaceSeparated", "1.2 1.1 -0.1", []float64{1.2, 1.1, -0.1}, false},
		{"CommaSeparated", "1,2,3", []float64{1, 2, 3}, false},
		{"MixedSeparators", "1.5, 2.5\n3.5", []float64{1.5, 2.5, 3.5}, false},
		{"BadToken", "1.2 fish 3", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Text(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.expected) {
				t.Errorf("Text() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTextBadTokenNamesOffender(t *testing.T) {
	_, err := Text("1 two 3")
	if err == nil || !strings.Contains(err.Error(), `"two"`) {
		t.Errorf("error %v should name the offending token", err)
	}
}

func TestArgs(t *testing.T) {
	got, err := Args([]string{"5", "-1.5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, []float64{5, -1.5}) {
		t.Errorf("Args() = %v", got)
	}
}

func TestReader(t *testing.T) {
	got, err := Reader(strings.NewReader("4 8\n15 16, 23 42"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, []float64{4, 8, 15, 16, 23, 42}) {
		t.Errorf("Reader() = %v", got)
	}
}

func TestFileMissing(t *testing.T) {
	if _, err := File("does-not-exist.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
