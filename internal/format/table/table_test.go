package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	got := Format([][]string{
		{"1", "/srv"},
		{"10", "/home/me/src"},
	}, []Alignment{AlignRight, AlignLeft})
	want := []string{
		" 1  /srv",
		"10  /home/me/src",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatMeasuresDisplayWidth(t *testing.T) {
	got := Format([][]string{
		{"日本", "a"},
		{"x", "b"},
	}, nil)
	want := []string{
		"日本  a",
		"x     b",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}
