package conv

import (
	"reflect"
	"testing"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		in     any
		want   float64
		wantOK bool
	}{
		{4.5, 4.5, true},
		{float32(2), 2, true},
		{10, 10, true},
		{int64(7), 7, true},
		{int32(3), 3, true},
		{true, 1, true},
		{false, 0, true},
		{"4.5", 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := ToFloat64(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ToFloat64(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		in     any
		want   bool
		wantOK bool
	}{
		{true, true, true},
		{false, false, true},
		{1, true, true},
		{0, false, true},
		{2.5, true, true},
		{"true", false, false},
		{nil, false, false},
	}
	for _, tt := range tests {
		got, ok := ToBool(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ToBool(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestToString(t *testing.T) {
	if got, ok := ToString("x"); got != "x" || !ok {
		t.Errorf("ToString(x) = (%q, %v)", got, ok)
	}
	if _, ok := ToString(42); ok {
		t.Error("ToString(42) should not convert")
	}
	if _, ok := ToString(nil); ok {
		t.Error("ToString(nil) should not convert")
	}
}

func TestSliceAnyToString(t *testing.T) {
	got := SliceAnyToString([]any{"a", 2, 3.0, struct{}{}})
	want := []string{"a", "2", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SliceAnyToString() = %v, want %v", got, want)
	}
	if SliceAnyToString(nil) != nil {
		t.Error("nil input should yield nil")
	}
	if SliceAnyToString("not a slice") != nil {
		t.Error("non-slice input should yield nil")
	}
}
