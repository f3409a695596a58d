package main

import (
	"bytes"
	"testing"

	compress "github.com/0xJonas/skylite-sub000"
	"github.com/0xJonas/skylite-sub000/internal/tuning"
)

func TestSlot(t *testing.T) {
	slots := []float64{0.7, 0.5, 0.3}
	tests := []struct {
		ratio float64
		i     int
		ok    bool
	}{
		{0.9, -1, false},
		{0.7, 0, true},
		{0.6, 0, true},
		{0.4, 1, true},
		{0.1, 2, true},
	}
	for _, tc := range tests {
		i, ok := slot(slots, tc.ratio)
		if i != tc.i || ok != tc.ok {
			t.Errorf("slot(%.1f) is %d, %t; want %d, %t",
				tc.ratio, i, ok, tc.i, tc.ok)
		}
	}
}

func TestFindPresets(t *testing.T) {
	files := []tuning.File{
		{Name: "runs", Data: bytes.Repeat([]byte{1, 1, 1, 1, 2, 2}, 200)},
	}
	orderings := [][]compress.Method{{compress.LZ77}}
	presets, err := findPresets([]float64{0.1, 0.9}, files, orderings)
	if err != nil {
		t.Fatalf("findPresets error %s", err)
	}
	if len(presets) != 2 {
		t.Fatalf("got %d presets; want %d", len(presets), 2)
	}
	if !presets[1].present {
		t.Fatalf("slot 0.1 is not present")
	}
	if presets[0].present {
		t.Errorf("slot 0.9 is present")
	}

	if _, err = findPresets(nil, files, orderings); err == nil {
		t.Errorf("findPresets without slots returned no error")
	}
}

func BenchmarkRatio(b *testing.B) {
	configs := []struct {
		name    string
		methods []compress.Method
	}{
		{"lz77", []compress.Method{compress.LZ77}},
		{"lz78", []compress.Method{compress.LZ78}},
		{"rc", []compress.Method{compress.RC}},
		{"lz77-rc", []compress.Method{compress.LZ77, compress.RC}},
		{"lz78-rc", []compress.Method{compress.LZ78, compress.RC}},
		{"all", compress.Methods()},
	}
	for _, c := range configs {
		b.Run(c.name, compressBenchmark(silesiaFiles(), c.methods))
	}
}
