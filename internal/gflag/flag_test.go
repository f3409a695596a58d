// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package gflag

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestFlagSet_Bool(t *testing.T) {
	f := NewFlagSet("Bool", ContinueOnError)
	a := f.BoolP("test-a", "", false, "")
	b := f.BoolP("test-b", "b", true, "")
	c := f.BoolP("", "c", false, "")

	err := f.Parse([]string{"--test-a", "file", "--test-b=false", "-c"})
	if err != nil {
		t.Fatalf("f.Parse error %s", err)
	}
	if *a != true {
		t.Errorf("*a is %t; want %t", *a, true)
	}
	if *b != false {
		t.Errorf("*b is %t; want %t", *b, false)
	}
	if *c != true {
		t.Errorf("*c is %t; want %t", *c, true)
	}
	if f.NArg() != 1 || f.Arg(0) != "file" {
		t.Errorf("f.Args() is %q; want %q", f.Args(), []string{"file"})
	}
}

func TestFlagSet_Counter(t *testing.T) {
	f := NewFlagSet("Counter", ContinueOnError)
	a := f.CounterP("test-a", "", 0, "")
	v := f.CounterP("verbose", "v", 0, "")
	err := f.Parse([]string{"--test-a=3", "-vv", "--test-a", "-v"})
	if err != nil {
		t.Fatalf("f.Parse error %s", err)
	}
	if *a != 4 {
		t.Errorf("*a is %d; want %d", *a, 4)
	}
	if *v != 3 {
		t.Errorf("*v is %d; want %d", *v, 3)
	}
}

func TestFlagSet_Values(t *testing.T) {
	f := NewFlagSet("Values", ContinueOnError)
	m := f.StringP("methods", "m", "lz77", "")
	o := f.StringP("output", "o", "", "")
	n := f.IntP("len", "n", 3, "")
	d := f.BoolP("decompress", "d", false, "")
	args := []string{"a.bin", "-dm", "lz78,rc", "--output", "out",
		"--len=0x10", "--", "-b.bin"}
	if err := f.Parse(args); err != nil {
		t.Fatalf("f.Parse error %s", err)
	}
	if *m != "lz78,rc" || *o != "out" || *n != 16 || !*d {
		t.Errorf("got %q %q %d %t", *m, *o, *n, *d)
	}
	want := []string{"a.bin", "-b.bin"}
	if !reflect.DeepEqual(f.Args(), want) {
		t.Errorf("f.Args() is %q; want %q", f.Args(), want)
	}
	if args[0] != "a.bin" || args[1] != "-dm" {
		t.Errorf("Parse modified its argument")
	}
}

func TestFlagSet_Errors(t *testing.T) {
	tests := [][]string{
		{"--unknown"},
		{"-x"},
		{"-m"},
		{"--verbose=yes"},
		{"-m", "-v"},
	}
	for _, args := range tests {
		f := NewFlagSet("Errors", ContinueOnError)
		f.SetOutput(io.Discard)
		f.StringP("methods", "m", "", "")
		f.VarP(new(boolValue), "verbose", "v", NoArg, "", "")
		if err := f.Parse(args); err == nil {
			t.Errorf("f.Parse(%q) returned no error", args)
		}
	}
}

func TestFlagSet_PrintDefaults(t *testing.T) {
	f := NewFlagSet("Print", ContinueOnError)
	buf := new(bytes.Buffer)
	f.SetOutput(buf)
	f.StringP("methods", "m", "lz77,rc", "methods to apply")
	f.BoolP("help", "h", false, "print this message")
	f.PrintDefaults()
	want := strings.Join([]string{
		"  -h, --help             print this message",
		"  -m, --methods=lz77,rc  methods to apply",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("PrintDefaults got\n%s\nwant\n%s", got, want)
	}
}
