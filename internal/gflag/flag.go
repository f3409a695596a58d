// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package gflag parses GNU-style command line options. Long options are
// written as --name or --name=value, short options as -x, and short
// options may be combined as in -dv. Options and file arguments may be
// interspersed; the argument -- ends option processing.
package gflag

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

type ErrorHandling int

const (
	ContinueOnError ErrorHandling = iota
	ExitOnError
	PanicOnError
)

// HasArg describes whether an option takes a value.
type HasArg int

const (
	// RequiredArg options consume the next argument if no value is
	// given with =.
	RequiredArg HasArg = iota
	// NoArg options never take a value.
	NoArg
	// OptionalArg options take a value only in the --name=value form.
	OptionalArg
)

// Value is the interface of the value stored in an option. Update is
// called if the option is given without a value.
type Value interface {
	Set(string) error
	Update()
	String() string
}

type Flag struct {
	Name       string
	Shorthands string
	HasArg     HasArg
	Value      Value
}

type line struct {
	flags string
	usage string
}

func lineFlags(name, shorthands, defaultValue string) string {
	var sb strings.Builder
	for i, r := range shorthands {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "-%c", r)
	}
	if name != "" {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("--" + name)
		if defaultValue != "" {
			sb.WriteString("=" + defaultValue)
		}
	}
	return sb.String()
}

func writeLines(w io.Writer, ls []line) error {
	l := make([]line, len(ls))
	copy(l, ls)
	sort.Slice(l, func(i, j int) bool { return l[i].flags < l[j].flags })
	width := 0
	for _, x := range l {
		width = max(width, len(x.flags))
	}
	for _, x := range l {
		if _, err := fmt.Fprintf(w, "  %-*s  %s\n", width, x.flags,
			x.usage); err != nil {
			return err
		}
	}
	return nil
}

// FlagSet is a set of options.
type FlagSet struct {
	// Usage is called if parsing fails. If nil the option lines are
	// printed.
	Usage func()

	name          string
	formal        map[string]*Flag
	lines         []line
	args          []string
	output        io.Writer
	errorHandling ErrorHandling
}

func NewFlagSet(name string, errorHandling ErrorHandling) *FlagSet {
	return &FlagSet{name: name, errorHandling: errorHandling}
}

// Args returns the arguments that are not options.
func (f *FlagSet) Args() []string { return f.args }

func (f *FlagSet) NArg() int { return len(f.args) }

func (f *FlagSet) Arg(i int) string {
	if !(0 <= i && i < len(f.args)) {
		return ""
	}
	return f.args[i]
}

func (f *FlagSet) SetOutput(w io.Writer) { f.output = w }

func (f *FlagSet) out() io.Writer {
	if f.output == nil {
		return os.Stderr
	}
	return f.output
}

// PrintDefaults writes one line per option to the output of the flag set.
func (f *FlagSet) PrintDefaults() {
	if err := writeLines(f.out(), f.lines); err != nil {
		panic(fmt.Errorf("gflag: %w", err))
	}
}

func (f *FlagSet) lookup(name string) (*Flag, error) {
	flag, ok := f.formal[name]
	if !ok {
		if len(name) == 1 {
			return nil, fmt.Errorf("short option -%s is unsupported",
				name)
		}
		return nil, fmt.Errorf("long option --%s is unsupported", name)
	}
	return flag, nil
}

// value processes the option flag at f.args[i-1] without attached value.
func (f *FlagSet) value(flag *Flag, i int) error {
	if flag.HasArg != RequiredArg {
		flag.Value.Update()
		return nil
	}
	if i < len(f.args) {
		if arg := f.args[i]; arg == "" || arg[0] != '-' || arg == "-" {
			f.removeArg(i)
			return flag.Value.Set(arg)
		}
	}
	return errors.New("no argument present")
}

func (f *FlagSet) removeArg(i int) {
	f.args = append(f.args[:i], f.args[i+1:]...)
}

// parseArg processes the argument i and returns the index of the next
// argument to look at.
func (f *FlagSet) parseArg(i int) (next int, err error) {
	arg := f.args[i]
	if len(arg) < 2 || arg[0] != '-' {
		return i + 1, nil
	}
	f.removeArg(i)
	if arg == "--" {
		return len(f.args), nil
	}
	if arg[1] == '-' {
		name, v, hasValue := strings.Cut(arg[2:], "=")
		if len(name) < 2 {
			return i, fmt.Errorf("%s is not a long option", arg)
		}
		flag, err := f.lookup(name)
		if err != nil {
			return i, err
		}
		if !hasValue {
			return i, f.value(flag, i)
		}
		if flag.HasArg == NoArg {
			return i, fmt.Errorf("option --%s doesn't support an argument",
				name)
		}
		return i, flag.Value.Set(v)
	}
	for _, r := range arg[1:] {
		flag, err := f.lookup(string(r))
		if err != nil {
			return i, err
		}
		if err = f.value(flag, i); err != nil {
			return i, fmt.Errorf("option -%c: %w", r, err)
		}
	}
	return i, nil
}

// Parse parses the arguments, which must not include the command name.
func (f *FlagSet) Parse(arguments []string) error {
	f.args = append([]string(nil), arguments...)
	for i := 0; i < len(f.args); {
		var err error
		if i, err = f.parseArg(i); err == nil {
			continue
		}
		fmt.Fprintf(f.out(), "%s: %s\n", f.name, err)
		if f.Usage != nil {
			f.Usage()
		} else {
			f.PrintDefaults()
		}
		switch f.errorHandling {
		case ExitOnError:
			os.Exit(2)
		case PanicOnError:
			panic(err)
		}
		return err
	}
	return nil
}

// VarP defines an option with a long name and single-character
// shorthands. Either may be empty.
func (f *FlagSet) VarP(value Value, name, shorthands string, hasArg HasArg, usage, defaultValue string) {
	if name == "" && shorthands == "" {
		panic("gflag: option without name or shorthands")
	}
	if len(name) == 1 {
		panic(fmt.Sprintf("gflag: single character name %q; use shorthands",
			name))
	}
	flag := &Flag{Name: name, Shorthands: shorthands, HasArg: hasArg,
		Value: value}
	if f.formal == nil {
		f.formal = make(map[string]*Flag)
	}
	names := []string{name}
	for _, r := range shorthands {
		names = append(names, string(r))
	}
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := f.formal[n]; ok {
			panic(fmt.Sprintf("gflag: option %s redefined", n))
		}
		f.formal[n] = flag
	}
	f.lines = append(f.lines,
		line{lineFlags(name, shorthands, defaultValue), usage})
}

type boolValue bool

func (b *boolValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	*b = boolValue(v)
	return err
}

func (b *boolValue) Update()        { *b = true }
func (b *boolValue) String() string { return strconv.FormatBool(bool(*b)) }

// BoolP defines a boolean option. It is set to true if given without value.
func (f *FlagSet) BoolP(name, shorthands string, value bool, usage string) *bool {
	p := new(bool)
	*p = value
	def := ""
	if value {
		def = "true"
	}
	f.VarP((*boolValue)(p), name, shorthands, OptionalArg, usage, def)
	return p
}

type intValue int

func (n *intValue) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, 0)
	*n = intValue(v)
	return err
}

func (n *intValue) Update()        { *n++ }
func (n *intValue) String() string { return strconv.Itoa(int(*n)) }

// IntP defines an integer option requiring a value.
func (f *FlagSet) IntP(name, shorthands string, value int, usage string) *int {
	p := new(int)
	*p = value
	def := ""
	if value != 0 {
		def = strconv.Itoa(value)
	}
	f.VarP((*intValue)(p), name, shorthands, RequiredArg, usage, def)
	return p
}

// CounterP defines an option that counts how often it is given. A value
// given with = replaces the count.
func (f *FlagSet) CounterP(name, shorthands string, value int, usage string) *int {
	p := new(int)
	*p = value
	f.VarP((*intValue)(p), name, shorthands, OptionalArg, usage, "")
	return p
}

type stringValue string

func (s *stringValue) Set(v string) error { *s = stringValue(v); return nil }
func (s *stringValue) Update()            {}
func (s *stringValue) String() string     { return string(*s) }

// StringP defines a string option requiring a value.
func (f *FlagSet) StringP(name, shorthands string, value string, usage string) *string {
	p := new(string)
	*p = value
	f.VarP((*stringValue)(p), name, shorthands, RequiredArg, usage, value)
	return p
}
