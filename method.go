// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package compress

import (
	"fmt"
	"io"
	"strings"

	"github.com/0xJonas/skylite-sub000/lz77"
	"github.com/0xJonas/skylite-sub000/lz78"
	"github.com/0xJonas/skylite-sub000/rc"
)

// Method identifies a compression stage. The value is stored as tag byte
// in front of the output of the stage.
type Method byte

// Supported methods. Raw is never applied; its tag terminates the chain of
// stages in the compressed data.
const (
	Raw Method = iota
	LZ77
	LZ78
	RC
)

var methodNames = [...]string{
	Raw:  "raw",
	LZ77: "lz77",
	LZ78: "lz78",
	RC:   "rc",
}

// String returns the short name of the method.
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", byte(m))
}

// ParseMethod returns the method with the given name. Case is ignored.
func ParseMethod(s string) (Method, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for i, name := range methodNames {
		if name == t {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMethod, s)
}

// ParseMethods parses a comma separated list of method names.
func ParseMethods(s string) ([]Method, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	methods := make([]Method, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMethod(f)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}

// Methods returns all methods that can be applied as stages.
func Methods() []Method {
	return []Method{LZ77, LZ78, RC}
}

// codec provides encoder and decoder for a method.
type codec struct {
	encode     func(p []byte) []byte
	newDecoder func(r io.ByteReader) (io.ByteReader, error)
}

var codecs = map[Method]codec{
	LZ77: {
		encode: lz77.Encode,
		newDecoder: func(r io.ByteReader) (io.ByteReader, error) {
			d, err := lz77.NewDecoder(r)
			if err != nil {
				return nil, err
			}
			return d, nil
		},
	},
	LZ78: {
		encode: lz78.Encode,
		newDecoder: func(r io.ByteReader) (io.ByteReader, error) {
			return lz78.NewDecoder(r), nil
		},
	},
	RC: {
		encode: rc.Encode,
		newDecoder: func(r io.ByteReader) (io.ByteReader, error) {
			d, err := rc.NewDecoder(r)
			if err != nil {
				return nil, err
			}
			return d, nil
		},
	},
}
