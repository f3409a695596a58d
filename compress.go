// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package compress

import (
	"fmt"
	"io"

	"github.com/0xJonas/skylite-sub000/lz77"
	"github.com/0xJonas/skylite-sub000/lz78"
	"github.com/0xJonas/skylite-sub000/rc"
	"github.com/0xJonas/skylite-sub000/xlog"
)

// debug receives the debug output of the package. Nil switches the output
// off.
var debug xlog.Logger

// SetDebugOutput writes debug output of the pipeline and of all codecs to
// w. A nil writer switches the output off.
func SetDebugOutput(w io.Writer) {
	debug = xlog.New(w, "compress: ")
	lz77.SetDebug(xlog.New(w, "lz77: "))
	lz78.SetDebug(xlog.New(w, "lz78: "))
	rc.SetDebug(xlog.New(w, "rc: "))
}

// Report describes the outcome of a single stage of Compress.
type Report struct {
	Method Method
	// Size of the compressed data after the stage. For a skipped stage
	// it is the size before the stage.
	Size int
	// Skipped is set if the stage didn't reduce the size.
	Skipped bool
}

// Compress applies the methods in the given order and returns the
// compressed data together with one report per method. A stage is only
// kept if its output plus the tag byte is smaller than its input, so the
// result is never longer than len(data)+1.
//
// An error is only returned for unknown methods.
func Compress(data []byte, methods []Method) (out []byte, reports []Report, err error) {
	// The leading Raw tag terminates the chain of stages for the
	// decoder.
	out = make([]byte, 1+len(data))
	out[0] = byte(Raw)
	copy(out[1:], data)

	reports = make([]Report, 0, len(methods))
	for _, m := range methods {
		var r Report
		if out, r, err = ApplyStage(out, m); err != nil {
			return nil, nil, err
		}
		reports = append(reports, r)
	}
	return out, reports, nil
}

// ApplyStage applies method m to data produced by Compress. If the stage
// doesn't reduce the size, data is returned unchanged and the report is
// marked as skipped.
func ApplyStage(data []byte, m Method) (out []byte, r Report, err error) {
	r = Report{Method: m, Size: len(data), Skipped: true}
	out = data
	if m != Raw {
		c, ok := codecs[m]
		if !ok {
			return nil, Report{}, fmt.Errorf("%w %d", ErrUnknownMethod,
				byte(m))
		}
		enc := c.encode(data)
		if 1+len(enc) < len(data) {
			out = append([]byte{byte(m)}, enc...)
			r.Size, r.Skipped = len(out), false
		}
	}
	if xlog.Enabled(debug) {
		if r.Skipped {
			xlog.Println(debug, m, "skipped at", r.Size, "bytes")
		} else {
			xlog.Printf(debug, "%s reduced %d to %d bytes", m,
				len(data), r.Size)
		}
	}
	return out, r, nil
}
