// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package xlog supports debug output that can be switched on and off per
package.

Every codec package keeps an unexported variable of type Logger. The
variable is nil by default and the functions of this package do nothing
for a nil Logger, so no formatting work is done while debugging is
switched off. The *log.Logger type of the standard library satisfies the
Logger interface.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
)

// Logger is the interface required for debug output. It is supported by
// the log.Logger type.
type Logger interface {
	Output(calldepth int, s string) error
}

// New returns a logger writing to w with the given prefix. If w is nil
// the nil Logger is returned, which switches the output off.
func New(w io.Writer, prefix string) Logger {
	if w == nil {
		return nil
	}
	return log.New(w, prefix, 0)
}

// Enabled reports whether l produces output.
func Enabled(l Logger) bool { return l != nil }

// Printf formats the arguments using the format string and writes the
// result to l. Nothing happens for a nil logger.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println writes the arguments separated by spaces to l. Nothing happens
// for a nil logger.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
