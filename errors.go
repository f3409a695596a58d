// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package compress

import "errors"

var (
	// ErrUnknownMethod reports a method that has no codec.
	ErrUnknownMethod = errors.New("compress: unknown method")
	// ErrLength reports an invalid length of the decompressed data.
	ErrLength = errors.New("compress: invalid length")
)
