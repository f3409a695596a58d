// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package compress shrinks binary blobs, like serialized game assets, that
are embedded into a build artifact and decodes them again at load time.

Compress applies a list of methods in the given order. Every stage that
reduces the size of the data by more than one byte is recorded by
prefixing its output with the method tag; other stages are skipped. The
compressed data carries no length and no checksum. The caller must know
the length of the original data:

	out, reports, err := compress.Compress(data, []compress.Method{
		compress.LZ77, compress.RC})
	...
	data, err = compress.Decompress(out, len(data))

NewDecoder reconstructs the chain of decoders from the tags alone and
returns the outermost decoder as io.ByteReader. Decoding data not created
by Compress or reading past the original length produces garbage.
*/
package compress
