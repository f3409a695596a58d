// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package compress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseReportMode(t *testing.T) {
	tests := map[string]ReportMode{
		"":        ReportNone,
		"none":    ReportNone,
		"normal":  ReportNormal,
		"Full":    ReportFull,
		"verbose": ReportNormal,
	}
	for s, want := range tests {
		require.Equal(t, want, ParseReportMode(s), "%q", s)
	}
	require.Equal(t, "full", ReportFull.String())
}

func TestWriteReport(t *testing.T) {
	data := pattern(1024)
	_, reports, err := Compress(data, []Method{LZ78, LZ77, RC})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, "tiles", len(data), reports, ReportNone))
	require.Empty(t, buf.String())

	require.NoError(t, WriteReport(&buf, "tiles", len(data), reports, ReportNormal))
	require.Equal(t, "tiles: from 1024 to 217 (reduction of 78.81%)\n",
		buf.String())

	buf.Reset()
	require.NoError(t, WriteReport(&buf, "tiles", len(data), reports, ReportFull))
	want := strings.Join([]string{
		"tiles:",
		"\tLempel-Ziv 78: from 1024 to 253 (reduction of 75.29%)",
		"\tLempel-Ziv 77: (skipped)",
		"\tRange coding: from 253 to 217 (reduction of 14.23%)",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())
}

func TestParseMethods(t *testing.T) {
	methods, err := ParseMethods("lz77, RC,lz78")
	require.NoError(t, err)
	require.Equal(t, []Method{LZ77, RC, LZ78}, methods)

	methods, err = ParseMethods("")
	require.NoError(t, err)
	require.Empty(t, methods)

	_, err = ParseMethods("lz77,zip")
	require.ErrorIs(t, err, ErrUnknownMethod)

	require.Equal(t, "lz78", LZ78.String())
	require.Equal(t, "Method(9)", Method(9).String())
}
