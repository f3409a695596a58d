// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package compress

import (
	"fmt"
	"io"
	"strings"
)

// ReportMode controls the verbosity of WriteReport.
type ReportMode int

// Report modes
const (
	ReportNone ReportMode = iota
	ReportNormal
	ReportFull
)

// ReportEnv is the environment variable build tools consult for the report
// mode.
const ReportEnv = "SKYLITE_COMPRESSION_REPORT"

var reportModeNames = [...]string{
	ReportNone:   "none",
	ReportNormal: "normal",
	ReportFull:   "full",
}

func (m ReportMode) String() string {
	if 0 <= m && int(m) < len(reportModeNames) {
		return reportModeNames[m]
	}
	return fmt.Sprintf("ReportMode(%d)", int(m))
}

// ParseReportMode converts the value of the report environment variable.
// An empty string selects ReportNone, unknown values select ReportNormal.
func ParseReportMode(s string) ReportMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ReportNone
	case "full":
		return ReportFull
	default:
		return ReportNormal
	}
}

// methodTitles are used in full reports.
var methodTitles = map[Method]string{
	Raw:  "Raw data",
	LZ77: "Lempel-Ziv 77",
	LZ78: "Lempel-Ziv 78",
	RC:   "Range coding",
}

func methodTitle(m Method) string {
	if s, ok := methodTitles[m]; ok {
		return s
	}
	return m.String()
}

// reduction computes the size reduction in percent.
func reduction(from, to int) float64 {
	if from == 0 {
		return 0
	}
	return float64(from-to) / float64(from) * 100
}

// WriteReport describes the compression of the named data with the
// initial size. ReportNormal writes a single line for the whole pipeline,
// ReportFull an additional line per stage.
func WriteReport(w io.Writer, name string, initialSize int, reports []Report, mode ReportMode) error {
	var err error
	switch mode {
	case ReportNormal:
		final := initialSize
		if len(reports) > 0 {
			final = reports[len(reports)-1].Size
		}
		_, err = fmt.Fprintf(w, "%s: from %d to %d (reduction of %.2f%%)\n",
			name, initialSize, final, reduction(initialSize, final))
	case ReportFull:
		if _, err = fmt.Fprintf(w, "%s:\n", name); err != nil {
			return err
		}
		prev := initialSize
		for _, r := range reports {
			if r.Skipped {
				_, err = fmt.Fprintf(w, "\t%s: (skipped)\n",
					methodTitle(r.Method))
			} else {
				_, err = fmt.Fprintf(w,
					"\t%s: from %d to %d (reduction of %.2f%%)\n",
					methodTitle(r.Method), prev, r.Size,
					reduction(prev, r.Size))
			}
			if err != nil {
				return err
			}
			prev = r.Size
		}
	}
	return err
}
