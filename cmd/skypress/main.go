// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command skypress compresses files with the multi-stage compression
// pipeline and reports the size reduction of every stage.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	compress "github.com/0xJonas/skylite-sub000"
	"github.com/0xJonas/skylite-sub000/blobcache"
	"github.com/0xJonas/skylite-sub000/internal/gflag"
)

const usageStr = `Usage: skypress [OPTION]... FILE...
Compress or decompress FILEs. Compressed files get the suffix .sky; the
input files are kept. FILE may be a pattern like assets/**/*.bin.

`

const defaultMethods = "lz77,lz78,rc"

func usage(w io.Writer, flags *gflag.FlagSet) {
	fmt.Fprint(w, usageStr)
	flags.SetOutput(w)
	flags.PrintDefaults()
	fmt.Fprintf(w, "\nThe report mode defaults to the value of %s.\n",
		compress.ReportEnv)
}

// expandArgs replaces patterns by the files they match. Arguments without
// matches are kept, so that the error is reported for them.
func expandArgs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg,
			doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			paths = append(paths, arg)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// run executes the command and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "skypress: ", 0)

	flags := gflag.NewFlagSet("skypress", gflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { usage(stderr, flags) }
	var (
		help       = flags.BoolP("help", "h", false, "print this message")
		decompress = flags.BoolP("decompress", "d", false, "decompress")
		force      = flags.BoolP("force", "f", false, "overwrite output files")
		methods    = flags.StringP("methods", "m", defaultMethods, "comma separated stages: lz77, lz78, rc")
		outDir     = flags.StringP("output", "o", "", "directory for output files")
		report     = flags.StringP("report", "r", "", "report mode: none, normal or full")
		verbose    = flags.CounterP("verbose", "v", 0, "write debug output")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *help {
		usage(stdout, flags)
		return 0
	}
	if flags.NArg() == 0 {
		logger.Print("no files; for help, type skypress -h")
		return 2
	}

	opts := options{
		decompress: *decompress,
		force:      *force,
		outDir:     *outDir,
		reportOut:  stdout,
	}
	var err error
	if opts.methods, err = compress.ParseMethods(*methods); err != nil {
		logger.Print(err)
		return 2
	}
	if *report == "" {
		*report = os.Getenv(compress.ReportEnv)
	}
	opts.report = compress.ParseReportMode(*report)
	if *verbose > 0 {
		compress.SetDebugOutput(stderr)
		blobcache.SetDebug(log.New(stderr, "blobcache: ", 0))
		defer compress.SetDebugOutput(nil)
		defer blobcache.SetDebug(nil)
	}
	if opts.outDir != "" {
		if err = os.MkdirAll(opts.outDir, 0o755); err != nil {
			logger.Print(err)
			return 1
		}
	}

	paths, err := expandArgs(flags.Args())
	if err != nil {
		logger.Print(err)
		return 2
	}
	cache, err := blobcache.New(0)
	if err != nil {
		logger.Print(err)
		return 1
	}
	code := 0
	for _, path := range paths {
		if err = processFile(filepath.Clean(path), cache, &opts); err != nil {
			logger.Print(err)
			code = 1
		}
	}
	return code
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
