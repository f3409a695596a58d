// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	compress "github.com/0xJonas/skylite-sub000"
	"github.com/0xJonas/skylite-sub000/blobcache"
)

// ext is the file name extension of compressed files.
const ext = ".sky"

// magic starts every compressed file. It is followed by the length of the
// original data as uvarint and the compressed data.
var magic = []byte{'S', 'K', 'Y', 1}

// options collects the command line options.
type options struct {
	decompress bool
	force      bool
	methods    []compress.Method
	outDir     string
	report     compress.ReportMode
	// reportOut receives the compression reports.
	reportOut io.Writer
}

// signalHandler removes the temporary file tmp if the program is
// interrupted. The returned quit channel must be closed to terminate the
// handler goroutine.
func signalHandler(tmp string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
		case <-sigch:
			os.Remove(tmp)
			os.Exit(7)
		}
	}()
	return quit
}

// targetName computes the name of the output file for path.
func targetName(path string, opts *options) (target string, err error) {
	if path == "" {
		return "", errors.New("empty file name not supported")
	}
	if opts.decompress {
		if !strings.HasSuffix(path, ext) {
			return "", fmt.Errorf("%s: unknown suffix", path)
		}
		target = path[:len(path)-len(ext)]
		if target == "" || os.IsPathSeparator(target[len(target)-1]) {
			return "", fmt.Errorf("%s: file name has no base part",
				path)
		}
	} else {
		target = path + ext
	}
	if opts.outDir != "" {
		target = filepath.Join(opts.outDir, filepath.Base(target))
	}
	return target, nil
}

// tmpName returns the name of the temporary file for target.
func tmpName(target string, decompress bool) string {
	if decompress {
		return target + ".decompress"
	}
	return target + ".compress"
}

// writeFile writes data to a temporary file and renames it to target once
// it is complete.
func writeFile(target string, data []byte, perm os.FileMode, opts *options) (err error) {
	_, err = os.Stat(target)
	switch {
	case err == nil:
		if !opts.force {
			return &os.PathError{Op: "create", Path: target,
				Err: os.ErrExist}
		}
		if err = os.Remove(target); err != nil {
			return err
		}
	case !os.IsNotExist(err):
		return err
	}
	tmp := tmpName(target, opts.decompress)
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	quit := signalHandler(tmp)
	defer close(quit)
	if _, err = f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, target)
}

// encodeFile frames the compressed data.
func encodeFile(n int, compressed []byte) []byte {
	p := make([]byte, 0, len(magic)+binary.MaxVarintLen64+len(compressed))
	p = append(p, magic...)
	p = binary.AppendUvarint(p, uint64(n))
	return append(p, compressed...)
}

// maxSize limits the original length stored in a compressed file.
const maxSize = 1 << 30

var (
	errFormat  = errors.New("not a compressed file")
	errTooLong = errors.New("original length exceeds 1 GiB")
)

// decodeFile returns the original length and the compressed data of a
// file written by encodeFile.
func decodeFile(p []byte) (n int, compressed []byte, err error) {
	if !bytes.HasPrefix(p, magic) {
		return 0, nil, errFormat
	}
	p = p[len(magic):]
	u, k := binary.Uvarint(p)
	if k <= 0 {
		return 0, nil, errFormat
	}
	if u > maxSize {
		return 0, nil, errTooLong
	}
	return int(u), p[k:], nil
}

// processFile compresses or decompresses the file at path.
func processFile(path string, cache *blobcache.Cache, opts *options) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%s: no regular file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	target, err := targetName(path, opts)
	if err != nil {
		return err
	}

	if opts.decompress {
		n, compressed, err := decodeFile(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		p, err := cache.Get(path, compressed, n)
		if err != nil {
			return err
		}
		return writeFile(target, p, fi.Mode().Perm(), opts)
	}

	out, reports, err := compress.Compress(data, opts.methods)
	if err != nil {
		return err
	}
	// verify before writing
	p, err := cache.Get(path, out, len(data))
	if err != nil {
		return fmt.Errorf("%s: verification failed: %w", path, err)
	}
	if !bytes.Equal(p, data) {
		return fmt.Errorf("%s: verification failed: data differs", path)
	}
	err = compress.WriteReport(opts.reportOut, path, len(data), reports,
		opts.report)
	if err != nil {
		return err
	}
	return writeFile(target, encodeFile(len(data), out), fi.Mode().Perm(),
		opts)
}
