package main

import (
	"fmt"
	"io/fs"
	"os"
	"sync"
	"testing"

	"github.com/ulikunitz/zdata"

	compress "github.com/0xJonas/skylite-sub000"
	"github.com/0xJonas/skylite-sub000/internal/tuning"
)

// sampleSize limits the bytes used from every corpus file.
const sampleSize = 1 << 16

// loadFiles reads the corpus files matching pattern from dir. An empty
// dir selects the Silesia corpus.
func loadFiles(dir, pattern string, n int) ([]tuning.File, error) {
	var corpus fs.FS = zdata.Silesia
	if dir != "" {
		corpus = os.DirFS(dir)
	}
	files, err := tuning.Files(corpus, pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files match %q", pattern)
	}
	return tuning.Sample(files, n), nil
}

var (
	_silesiaFiles []tuning.File
	silesiaOnce   sync.Once
)

func silesiaFiles() []tuning.File {
	silesiaOnce.Do(func() {
		var err error
		_silesiaFiles, err = loadFiles("", "", sampleSize)
		if err != nil {
			panic(fmt.Errorf("silesiaFiles() error %w", err))
		}
	})
	return _silesiaFiles
}

func compressBenchmark(files []tuning.File, methods []compress.Method) func(b *testing.B) {
	return func(b *testing.B) {
		size := tuning.Size(files)
		b.SetBytes(size)
		var compressedSize int64
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			compressedSize = 0
			for _, f := range files {
				out, _, err := compress.Compress(f.Data, methods)
				if err != nil {
					b.Fatalf("compress.Compress error %s", err)
				}
				compressedSize += int64(len(out))
			}
		}
		b.StopTimer()
		r := float64(compressedSize) / float64(size)
		b.ReportMetric(r, "c/u")
	}
}
