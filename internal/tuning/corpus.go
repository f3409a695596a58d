// Package tuning evaluates method orderings of the compression pipeline on
// a corpus of files.
package tuning

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	compress "github.com/0xJonas/skylite-sub000"
)

type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of corpus whose path matches the
// doublestar pattern. An empty pattern selects all files.
func Files(corpus fs.FS, pattern string) (files []File, err error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("tuning: invalid pattern %q", pattern)
	}
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			if pattern != "" {
				ok, err := doublestar.Match(pattern, path)
				if err != nil || !ok {
					return err
				}
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

// Sample returns the files cut to at most n bytes. The range coder keeps
// one byte per bit of its input, so full corpus files are too large for
// exhaustive evaluations.
func Sample(files []File, n int) []File {
	s := make([]File, len(files))
	for i, f := range files {
		s[i] = File{Name: f.Name, Data: f.Data[:min(n, len(f.Data))]}
	}
	return s
}

// Orderings returns all sequences of the given methods with length 1 to
// maxLen. Methods may be repeated.
func Orderings(methods []compress.Method, maxLen int) [][]compress.Method {
	var all [][]compress.Method
	prev := [][]compress.Method{{}}
	for i := 0; i < maxLen; i++ {
		next := make([][]compress.Method, 0, len(prev)*len(methods))
		for _, o := range prev {
			for _, m := range methods {
				x := make([]compress.Method, len(o), len(o)+1)
				copy(x, o)
				next = append(next, append(x, m))
			}
		}
		all = append(all, next...)
		prev = next
	}
	return all
}

// Result is the outcome of an evaluation.
type Result struct {
	Methods        []compress.Method
	Size           int64
	CompressedSize int64
}

// Ratio returns compressed size divided by uncompressed size.
func (r Result) Ratio() float64 {
	if r.Size == 0 {
		return 1
	}
	return float64(r.CompressedSize) / float64(r.Size)
}

func (r Result) String() string {
	names := make([]string, len(r.Methods))
	for i, m := range r.Methods {
		names[i] = m.String()
	}
	return fmt.Sprintf("[%s] %d -> %d (%.3f c/u)",
		strings.Join(names, ","), r.Size, r.CompressedSize, r.Ratio())
}

// prefixKey identifies the output of a method prefix for a file.
type prefixKey struct {
	file    int
	methods string
}

func methodsKey(methods []compress.Method) string {
	p := make([]byte, len(methods))
	for i, m := range methods {
		p[i] = byte(m)
	}
	return string(p)
}

// Evaluator compresses the corpus files with method orderings. Outputs of
// method prefixes are kept in an LRU cache, so orderings sharing a prefix
// don't repeat the shared stages. An Evaluator is not safe for concurrent
// use.
type Evaluator struct {
	files []File
	sums  []uint64
	cache *lru.Cache[prefixKey, []byte]
}

// NewEvaluator creates an evaluator for the files. The cache holds up to
// cacheSize prefix outputs.
func NewEvaluator(files []File, cacheSize int) (*Evaluator, error) {
	cache, err := lru.New[prefixKey, []byte](cacheSize)
	if err != nil {
		return nil, err
	}
	e := &Evaluator{
		files: files,
		sums:  make([]uint64, len(files)),
		cache: cache,
	}
	for i, f := range files {
		e.sums[i] = xxhash.Sum64(f.Data)
	}
	return e, nil
}

// compressFile returns the output of the methods for file i.
func (e *Evaluator) compressFile(i int, methods []compress.Method) ([]byte, error) {
	k := len(methods)
	var out []byte
	for ; k > 0; k-- {
		var ok bool
		key := prefixKey{i, methodsKey(methods[:k])}
		if out, ok = e.cache.Get(key); ok {
			break
		}
	}
	if k == 0 {
		var err error
		if out, _, err = compress.Compress(e.files[i].Data, nil); err != nil {
			return nil, err
		}
	}
	for ; k < len(methods); k++ {
		var err error
		if out, _, err = compress.ApplyStage(out, methods[k]); err != nil {
			return nil, err
		}
		e.cache.Add(prefixKey{i, methodsKey(methods[:k+1])}, out)
	}
	return out, nil
}

// Evaluate compresses all files with the methods and verifies that the
// decompressed data has the digest of the original.
func (e *Evaluator) Evaluate(methods []compress.Method) (Result, error) {
	r := Result{Methods: methods, Size: Size(e.files)}
	for i, f := range e.files {
		out, err := e.compressFile(i, methods)
		if err != nil {
			return r, err
		}
		r.CompressedSize += int64(len(out))

		cr, err := compress.NewReader(out, int64(len(f.Data)))
		if err != nil {
			return r, fmt.Errorf("tuning: %s: %w", f.Name, err)
		}
		h := xxhash.New()
		if _, err = io.Copy(h, cr); err != nil {
			return r, fmt.Errorf("tuning: %s: %w", f.Name, err)
		}
		if h.Sum64() != e.sums[i] {
			return r, fmt.Errorf("tuning: %s: round trip mismatch for %v",
				f.Name, methods)
		}
	}
	return r, nil
}

// Evaluate compresses the files with the methods using a fresh
// Evaluator.
func Evaluate(files []File, methods []compress.Method) (Result, error) {
	e, err := NewEvaluator(files, len(methods)*len(files)+1)
	if err != nil {
		return Result{}, err
	}
	return e.Evaluate(methods)
}

// Baseline is the compressed size of the corpus for a general purpose
// compressor.
type Baseline struct {
	Name           string
	CompressedSize int64
}

// Baselines compresses each file with zstd, s2 and lz4 block compression.
func Baselines(files []File) ([]Baseline, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderCRC(false))
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	var lc lz4.Compressor
	b := []Baseline{{Name: "zstd"}, {Name: "s2"}, {Name: "lz4"}}
	var buf []byte
	for _, f := range files {
		buf = enc.EncodeAll(f.Data, buf[:0])
		b[0].CompressedSize += int64(len(buf))

		buf = s2.Encode(buf[:cap(buf)], f.Data)
		b[1].CompressedSize += int64(len(buf))

		dst := make([]byte, lz4.CompressBlockBound(len(f.Data)))
		n, err := lc.CompressBlock(f.Data, dst)
		if err != nil {
			return nil, fmt.Errorf("tuning: lz4 %s: %w", f.Name, err)
		}
		if n == 0 {
			// incompressible data is stored as is
			n = len(f.Data)
		}
		b[2].CompressedSize += int64(n)
	}
	return b, nil
}
