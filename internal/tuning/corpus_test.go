package tuning

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/zdata"

	compress "github.com/0xJonas/skylite-sub000"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"maps/world.bin":        {Data: bytes.Repeat([]byte{0, 0, 1, 2}, 300)},
		"maps/dungeon/b1.bin":   {Data: bytes.Repeat([]byte("#..#"), 200)},
		"sprites/hero.png":      {Data: []byte("not really a png")},
		"text/intro.txt":        {Data: bytes.Repeat([]byte("Once upon a time. "), 40)},
		"text/empty.txt":        {Data: nil},
		"maps/dungeon/readme.a": {Data: []byte("levels")},
	}
}

func TestFiles(t *testing.T) {
	files, err := Files(testFS(), "maps/**/*.bin")
	require.NoError(t, err)
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	require.Equal(t, []string{"maps/dungeon/b1.bin", "maps/world.bin"}, names)
	require.Equal(t, int64(2000), Size(files))

	files, err = Files(testFS(), "")
	require.NoError(t, err)
	require.Len(t, files, 6)

	_, err = Files(testFS(), "maps/[")
	require.Error(t, err)
}

func TestOrderings(t *testing.T) {
	o := Orderings(compress.Methods(), 3)
	require.Len(t, o, 3+9+27)
	require.Equal(t, []compress.Method{compress.LZ77}, o[0])
	require.Equal(t, []compress.Method{compress.RC, compress.RC, compress.RC},
		o[len(o)-1])
	require.Empty(t, Orderings(compress.Methods(), 0))
}

func TestEvaluator(t *testing.T) {
	files, err := Files(testFS(), "")
	require.NoError(t, err)
	e, err := NewEvaluator(files, 64)
	require.NoError(t, err)

	for _, methods := range Orderings(compress.Methods(), 2) {
		r, err := e.Evaluate(methods)
		require.NoError(t, err)
		require.Equal(t, Size(files), r.Size)

		var want int64
		for _, f := range files {
			out, _, err := compress.Compress(f.Data, methods)
			require.NoError(t, err)
			want += int64(len(out))
		}
		require.Equal(t, want, r.CompressedSize, "%v", methods)

		fresh, err := Evaluate(files, methods)
		require.NoError(t, err)
		require.Equal(t, r, fresh)
	}
}

func TestSample(t *testing.T) {
	files := []File{{"a", []byte("abcdef")}, {"b", []byte("xy")}}
	s := Sample(files, 3)
	require.Equal(t, []File{{"a", []byte("abc")}, {"b", []byte("xy")}}, s)
	require.Equal(t, "abcdef", string(files[0].Data))
}

func TestResult(t *testing.T) {
	r := Result{
		Methods:        []compress.Method{compress.LZ78, compress.RC},
		Size:           1000,
		CompressedSize: 250,
	}
	require.Equal(t, 0.25, r.Ratio())
	require.Equal(t, "[lz78,rc] 1000 -> 250 (0.250 c/u)", r.String())
}

func TestBaselines(t *testing.T) {
	files, err := Files(testFS(), "")
	require.NoError(t, err)
	b, err := Baselines(files)
	require.NoError(t, err)
	require.Len(t, b, 3)
	for i, name := range []string{"zstd", "s2", "lz4"} {
		require.Equal(t, name, b[i].Name)
		require.Positive(t, b[i].CompressedSize)
	}
}

func TestSilesia(t *testing.T) {
	if testing.Short() {
		t.Skip("slow test")
	}
	files, err := Files(zdata.Silesia, "")
	if err != nil {
		t.Fatalf("Files(zdata.Silesia) error %s", err)
	}
	for _, f := range Sample(files, 1<<16) {
		f := []File{f}
		t.Run(f[0].Name, func(t *testing.T) {
			t.Parallel()
			r, err := Evaluate(f, compress.Methods())
			if err != nil {
				t.Fatalf("Evaluate error %s", err)
			}
			if r.CompressedSize > r.Size+1 {
				t.Errorf("compressed size %d exceeds %d",
					r.CompressedSize, r.Size+1)
			}
		})
	}
}
