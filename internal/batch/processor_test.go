package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awd-inspect/internal/awd"
	"awd-inspect/internal/awd/awdtest"
	"awd-inspect/internal/mathutil"
	"awd-inspect/internal/texture"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestRunKeepsInputOrder(t *testing.T) {
	t.Parallel()

	paths := make([]string, 20)
	for i := range paths {
		paths[i] = fmt.Sprintf("file%02d", i)
	}

	results := Run(Config{Workers: 4}, paths, func(path string) Result {
		// Later files finish first.
		var n int
		fmt.Sscanf(path, "file%d", &n)
		time.Sleep(time.Duration(20-n) * time.Millisecond)
		return Result{Path: path, Output: []byte(path)}
	})

	require.Len(t, results, len(paths))
	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
		assert.Equal(t, paths[i], string(r.Output))
	}
}

func TestRunZeroWorkers(t *testing.T) {
	t.Parallel()

	results := Run(Config{}, []string{"a", "b"}, func(path string) Result {
		return Result{Path: path}
	})
	assert.Equal(t, "a", results[0].Path)
	assert.Equal(t, "b", results[1].Path)
}

func TestInspect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.awd", awdtest.File(2, 1,
		awdtest.Block(1, 0, 3, awdtest.MeshInstance(0, mathutil.Mat4Identity(), 4)),
	))
	bad := writeFile(t, dir, "bad.awd", awdtest.File(2, 1,
		awdtest.Block(1, 0, 3, make([]byte, 8)),
	))

	r := Inspect(good, awd.IncludeAll)
	require.NoError(t, r.Err)
	assert.True(t, strings.HasPrefix(string(r.Output), good+"\n"))
	assert.Contains(t, string(r.Output), "DATA ID: 4")

	r = Inspect(bad, awd.IncludeAll)
	assert.ErrorIs(t, r.Err, awd.ErrOutOfBounds)
	assert.Contains(t, string(r.Output), "<error>")

	r = Inspect(filepath.Join(dir, "missing.awd"), awd.IncludeAll)
	assert.True(t, errors.Is(r.Err, os.ErrNotExist))
	assert.Contains(t, string(r.Output), "<error> awd: read")
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func textureBlock(id uint32, name string, storage uint8, data []byte) []byte {
	payload := new(awdtest.Buf).VarStr(name).U8(storage).
		U32(uint32(len(data))).Raw(data).Props().Bytes()
	return awdtest.Block(id, 0, 82, payload)
}

func TestExportTextures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	src := writeFile(t, dir, "crate.awd", awdtest.File(2, 1,
		textureBlock(5, "crate_diffuse", 1, pngBytes(t, 16, 8)),
		textureBlock(6, "remote", 0, []byte("remote.png")),
		textureBlock(7, "garbage", 1, []byte("BMnot a bitmap")),
	))

	r := ExportTextures(src, ExportOptions{OutDir: out, ThumbnailSize: 4})
	require.Error(t, r.Err, "the broken texture is reported")
	assert.Contains(t, r.Err.Error(), "block 7")

	require.Len(t, r.Entries, 1)
	e := r.Entries[0]
	assert.Equal(t, uint32(5), e.BlockID)
	assert.Equal(t, "crate_diffuse", e.Name)
	assert.Equal(t, "png", e.Format)
	assert.Equal(t, 16, e.Width)
	assert.Equal(t, 8, e.Height)
	assert.Equal(t, "crate/5.webp", e.Image)

	webpData, err := os.ReadFile(filepath.Join(out, "crate", "5.webp"))
	require.NoError(t, err)
	info, err := texture.Sniff(webpData)
	require.NoError(t, err)
	assert.Equal(t, "webp", info.Format)
	assert.Equal(t, 4, info.Width)
	assert.Equal(t, 2, info.Height)

	assert.Contains(t, string(r.Output), `OK  `+src+` block 5 "crate_diffuse" -> crate/5.webp`)
	assert.Contains(t, string(r.Output), "ERR "+src+" block 7")

	manifest := filepath.Join(out, "manifest.json")
	require.NoError(t, WriteManifest(manifest, r.Entries))
	raw, err := os.ReadFile(manifest)
	require.NoError(t, err)
	var got []ManifestEntry
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, r.Entries, got)
}

func TestWriteManifestEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, WriteManifest(path, nil))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
