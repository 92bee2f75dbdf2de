package batch

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"awd-inspect/internal/awd"
	"awd-inspect/internal/texture"
)

// ExportOptions controls texture export.
type ExportOptions struct {
	OutDir        string
	ThumbnailSize int // 0 keeps full size
}

// ExportTextures writes every embedded bitmap texture of the file at path
// to OutDir/<file stem>/<block id>.webp. One bad texture does not stop the
// others; all failures are joined into Err.
func ExportTextures(path string, opts ExportOptions) Result {
	res := Result{Path: path}
	f, err := awd.Parse(path, awd.IncludeTextures)
	if f == nil {
		res.Err = err
		return res
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var out bytes.Buffer
	var errs []error
	for _, b := range f.Blocks {
		bt, ok := b.Body.(*awd.BitmapTexture)
		if !ok || bt.Storage != awd.TextureEmbedded || b.Err != nil {
			continue
		}

		img, format, derr := texture.Decode(bt.Data)
		if derr != nil {
			fmt.Fprintf(&out, "ERR %s block %d: %v\n", path, b.ID, derr)
			errs = append(errs, fmt.Errorf("block %d: %w", b.ID, derr))
			continue
		}
		src := img.Bounds()
		img = texture.Thumbnail(img, opts.ThumbnailSize)

		rel := filepath.ToSlash(filepath.Join(stem, fmt.Sprintf("%d.webp", b.ID)))
		if werr := texture.WriteWebP(filepath.Join(opts.OutDir, rel), img); werr != nil {
			fmt.Fprintf(&out, "ERR %s block %d: %v\n", path, b.ID, werr)
			errs = append(errs, fmt.Errorf("block %d: %w", b.ID, werr))
			continue
		}

		res.Entries = append(res.Entries, ManifestEntry{
			Source:  path,
			BlockID: b.ID,
			Name:    bt.Name,
			Format:  format,
			Width:   src.Dx(),
			Height:  src.Dy(),
			Image:   rel,
		})
		fmt.Fprintf(&out, "OK  %s block %d %q -> %s  (%s %dx%d)\n",
			path, b.ID, bt.Name, rel, format, src.Dx(), src.Dy())
	}

	if err != nil {
		errs = append(errs, err)
	}
	res.Output = out.Bytes()
	res.Err = errors.Join(errs...)
	return res
}
