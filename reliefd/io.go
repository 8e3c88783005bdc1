package reliefd

import (
	"bufio"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/fileformats"
	"github.com/unixpickle/model3d/model3d"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load opens the file at path and decodes it with f.
func Load[T any](path string, f func(r io.Reader) (T, error)) (T, error) {
	r, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "load")
	}
	defer r.Close()
	return f(bufio.NewReader(r))
}

// Save creates the file at path and encodes obj into it
// with f.
func Save[T any](path string, obj T, f func(w io.Writer, obj T) error) error {
	w, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save")
	}
	bw := bufio.NewWriter(w)
	if err := f(bw, obj); err != nil {
		w.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		w.Close()
		return errors.Wrap(err, "save")
	}
	return errors.Wrap(w.Close(), "save")
}

// ReadImage decodes a PNG, JPEG, GIF, BMP, TIFF, or WebP
// image.
func ReadImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "read image")
	}
	return img, nil
}

// WriteMesh encodes triangles as a binary STL file.
//
// Zero-area triangles, which appear on the walls of cells
// whose surface touches the base, get a zero normal.
func WriteMesh(w io.Writer, triangles []*model3d.Triangle) error {
	writer, err := fileformats.NewSTLWriter(w, uint32(len(triangles)))
	if err != nil {
		return errors.Wrap(err, "write mesh")
	}
	for _, t := range triangles {
		var normal [3]float32
		if t.Area() != 0 {
			normal = vector32(t.Normal())
		}
		var vertices [3][3]float32
		for i, p := range t {
			vertices[i] = vector32(p)
		}
		if err := writer.WriteTriangle(normal, vertices); err != nil {
			return errors.Wrap(err, "write mesh")
		}
	}
	return nil
}

func vector32(c model3d.Coord3D) [3]float32 {
	return [3]float32{float32(c.X), float32(c.Y), float32(c.Z)}
}

// ReadMesh decodes an STL file written by WriteMesh.
func ReadMesh(r io.Reader) ([]*model3d.Triangle, error) {
	tris, err := model3d.ReadSTL(r)
	if err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}
	return tris, nil
}

// MeshPath gets the default output path for an input image
// by replacing its extension with ".stl".
func MeshPath(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + ".stl"
}
