// Package wavefront reads Wavefront .obj geometry into interleaved vertices.
//
// The reader is a single forward pass over the text. Positions, texture
// coordinates and normals are collected as they appear and every face element
// is expanded into a full mesh.Vertex, so the output can be drawn with
// DrawArrays without an index buffer.
package wavefront

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/kjkrol/magiebleue/pkg/mesh"
)

// ErrMissingPosition is reported when a face element does not resolve to a
// declared vertex position.
var ErrMissingPosition = errors.New("face element has no valid position index")

// ParseError ties a failure to the 1-based line it occurred on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Cause() error { return e.Err }

// ParseFile reads the model at path.
func ParseFile(path string) ([]mesh.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "model read error")
	}
	defer f.Close()
	return Parse(f)
}

// ParseFS reads the model at path inside fsys.
func ParseFS(fsys fs.FS, path string) ([]mesh.Vertex, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "model read error")
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads .obj text from r. It returns nil and no error when the input
// produces no face vertices.
func Parse(r io.Reader) ([]mesh.Vertex, error) {
	var (
		points    []mgl32.Vec3
		texcoords []mgl32.Vec2
		normals   []mgl32.Vec3
		vertices  []mesh.Vertex
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) <= 2 {
			continue
		}
		fields := strings.Fields(line[2:])
		switch line[:2] {
		case "v ":
			v, err := readVec3(fields)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
			points = append(points, v)
		case "vn":
			v, err := readVec3(fields)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
			normals = append(normals, v)
		case "vt":
			v, err := readVec2(fields)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
			texcoords = append(texcoords, v)
		case "f ":
			for _, elem := range fields {
				v, err := faceVertex(elem, points, texcoords, normals)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Err: err}
				}
				vertices = append(vertices, v)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "model read error")
	}

	if len(vertices) == 0 {
		return nil, nil
	}
	return vertices, nil
}

// faceVertex expands one "p", "p/t", "p//n" or "p/t/n" element.
func faceVertex(elem string, points []mgl32.Vec3, texcoords []mgl32.Vec2, normals []mgl32.Vec3) (mesh.Vertex, error) {
	parts := strings.Split(elem, "/")

	pi, ok := resolveIndex(parts[0], len(points))
	if !ok {
		return mesh.Vertex{}, errors.Wrapf(ErrMissingPosition, "element %q", elem)
	}
	position := points[pi]

	var uv mgl32.Vec2
	if len(parts) > 1 {
		if ti, ok := resolveIndex(parts[1], len(texcoords)); ok {
			uv = texcoords[ti]
		}
	}

	var normal mgl32.Vec3
	if len(parts) > 2 {
		if ni, ok := resolveIndex(parts[2], len(normals)); ok {
			normal = normals[ni]
		}
	}

	return mesh.NewVertex(position, uv, normal), nil
}

// resolveIndex turns a 1-based (or negative, relative to the end) .obj index
// into a slice index.
func resolveIndex(s string, n int) (int, bool) {
	if s == "" {
		return 0, false
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if idx < 0 {
		idx = n + idx + 1
	}
	if idx < 1 || idx > n {
		return 0, false
	}
	return idx - 1, true
}

func readVec3(fields []string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	if err := readFloats(fields, v[:]); err != nil {
		return v, err
	}
	return v, nil
}

func readVec2(fields []string) (mgl32.Vec2, error) {
	var v mgl32.Vec2
	if err := readFloats(fields, v[:]); err != nil {
		return v, err
	}
	return v, nil
}

// readFloats fills dst from the leading fields; trailing fields (such as an
// optional w component) are ignored.
func readFloats(fields []string, dst []float32) error {
	if len(fields) < len(dst) {
		return errors.Errorf("expected %d components, got %d", len(dst), len(fields))
	}
	for i := range dst {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return errors.Wrap(err, "float parsing error")
		}
		dst[i] = float32(f)
	}
	return nil
}
