package mesh

const floatSize = 4

// Attribute describes one float attribute inside an interleaved vertex.
type Attribute struct {
	Index uint32
	Size  int32
	// Offset is the attribute offset in bytes from the start of the vertex.
	Offset int
}

// Layout is a fixed-stride interleaved vertex layout.
type Layout struct {
	Attributes []Attribute
	// Stride is the vertex size in bytes.
	Stride int32
}

// NewLayout packs attributes of the given float sizes back to back, assigning
// shader locations in order.
func NewLayout(sizes ...int32) Layout {
	layout := Layout{Attributes: make([]Attribute, 0, len(sizes))}
	offset := 0
	for i, size := range sizes {
		layout.Attributes = append(layout.Attributes, Attribute{
			Index:  uint32(i),
			Size:   size,
			Offset: offset,
		})
		offset += int(size) * floatSize
	}
	layout.Stride = int32(offset)
	return layout
}

// FloatsPerVertex reports the vertex width in floats.
func (l Layout) FloatsPerVertex() int {
	return int(l.Stride) / floatSize
}

var (
	// VertexLayout matches Vertex: position at 0, uv at 1, normal at 2.
	VertexLayout = NewLayout(3, 2, 3)
	// TexturedPointLayout matches TexturedPoint: position at 0, uv at 1.
	TexturedPointLayout = NewLayout(3, 2)
)
