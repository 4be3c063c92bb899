package glw

import (
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/kjkrol/magiebleue/pkg/logging"
	"github.com/kjkrol/magiebleue/pkg/noisemap"
)

// ErrInvalidMagFilter is returned when a mipmap filter is requested for
// magnification.
var ErrInvalidMagFilter = errors.New("not a valid magnification scaling behaviour")

// TextureType is a texture binding target.
type TextureType uint32

const (
	Tex2D TextureType = gl.TEXTURE_2D
)

// TexDirectionWrap selects the texture axis a wrap mode applies to.
type TexDirectionWrap uint32

const (
	WrapX TexDirectionWrap = gl.TEXTURE_WRAP_S
	WrapY TexDirectionWrap = gl.TEXTURE_WRAP_T
)

// TexWrapBehaviour is what happens to coordinates outside [0,1].
type TexWrapBehaviour int32

const (
	// Repeat tiles the texture.
	Repeat TexWrapBehaviour = gl.REPEAT
	// MirroredRepeat tiles the texture, flipping at every edge.
	MirroredRepeat TexWrapBehaviour = gl.MIRRORED_REPEAT
	// ClampToEdge smears the edge texels outward.
	ClampToEdge TexWrapBehaviour = gl.CLAMP_TO_EDGE
	// ClampToBorder paints outside coordinates with the border colour.
	ClampToBorder TexWrapBehaviour = gl.CLAMP_TO_BORDER
)

// TexScaleType is minification or magnification.
type TexScaleType uint32

const (
	Minify  TexScaleType = gl.TEXTURE_MIN_FILTER
	Magnify TexScaleType = gl.TEXTURE_MAG_FILTER
)

// TexScaleOp is a texture filter. Only Nearest and Linear are valid for
// magnification.
type TexScaleOp int32

const (
	// Nearest copies the nearest texel.
	Nearest TexScaleOp = gl.NEAREST
	// Linear interpolates the four neighbouring texels.
	Linear TexScaleOp = gl.LINEAR
	// NearestMipmapNearest samples the closest mipmap with Nearest.
	NearestMipmapNearest TexScaleOp = gl.NEAREST_MIPMAP_NEAREST
	// LinearMipmapNearest samples the closest mipmap with Linear.
	LinearMipmapNearest TexScaleOp = gl.LINEAR_MIPMAP_NEAREST
	// NearestMipmapLinear blends the two closest mipmaps, each sampled with Nearest.
	NearestMipmapLinear TexScaleOp = gl.NEAREST_MIPMAP_LINEAR
	// LinearMipmapLinear blends the two closest mipmaps, each sampled with Linear.
	LinearMipmapLinear TexScaleOp = gl.LINEAR_MIPMAP_LINEAR
)

// ValidFor reports whether op may be used for the given scale direction.
func (op TexScaleOp) ValidFor(scale TexScaleType) bool {
	if scale != Magnify {
		return true
	}
	return op == Nearest || op == Linear
}

type Texture struct {
	ID uint32
}

func NewTexture() (*Texture, error) {
	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return nil, errors.Wrap(ErrZeroHandle, "texture")
	}
	return &Texture{ID: id}, nil
}

func (t *Texture) Bind(ty TextureType) {
	gl.BindTexture(uint32(ty), t.ID)
}

func (t *Texture) Delete() {
	if t == nil || t.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &t.ID)
	t.ID = 0
}

// GenMipmap generates mipmaps for the texture bound to ty.
func GenMipmap(ty TextureType) {
	gl.GenerateMipmap(uint32(ty))
}

// SetWrap sets the wrap behaviour of one axis of the texture bound to ty.
func SetWrap(ty TextureType, dir TexDirectionWrap, behaviour TexWrapBehaviour) {
	gl.TexParameteri(uint32(ty), uint32(dir), int32(behaviour))
}

// SetDualWrap sets the same wrap behaviour on both axes.
func SetDualWrap(ty TextureType, behaviour TexWrapBehaviour) {
	SetWrap(ty, WrapX, behaviour)
	SetWrap(ty, WrapY, behaviour)
}

// SetScale sets the filter of the texture bound to ty. A mipmap filter for
// magnification is rejected and leaves the texture untouched.
func SetScale(ty TextureType, scale TexScaleType, op TexScaleOp) error {
	if !op.ValidFor(scale) {
		logging.Logger().Warn("operation aborted", "filter", int32(op), "err", ErrInvalidMagFilter)
		return errors.Wrapf(ErrInvalidMagFilter, "filter 0x%x", int32(op))
	}
	gl.TexParameteri(uint32(ty), uint32(scale), int32(op))
	return nil
}

// SetDualScale sets op for both minification and magnification.
func SetDualScale(ty TextureType, op TexScaleOp) error {
	if err := SetScale(ty, Minify, op); err != nil {
		return err
	}
	return SetScale(ty, Magnify, op)
}

// SetBorderColour sets the colour used by ClampToBorder.
func SetBorderColour(ty TextureType, c mgl32.Vec4) {
	gl.TexParameterfv(uint32(ty), gl.TEXTURE_BORDER_COLOR, &c[0])
}

// Sampling is the wrap and filter state of a texture.
type Sampling struct {
	Wrap TexWrapBehaviour
	// Border is only used with ClampToBorder.
	Border mgl32.Vec4
	Min    TexScaleOp
	Mag    TexScaleOp
}

func (s Sampling) Validate() error {
	if !s.Mag.ValidFor(Magnify) {
		return errors.Wrapf(ErrInvalidMagFilter, "filter 0x%x", int32(s.Mag))
	}
	return nil
}

// Apply sets s on the texture bound to ty. Invalid sampling is rejected
// before any state changes.
func (s Sampling) Apply(ty TextureType) error {
	if err := s.Validate(); err != nil {
		logging.Logger().Warn("operation aborted", "filter", int32(s.Mag), "err", err)
		return err
	}
	SetDualWrap(ty, s.Wrap)
	if s.Wrap == ClampToBorder {
		SetBorderColour(ty, s.Border)
	}
	if err := SetScale(ty, Minify, s.Min); err != nil {
		return err
	}
	return SetScale(ty, Magnify, s.Mag)
}

// FillNoise uploads a size x size single channel float noise field into the
// Tex2D currently bound. Sizes below 1 upload nothing.
func FillNoise(size int, seed int64) {
	if size <= 0 {
		return
	}
	values := noisemap.PlaneMap(size, seed, noisemap.DefaultBounds)
	lo, hi := noisemap.MinMax(values)
	logging.Logger().Debug("noise texture", "size", size, "seed", seed, "min", lo, "max", hi)

	CheckErrors("pre-teximage2d")
	gl.TexImage2D(uint32(Tex2D), 0, gl.R32F, int32(size), int32(size), 0, gl.RED, gl.FLOAT, gl.Ptr(values))
	CheckErrors("post-teximage2d")
}

// FillImage uploads img as RGBA8 into the Tex2D currently bound.
func FillImage(img image.Image) {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != rgba.Rect.Dx()*4 || rgba.Rect.Min != (image.Point{}) {
		bounds := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	CheckErrors("pre-teximage2d")
	gl.TexImage2D(uint32(Tex2D), 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	CheckErrors("post-teximage2d")
}

// SetTextureSlot selects the active texture unit.
func SetTextureSlot(slot uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + slot)
}
