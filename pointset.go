package kdgo

// PointSet adapts an application's point storage to the index. Point
// identifiers are dense integers in [0, Len()); the index addresses points
// only through this interface and never copies coordinates.
//
// The underlying data must not change shape or values for the lifetime of
// any index built over it.
type PointSet interface {
	// Len returns the number of indexed points.
	Len() int

	// Dims returns the number of dimensions per point.
	Dims() int

	// Coord returns the coordinate of point id along dimension dim.
	Coord(id uint32, dim int) float32
}

// VectorAccessor is an optional PointSet extension exposing whole coordinate
// vectors. When a point set provides it, the default metric scores
// candidates on full vectors instead of per-coordinate accessor calls.
type VectorAccessor interface {
	// Vector returns the coordinates of point id. The returned slice must
	// stay valid and unchanged for the lifetime of the index.
	Vector(id uint32) []float32
}

// Compile-time checks that the shipped adapters satisfy both interfaces.
var (
	_ PointSet       = Slice(nil)
	_ VectorAccessor = Slice(nil)
	_ PointSet       = (*Flat)(nil)
	_ VectorAccessor = (*Flat)(nil)
)

// Slice is a PointSet over a slice of per-point coordinate slices. All
// points must share the length of the first one.
type Slice [][]float32

// Len returns the number of points.
func (s Slice) Len() int { return len(s) }

// Dims returns the dimensionality of the first point, or 0 when empty.
func (s Slice) Dims() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Coord returns the coordinate of point id along dimension dim.
func (s Slice) Coord(id uint32, dim int) float32 { return s[id][dim] }

// Vector returns the coordinates of point id.
func (s Slice) Vector(id uint32) []float32 { return s[id] }

// Flat is a PointSet over contiguous row-major coordinate data, the layout
// used by columnar vector stores: point id occupies
// data[id*dims : (id+1)*dims].
type Flat struct {
	data []float32
	dims int
}

// NewFlat returns a Flat point set over row-major data with the given
// dimensionality. len(data) must be a multiple of dims.
func NewFlat(data []float32, dims int) *Flat {
	return &Flat{data: data, dims: dims}
}

// Len returns the number of points.
func (f *Flat) Len() int {
	if f.dims == 0 {
		return 0
	}
	return len(f.data) / f.dims
}

// Dims returns the dimensionality.
func (f *Flat) Dims() int { return f.dims }

// Coord returns the coordinate of point id along dimension dim.
func (f *Flat) Coord(id uint32, dim int) float32 { return f.data[int(id)*f.dims+dim] }

// Vector returns the coordinates of point id as a sub-slice of the backing
// data.
func (f *Flat) Vector(id uint32) []float32 {
	off := int(id) * f.dims
	return f.data[off : off+f.dims : off+f.dims]
}
