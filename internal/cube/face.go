package cube

// Face is one order x order grid of facelets, stored once in a fixed
// orientation and viewed through a cached quarter-turn rotation count so
// that rotating an extremal slice (a whole face) costs O(1) instead of
// O(order^2): RotateCW only bumps the orientation counter, Get/Set do
// the coordinate translation on every access. This mirrors the
// orientation-cached Face in the reference implementation this package
// is ported from.
//
// Face is generic so the same rotation algebra backs both the cube's
// actual Color grids and the int-labeled "tracker" grids used to derive
// a formula's facelet-change map by simulation (see trackcube.go).
type Face[T comparable] struct {
	order       int
	orientation uint8 // 0..3, quarter turns clockwise applied to storage
	storage     []T
}

// NewFace allocates an order x order face filled with the zero value of T.
func NewFace[T comparable](order int) *Face[T] {
	return &Face[T]{
		order:   order,
		storage: make([]T, order*order),
	}
}

func (f *Face[T]) Order() int { return f.order }

// storageCoord translates a logical (y, x) coordinate into the
// underlying storage coordinate given the current orientation.
func (f *Face[T]) storageCoord(y, x int) (sy, sx int) {
	n := f.order
	switch f.orientation & 3 {
	case 0:
		return y, x
	case 1:
		return x, n - 1 - y
	case 2:
		return n - 1 - y, n - 1 - x
	default: // 3
		return n - 1 - x, y
	}
}

// Get reads the facelet at logical coordinate (y, x), y and x in
// [0, order).
func (f *Face[T]) Get(y, x int) T {
	sy, sx := f.storageCoord(y, x)
	return f.storage[sy*f.order+sx]
}

// Set writes the facelet at logical coordinate (y, x).
func (f *Face[T]) Set(y, x int, c T) {
	sy, sx := f.storageCoord(y, x)
	f.storage[sy*f.order+sx] = c
}

// RotateCW rotates the face's logical view 90 degrees clockwise in O(1).
func (f *Face[T]) RotateCW() {
	f.orientation = (f.orientation - 1) & 3
}

// Fill sets every facelet to c.
func (f *Face[T]) Fill(c T) {
	for i := range f.storage {
		f.storage[i] = c
	}
}

// Clone returns a deep, independent copy of f.
func (f *Face[T]) Clone() *Face[T] {
	cp := &Face[T]{order: f.order, orientation: f.orientation}
	cp.storage = make([]T, len(f.storage))
	copy(cp.storage, f.storage)
	return cp
}

// CopyFrom overwrites f's contents (including orientation) from src.
// src must have the same order as f.
func (f *Face[T]) CopyFrom(src *Face[T]) {
	f.orientation = src.orientation
	copy(f.storage, src.storage)
}

// Equal reports whether f and src hold identical logical facelets,
// regardless of the underlying orientation/storage split.
func (f *Face[T]) Equal(src *Face[T]) bool {
	if f.order != src.order {
		return false
	}
	n := f.order
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if f.Get(y, x) != src.Get(y, x) {
				return false
			}
		}
	}
	return true
}
