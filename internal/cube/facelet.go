package cube

import "fmt"

// FaceletPosition addresses one facelet of a cube.
type FaceletPosition struct {
	Face, Y, X int
}

func (p FaceletPosition) String() string {
	return fmt.Sprintf("%s(%d,%d)", faceName(p.Face), p.Y, p.X)
}

// FaceletChange records that applying some formula moves the facelet
// currently at From to land at To (i.e. after application, cube.Get(To)
// == old cube.Get(From)).
type FaceletChange struct {
	From, To FaceletPosition
}
