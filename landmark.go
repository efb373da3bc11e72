package smartface

// FaceMeshPoints is the number of landmarks in the full face mesh topology
const FaceMeshPoints = 468

// Indexes of the anatomical reference points in the face mesh topology used
// by the pose estimators.  These match the 468 point face mesh layout and
// are only valid for landmark sets produced with that topology.
const (
	PointNoseTip       = 1
	PointForehead      = 10
	PointLeftEyeOuter  = 33
	PointLeftMouth     = 61
	PointChin          = 152
	PointNoseBridge    = 168
	PointLeftCheek     = 234
	PointRightEyeOuter = 263
	PointRightMouth    = 291
	PointRightCheek    = 454
)

// Point is a single face landmark.  X and Y are normalized to the range
// [0,1] relative to the source image width and height.  Z is the relative
// depth with the same scale as X, more negative values are closer to the
// camera.
type Point struct {
	X float32
	Y float32
	Z float32
}

// Landmarks is an ordered set of face mesh landmarks, index addressed using
// the fixed anatomical convention of the landmark model that produced them
type Landmarks []Point

// Get returns the landmark at the given index.  Out of range indexes return
// a zero Point so malformed landmark sets degrade to a neutral result
// instead of faulting.
func (l Landmarks) Get(i int) Point {

	if i < 0 || i >= len(l) {
		return Point{}
	}

	return l[i]
}

// Bounds returns the normalized axis aligned bounding box containing all
// landmarks.  The box is found by tightening from the full [0,1] extents, so
// a set where every point is identical degenerates to a zero size box.
func (l Landmarks) Bounds() (minX, minY, maxX, maxY float32) {

	minX, maxX = 1.0, 0.0
	minY, maxY = 1.0, 0.0

	for _, pt := range l {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	return minX, minY, maxX, maxY
}
