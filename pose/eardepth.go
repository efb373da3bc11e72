package pose

import (
	"github.com/smartface/go-smartface"
)

// earDepthMinPoints is the number of landmarks needed to reference the
// cheek points, sets shorter than this get a neutral estimate
const earDepthMinPoints = smartface.PointRightCheek + 1

// EarDepth estimates pose from the nose tip and the two cheek/ear
// landmarks.  Yaw comes from the depth difference between the ears, pitch
// from the vertical position of the nose relative to the ear mid line.
// Pitch in particular is a rough approximation and is typically gated with
// a widened threshold.  Roll is not estimated and is always zero.
type EarDepth struct{}

// NewEarDepth returns an instance of the ear depth pose estimator
func NewEarDepth() *EarDepth {
	return &EarDepth{}
}

// EstimatePose implements the Estimator interface
func (e *EarDepth) EstimatePose(landmarks smartface.Landmarks) Estimate {

	if len(landmarks) < earDepthMinPoints {
		return Estimate{}
	}

	nose := landmarks.Get(smartface.PointNoseTip)
	leftEar := landmarks.Get(smartface.PointLeftCheek)
	rightEar := landmarks.Get(smartface.PointRightCheek)

	// yaw from the relative depth of the ears
	yaw := toDegrees(atan2(leftEar.Z-rightEar.Z, leftEar.X-rightEar.X))

	// pitch approximated from the nose position against the ear mid line
	earMidY := (leftEar.Y + rightEar.Y) / 2.0
	pitch := toDegrees(atan2(nose.Y-earMidY, nose.Z))

	return Estimate{
		Yaw:   yaw,
		Pitch: pitch,
	}
}
