package pose

import (
	"github.com/smartface/go-smartface"
)

const (
	// asymEps avoids division by zero for degenerate landmark geometry
	asymEps = 0.001
	// yawScale maps the horizontal asymmetry ratio [-1,1] to approximate
	// degrees
	yawScale = 45.0
	// pitchScale maps the vertical asymmetry ratio [-1,1] to approximate
	// degrees
	pitchScale = 30.0
)

// EyeAsymmetry estimates pose in the image plane without using landmark
// depth.  Yaw comes from the horizontal asymmetry of the eye corners around
// the nose tip, pitch from the vertical asymmetry of forehead and chin
// around the nose bridge, and roll from the angle of the line between the
// eye outer corners.  It requires a full face mesh landmark set.
type EyeAsymmetry struct{}

// NewEyeAsymmetry returns an instance of the eye asymmetry pose estimator
func NewEyeAsymmetry() *EyeAsymmetry {
	return &EyeAsymmetry{}
}

// EstimatePose implements the Estimator interface
func (e *EyeAsymmetry) EstimatePose(landmarks smartface.Landmarks) Estimate {

	if len(landmarks) < smartface.FaceMeshPoints {
		return Estimate{}
	}

	nose := landmarks.Get(smartface.PointNoseTip)
	leftEye := landmarks.Get(smartface.PointLeftEyeOuter)
	rightEye := landmarks.Get(smartface.PointRightEyeOuter)
	forehead := landmarks.Get(smartface.PointForehead)
	noseBridge := landmarks.Get(smartface.PointNoseBridge)
	chin := landmarks.Get(smartface.PointChin)

	// yaw from the horizontal distance asymmetry of the eyes around the nose
	leftDist := abs(nose.X - leftEye.X)
	rightDist := abs(rightEye.X - nose.X)
	yaw := (leftDist - rightDist) / (leftDist + rightDist + asymEps) * yawScale

	// pitch from the vertical asymmetry of forehead and chin around the
	// nose bridge
	upper := abs(forehead.Y - noseBridge.Y)
	lower := abs(chin.Y - noseBridge.Y)
	pitch := (upper - lower) / (upper + lower + asymEps) * pitchScale

	// roll from the angle of the line between the eye corners
	roll := toDegrees(atan2(rightEye.Y-leftEye.Y, rightEye.X-leftEye.X))

	return Estimate{
		Yaw:   yaw,
		Pitch: pitch,
		Roll:  roll,
	}
}
