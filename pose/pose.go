/*
Package pose estimates head pose angles from face mesh landmarks.

Two heuristic strategies are provided, neither performs true 3D pose
recovery.  EarDepth derives yaw from the relative depth of the cheek
landmarks and suits landmark models with a usable z channel.  EyeAsymmetry
works purely in the image plane from the horizontal and vertical asymmetry
of the face and additionally reports roll.  The two strategies produce
angles on different effective scales so their threshold values are not
interchangeable.
*/
package pose

import (
	"math"

	"github.com/smartface/go-smartface"
)

// Estimate holds the estimated head pose angles in degrees
type Estimate struct {
	Yaw   float32
	Pitch float32
	Roll  float32
}

// Estimator is the interface implemented by the pose estimation strategies.
// An estimator must return a neutral zero Estimate for landmark sets with
// fewer points than the indexes it references, it must never fault on short
// input.
type Estimator interface {
	EstimatePose(landmarks smartface.Landmarks) Estimate
}

// toDegrees converts radians to degrees
func toDegrees(radians float32) float32 {
	return radians * 180.0 / math.Pi
}

// atan2 is a float32 wrapper around math.Atan2
func atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// abs returns the absolute value of a float32
func abs(v float32) float32 {

	if v < 0 {
		return -v
	}

	return v
}
