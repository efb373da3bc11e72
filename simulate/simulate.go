/*
Package simulate fabricates face mesh landmark sets.

It is a deterministic stand-in for a real face landmark model, intended
only for demos and for exercising the capture gate in tests.  The points
are laid out on an ellipse and carry none of the anatomical structure of a
real face mesh, so pose estimates derived from them are meaningless beyond
being stable for identical input.  Do not use this package as a detection
backend.
*/
package simulate

import (
	"math"

	"github.com/smartface/go-smartface"
)

// Options control the fabricated landmark layout.  All values are in
// normalized image coordinates.
type Options struct {
	// CenterX, CenterY position the face center
	CenterX float32
	CenterY float32
	// FaceWidth, FaceHeight set the ellipse radii
	FaceWidth  float32
	FaceHeight float32
	// YawOffset, PitchOffset shift the whole point set to mimic a head
	// that is off center
	YawOffset   float32
	PitchOffset float32
}

// DefaultOptions returns the frontal face layout:
// - Center: (0.5, 0.5)
// - FaceWidth: 0.3
// - FaceHeight: 0.4
func DefaultOptions() Options {
	return Options{
		CenterX:    0.5,
		CenterY:    0.5,
		FaceWidth:  0.3,
		FaceHeight: 0.4,
	}
}

// FromImageSize returns Options whose offsets vary with the image
// dimensions, reproducing the original demo behaviour of deriving a small
// pseudo pose from the frame size
func FromImageSize(width, height int) Options {

	opts := DefaultOptions()
	opts.YawOffset = (float32(width%30) - 15.0) / 1000.0
	opts.PitchOffset = (float32(height%20) - 10.0) / 1000.0

	return opts
}

// Landmarks fabricates a full 468 point landmark set for the given layout.
// Points sit on an ellipse around the face center, the second half of the
// set on a slightly smaller radius, with a small repeating depth variation.
func Landmarks(opts Options) smartface.Landmarks {

	lms := make(smartface.Landmarks, 0, smartface.FaceMeshPoints)

	for i := 0; i < smartface.FaceMeshPoints; i++ {

		angle := float64(i) * 2.0 * math.Pi / float64(smartface.FaceMeshPoints)

		radius := opts.FaceWidth
		if i >= smartface.FaceMeshPoints/2 {
			radius = opts.FaceWidth * 0.8
		}

		lms = append(lms, smartface.Point{
			X: opts.CenterX + radius*float32(math.Cos(angle)) + opts.YawOffset,
			Y: opts.CenterY + opts.FaceHeight*float32(math.Sin(angle)) + opts.PitchOffset,
			Z: -0.05 + float32(i%10)*0.001,
		})
	}

	return lms
}
