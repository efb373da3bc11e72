/*
Package capture implements the face capture quality gate.

A Capturer takes one frame and its face mesh landmarks per call, estimates
the head pose, and either rejects the frame with a status message or
accepts it, increments the session counter, and extracts a padded face
crop.  The gate is purely synchronous and holds no state of its own, all
mutable state lives in the caller owned CaptureSession.
*/
package capture

import (
	"fmt"
	"image"

	"github.com/smartface/go-smartface"
	"github.com/smartface/go-smartface/pose"
	"gocv.io/x/gocv"
)

// Params defines the configuration of a Capturer
type Params struct {
	// Config holds the session capture thresholds and padding
	Config smartface.CaptureConfig
	// Estimator is the pose estimation strategy used to gate frames
	Estimator pose.Estimator
	// PitchScale is a multiplier applied to MaxPitchDegrees before the
	// pitch gate is evaluated.  The ear depth pitch approximation runs
	// against a threshold widened by 2.0, the asymmetry estimator uses 1.0.
	PitchScale float32
	// MinImageSize rejects frames whose width or height is below this
	// value, zero disables the check
	MinImageSize int
	// OutputSize optionally resizes the cropped face to a square of this
	// size in pixels, zero keeps the natural crop size
	OutputSize int
	// Verbose embeds the measured angle in rejection messages, eg.
	// "Face turned too much (Yaw: 18°)"
	Verbose bool
}

// CalculatorParams returns Params configured like the graph calculator
// capture path:
// - Estimator: EarDepth
// - PitchScale: 2.0
// - terse status messages
func CalculatorParams(cfg smartface.CaptureConfig) Params {
	return Params{
		Config:     cfg,
		Estimator:  pose.NewEarDepth(),
		PitchScale: 2.0,
	}
}

// DemoParams returns Params configured like the browser demo capture path:
// - Estimator: EyeAsymmetry
// - PitchScale: 1.0
// - MinImageSize: 100
// - verbose status messages with embedded angles
func DemoParams(cfg smartface.CaptureConfig) Params {
	return Params{
		Config:       cfg,
		Estimator:    pose.NewEyeAsymmetry(),
		PitchScale:   1.0,
		MinImageSize: 100,
		Verbose:      true,
	}
}

// Capturer evaluates frames against the configured pose thresholds and
// extracts qualifying face crops
type Capturer struct {
	// Params are the capture configuration parameters
	Params Params
}

// NewCapturer returns a Capturer for the given parameters.  A nil
// Estimator defaults to EarDepth and a zero PitchScale defaults to 1.0.
func NewCapturer(p Params) *Capturer {

	if p.Estimator == nil {
		p.Estimator = pose.NewEarDepth()
	}

	if p.PitchScale == 0 {
		p.PitchScale = 1.0
	}

	return &Capturer{
		Params: p,
	}
}

// Result holds the outcome of processing a single frame
type Result struct {
	// Status is the gate outcome
	Status Status
	// Message is the human readable status text.  Empty for the silent
	// no-op outcomes (exhausted session, missing input).
	Message string
	// Pose is the estimated head pose for the frame, zero when the gate
	// short circuited before pose estimation
	Pose pose.Estimate
	// Region is the computed crop region, only meaningful when Captured
	Region smartface.CropRegion
	// Captured is true when the frame qualified and the session counter
	// was incremented
	Captured bool
	// HasFace is true when a cropped face image was produced.  A frame
	// can be Captured without a face when the clamped crop geometry
	// degenerates to a non-positive size.
	HasFace bool
	// Face is the cropped face image.  Only valid when HasFace is true
	// and must be Closed by the caller.
	Face gocv.Mat
}

// Process runs the capture gate for one frame.  Checks run in order and
// short circuit at the first failure: exhausted session (silent no-op),
// missing or undersized image, empty landmark set, yaw gate, pitch gate.
// A frame passing every check increments the session counter and produces
// the padded face crop.
func (c *Capturer) Process(img gocv.Mat, landmarks smartface.Landmarks,
	session *smartface.CaptureSession) Result {

	// an exhausted session consumes frames without producing any status
	if session.State() == smartface.Exhausted {
		return Result{Status: StatusNone}
	}

	if img.Empty() {
		return Result{Status: StatusNone}
	}

	if c.Params.MinImageSize > 0 && (img.Cols() < c.Params.MinImageSize ||
		img.Rows() < c.Params.MinImageSize) {
		return Result{
			Status:  StatusImageTooSmall,
			Message: StatusImageTooSmall.String(),
		}
	}

	if len(landmarks) == 0 {
		return Result{
			Status:  StatusNoFace,
			Message: StatusNoFace.String(),
		}
	}

	est := c.Params.Estimator.EstimatePose(landmarks)

	if abs(est.Yaw) > c.Params.Config.MaxYawDegrees {
		return Result{
			Status:  StatusYawExceeded,
			Message: c.rejectMessage(StatusYawExceeded, est.Yaw),
			Pose:    est,
		}
	}

	if abs(est.Pitch) > c.Params.Config.MaxPitchDegrees*c.Params.PitchScale {
		return Result{
			Status:  StatusPitchExceeded,
			Message: c.rejectMessage(StatusPitchExceeded, est.Pitch),
			Pose:    est,
		}
	}

	// frame qualifies, record the capture.  the counter moves even when
	// the crop geometry below degenerates and no image gets produced.
	session.Increment()

	res := Result{
		Status:   StatusCaptured,
		Message:  StatusCaptured.String(),
		Pose:     est,
		Captured: true,
	}

	region, ok := smartface.ComputeCrop(landmarks, img.Cols(), img.Rows(),
		c.Params.Config.Padding)

	if !ok {
		return res
	}

	res.Region = region

	face, err := smartface.Crop(img, region)

	if err != nil {
		return res
	}

	if c.Params.OutputSize > 0 {
		gocv.Resize(face, &face, image.Pt(c.Params.OutputSize, c.Params.OutputSize),
			0, 0, gocv.InterpolationArea)
	}

	res.HasFace = true
	res.Face = face

	return res
}

// rejectMessage formats the status text for a threshold rejection, with the
// measured angle embedded when verbose messages are enabled
func (c *Capturer) rejectMessage(s Status, angle float32) string {

	if !c.Params.Verbose {
		return s.String()
	}

	switch s {
	case StatusYawExceeded:
		return fmt.Sprintf("Face turned too much (Yaw: %d°)", int(angle))
	case StatusPitchExceeded:
		return fmt.Sprintf("Face tilted up/down too much (Pitch: %d°)", int(angle))
	default:
		return s.String()
	}
}

// abs returns the absolute value of a float32
func abs(v float32) float32 {

	if v < 0 {
		return -v
	}

	return v
}
