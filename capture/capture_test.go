package capture

import (
	"testing"

	"github.com/smartface/go-smartface"
	"github.com/smartface/go-smartface/pose"
	"gocv.io/x/gocv"
)

// stubEstimator returns a fixed pose estimate so gate behaviour can be
// tested independently of the landmark heuristics
type stubEstimator struct {
	est pose.Estimate
}

func (s stubEstimator) EstimatePose(landmarks smartface.Landmarks) pose.Estimate {
	return s.est
}

// testConfig returns the capture thresholds used throughout these tests
func testConfig() smartface.CaptureConfig {
	return smartface.CaptureConfig{
		MaxCaptures:     3,
		MaxYawDegrees:   12,
		MaxPitchDegrees: 10,
		Padding:         0.5,
	}
}

// centerBoxLandmarks returns a small landmark set pinning the bounding box
// to [0.25,0.75] in both axes
func centerBoxLandmarks() smartface.Landmarks {
	return smartface.Landmarks{
		{X: 0.25, Y: 0.25},
		{X: 0.75, Y: 0.75},
		{X: 0.5, Y: 0.5},
	}
}

// testImage returns a blank 1000x1000 BGR Mat
func testImage() gocv.Mat {
	return gocv.NewMatWithSize(1000, 1000, gocv.MatTypeCV8UC3)
}

func newTestCapturer(est pose.Estimate, pitchScale float32) *Capturer {
	return NewCapturer(Params{
		Config:     testConfig(),
		Estimator:  stubEstimator{est: est},
		PitchScale: pitchScale,
	})
}

func TestProcessNoFace(t *testing.T) {

	img := testImage()
	defer img.Close()

	session := smartface.NewCaptureSession(testConfig())
	c := newTestCapturer(pose.Estimate{}, 1.0)

	res := c.Process(img, nil, session)

	if res.Status != StatusNoFace {
		t.Errorf("expected StatusNoFace, got %v", res.Status)
	}

	if res.Message != "No face detected" {
		t.Errorf("expected message \"No face detected\", got %q", res.Message)
	}

	if res.Captured || res.HasFace || session.Count() != 0 {
		t.Errorf("no-face frame must not capture, captured=%v count=%d",
			res.Captured, session.Count())
	}
}

func TestProcessYawReject(t *testing.T) {

	img := testImage()
	defer img.Close()

	session := smartface.NewCaptureSession(testConfig())
	c := newTestCapturer(pose.Estimate{Yaw: 20, Pitch: 5}, 1.0)

	res := c.Process(img, centerBoxLandmarks(), session)

	if res.Status != StatusYawExceeded {
		t.Errorf("expected StatusYawExceeded, got %v", res.Status)
	}

	if res.Message != "Face turned too much (Yaw)" {
		t.Errorf("expected yaw rejection message, got %q", res.Message)
	}

	if res.Captured || session.Count() != 0 {
		t.Errorf("rejected frame must not move the counter, count=%d", session.Count())
	}
}

func TestProcessPitchScale(t *testing.T) {

	// pitch 15 sits between the configured threshold of 10 and the
	// widened threshold of 20 used by the calculator variant
	tests := []struct {
		name       string
		pitchScale float32
		expected   Status
	}{
		{"widened threshold passes", 2.0, StatusCaptured},
		{"plain threshold rejects", 1.0, StatusPitchExceeded},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			img := testImage()
			defer img.Close()

			session := smartface.NewCaptureSession(testConfig())
			c := newTestCapturer(pose.Estimate{Yaw: 5, Pitch: 15}, tc.pitchScale)

			res := c.Process(img, centerBoxLandmarks(), session)

			if res.Status != tc.expected {
				t.Errorf("expected status %v, got %v", tc.expected, res.Status)
			}

			if res.HasFace {
				res.Face.Close()
			}
		})
	}
}

func TestProcessAccept(t *testing.T) {

	img := testImage()
	defer img.Close()

	session := smartface.NewCaptureSession(testConfig())
	c := newTestCapturer(pose.Estimate{Yaw: 5, Pitch: 5}, 1.0)

	res := c.Process(img, centerBoxLandmarks(), session)

	if res.Status != StatusCaptured || res.Message != "Captured!" {
		t.Fatalf("expected capture, got status %v message %q", res.Status, res.Message)
	}

	if !res.Captured || session.Count() != 1 {
		t.Errorf("expected counter incremented to 1, got %d", session.Count())
	}

	expected := smartface.CropRegion{X: 125, Y: 125, Width: 750, Height: 750}

	if res.Region != expected {
		t.Errorf("expected region %+v, got %+v", expected, res.Region)
	}

	if !res.HasFace {
		t.Fatalf("expected a cropped face image")
	}

	defer res.Face.Close()

	if res.Face.Cols() != 750 || res.Face.Rows() != 750 {
		t.Errorf("expected 750x750 face, got %dx%d", res.Face.Cols(), res.Face.Rows())
	}
}

func TestProcessOutputSize(t *testing.T) {

	img := testImage()
	defer img.Close()

	session := smartface.NewCaptureSession(testConfig())

	params := Params{
		Config:     testConfig(),
		Estimator:  stubEstimator{},
		PitchScale: 1.0,
		OutputSize: 112,
	}

	res := NewCapturer(params).Process(img, centerBoxLandmarks(), session)

	if !res.HasFace {
		t.Fatalf("expected a cropped face image")
	}

	defer res.Face.Close()

	if res.Face.Cols() != 112 || res.Face.Rows() != 112 {
		t.Errorf("expected 112x112 face, got %dx%d", res.Face.Cols(), res.Face.Rows())
	}
}

func TestProcessExhausted(t *testing.T) {

	img := testImage()
	defer img.Close()

	cfg := testConfig()
	session := smartface.NewCaptureSession(cfg)

	for i := 0; i < cfg.MaxCaptures; i++ {
		session.Increment()
	}

	// a perfect pose on an exhausted session is still a silent no-op
	c := newTestCapturer(pose.Estimate{}, 1.0)

	for i := 0; i < 3; i++ {
		res := c.Process(img, centerBoxLandmarks(), session)

		if res.Status != StatusNone || res.Message != "" {
			t.Errorf("expected silent no-op, got status %v message %q",
				res.Status, res.Message)
		}

		if res.Captured || res.HasFace {
			t.Errorf("exhausted session produced output")
		}
	}

	if session.Count() != cfg.MaxCaptures {
		t.Errorf("counter moved on exhausted session, got %d", session.Count())
	}
}

func TestProcessQuotaStops(t *testing.T) {

	img := testImage()
	defer img.Close()

	cfg := testConfig()
	cfg.MaxCaptures = 2
	session := smartface.NewCaptureSession(cfg)

	params := Params{
		Config:     cfg,
		Estimator:  stubEstimator{},
		PitchScale: 1.0,
	}
	c := NewCapturer(params)

	captured := 0

	for i := 0; i < 5; i++ {
		res := c.Process(img, centerBoxLandmarks(), session)

		if res.Captured {
			captured++
		}

		if res.HasFace {
			res.Face.Close()
		}
	}

	if captured != 2 || session.Count() != 2 {
		t.Errorf("expected exactly 2 captures, got %d (count %d)",
			captured, session.Count())
	}
}

func TestProcessDegenerateCrop(t *testing.T) {

	img := testImage()
	defer img.Close()

	session := smartface.NewCaptureSession(testConfig())
	c := newTestCapturer(pose.Estimate{}, 1.0)

	// identical landmarks degenerate to a zero size crop box.  the frame
	// still counts as captured, it just produces no image.
	lms := smartface.Landmarks{
		{X: 0.5, Y: 0.5},
		{X: 0.5, Y: 0.5},
	}

	res := c.Process(img, lms, session)

	if res.Status != StatusCaptured || !res.Captured {
		t.Errorf("expected capture status, got %v", res.Status)
	}

	if res.HasFace {
		res.Face.Close()
		t.Errorf("degenerate crop must not produce a face image")
	}

	if session.Count() != 1 {
		t.Errorf("expected counter incremented, got %d", session.Count())
	}
}

func TestProcessMinImageSize(t *testing.T) {

	img := gocv.NewMatWithSize(50, 50, gocv.MatTypeCV8UC3)
	defer img.Close()

	cfg := testConfig()
	session := smartface.NewCaptureSession(cfg)
	c := NewCapturer(DemoParams(cfg))

	res := c.Process(img, centerBoxLandmarks(), session)

	if res.Status != StatusImageTooSmall || res.Message != "Image too small" {
		t.Errorf("expected image too small rejection, got %v %q",
			res.Status, res.Message)
	}
}

func TestProcessEmptyImage(t *testing.T) {

	img := gocv.NewMat()
	defer img.Close()

	session := smartface.NewCaptureSession(testConfig())
	c := newTestCapturer(pose.Estimate{}, 1.0)

	res := c.Process(img, centerBoxLandmarks(), session)

	if res.Status != StatusNone || session.Count() != 0 {
		t.Errorf("expected silent no-op for empty image, got %v", res.Status)
	}
}

func TestVerboseMessages(t *testing.T) {

	img := testImage()
	defer img.Close()

	cfg := testConfig()
	session := smartface.NewCaptureSession(cfg)

	params := Params{
		Config:     cfg,
		Estimator:  stubEstimator{est: pose.Estimate{Yaw: 18.4}},
		PitchScale: 1.0,
		Verbose:    true,
	}

	res := NewCapturer(params).Process(img, centerBoxLandmarks(), session)

	if res.Message != "Face turned too much (Yaw: 18°)" {
		t.Errorf("expected verbose yaw message, got %q", res.Message)
	}

	params.Estimator = stubEstimator{est: pose.Estimate{Pitch: -14.2}}
	res = NewCapturer(params).Process(img, centerBoxLandmarks(), session)

	if res.Message != "Face tilted up/down too much (Pitch: -14°)" {
		t.Errorf("expected verbose pitch message, got %q", res.Message)
	}
}
