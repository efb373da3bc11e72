package capture

// Status is the closed set of capture gate outcomes.  The associated text
// returned by String is part of the observable contract, downstream
// consumers pattern match on it.
type Status int

const (
	// StatusNone is the silent no-op outcome, produced for an exhausted
	// session or missing input.  It carries no status text.
	StatusNone Status = iota
	// StatusImageTooSmall rejects frames below the minimum image size
	StatusImageTooSmall
	// StatusNoFace rejects frames with an empty landmark set
	StatusNoFace
	// StatusYawExceeded rejects frames where the head is turned too far
	// left or right
	StatusYawExceeded
	// StatusPitchExceeded rejects frames where the head is tilted too far
	// up or down
	StatusPitchExceeded
	// StatusCaptured accepts the frame
	StatusCaptured
)

// String returns the canonical status text
func (s Status) String() string {

	switch s {
	case StatusImageTooSmall:
		return "Image too small"
	case StatusNoFace:
		return "No face detected"
	case StatusYawExceeded:
		return "Face turned too much (Yaw)"
	case StatusPitchExceeded:
		return "Face tilted up/down too much (Pitch)"
	case StatusCaptured:
		return "Captured!"
	default:
		return ""
	}
}
