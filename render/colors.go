package render

import "image/color"

var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 50, A: 255}
	Green  = color.RGBA{R: 72, G: 249, B: 10, A: 255}
	Red    = color.RGBA{R: 255, G: 56, B: 56, A: 255}
	Cyan   = color.RGBA{R: 0, G: 212, B: 187, A: 255}

	// meshColor is the default color used for face mesh landmark dots
	meshColor = color.RGBA{R: 0, G: 194, B: 255, A: 255}

	// refColor is the default color used to highlight the anatomical
	// reference points the pose estimators read
	refColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)
