package smartface

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// CropRegion defines a rectangular pixel region of the source image to be
// extracted.  The region is always clamped inside the image bounds.
type CropRegion struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Rect returns the region as an image.Rectangle
func (r CropRegion) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// ComputeCrop calculates the padded crop region around the landmark
// bounding box in pixel space.  The padding fraction grows the box around
// its center before clamping to the image bounds.  The boolean result is
// false when the clamped region has a non-positive dimension, in which case
// no crop should be produced for the frame.
//
// The arithmetic truncates to int at each step, downstream consumers
// depend on the exact region geometry so do not rearrange it.
func ComputeCrop(landmarks Landmarks, imgW, imgH int, padding float32) (CropRegion, bool) {

	minX, minY, maxX, maxY := landmarks.Bounds()

	w := int((maxX - minX) * float32(imgW))
	h := int((maxY - minY) * float32(imgH))
	cx := int(minX*float32(imgW)) + w/2
	cy := int(minY*float32(imgH)) + h/2

	padW := int(float32(w) * (1.0 + padding))
	padH := int(float32(h) * (1.0 + padding))

	x := cx - padW/2
	y := cy - padH/2

	// clamp to image bounds
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if padW > imgW-x {
		padW = imgW - x
	}
	if padH > imgH-y {
		padH = imgH - y
	}

	region := CropRegion{X: x, Y: y, Width: padW, Height: padH}

	return region, padW > 0 && padH > 0
}

// Crop copies the given region of the source Mat into a freshly allocated
// Mat of the same pixel format.  The source is not modified and the
// returned Mat is owned by the caller who must Close it.
func Crop(src gocv.Mat, region CropRegion) (gocv.Mat, error) {

	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("error source Mat is empty")
	}

	if region.Width <= 0 || region.Height <= 0 {
		return gocv.NewMat(), fmt.Errorf("error crop region has non-positive size %dx%d",
			region.Width, region.Height)
	}

	if region.X < 0 || region.Y < 0 || region.X+region.Width > src.Cols() ||
		region.Y+region.Height > src.Rows() {
		return gocv.NewMat(), fmt.Errorf("error crop region %v outside image bounds %dx%d",
			region, src.Cols(), src.Rows())
	}

	view := src.Region(region.Rect())
	defer view.Close()

	return view.Clone(), nil
}
