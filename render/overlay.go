/*
Package render draws capture debug overlays onto gocv Mats, the face mesh
landmark dots, the pose reference points, the computed crop region, and
status text.
*/
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/smartface/go-smartface"
	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// poseRefPoints are the anatomical landmarks read by the pose estimators
var poseRefPoints = []int{
	smartface.PointNoseTip,
	smartface.PointForehead,
	smartface.PointLeftEyeOuter,
	smartface.PointChin,
	smartface.PointNoseBridge,
	smartface.PointLeftCheek,
	smartface.PointRightEyeOuter,
	smartface.PointRightCheek,
}

// FaceLandmarks renders the landmark set as dots in image pixel space
func FaceLandmarks(img *gocv.Mat, landmarks smartface.Landmarks) {

	w := float32(img.Cols())
	h := float32(img.Rows())

	for _, pt := range landmarks {
		gocv.Circle(img, image.Pt(int(pt.X*w), int(pt.Y*h)), 1, meshColor, -1)
	}
}

// PoseRefPoints highlights the landmarks used by the pose estimators with
// larger markers so mis-placed reference points are easy to spot
func PoseRefPoints(img *gocv.Mat, landmarks smartface.Landmarks) {

	w := float32(img.Cols())
	h := float32(img.Rows())

	for _, idx := range poseRefPoints {
		pt := landmarks.Get(idx)
		gocv.Circle(img, image.Pt(int(pt.X*w), int(pt.Y*h)), 3, refColor, -1)
	}
}

// CropBox renders the computed crop region rectangle
func CropBox(img *gocv.Mat, region smartface.CropRegion, clr color.RGBA,
	lineThickness int) {

	gocv.Rectangle(img, region.Rect(), clr, lineThickness)
}

// Label writes ASCII text at the given position using the built in OpenCV
// Hershey fonts
func Label(img *gocv.Mat, text string, x, y int, f Font) {

	gocv.PutTextWithParams(img, text, image.Pt(x, y), f.Face, f.Scale,
		f.Color, f.Thickness, f.LineType, false)
}

// StatusText draws a status message at the given baseline position using a
// type face.  The text is rendered onto a transparent layer and blended
// over the image, which supports the degree sign and other characters the
// Hershey fonts lack.
func StatusText(img *gocv.Mat, text string, x, y int, face font.Face,
	clr color.RGBA) error {

	// create image with text writing
	rgba := image.NewRGBA(image.Rect(0, 0, img.Cols(), img.Rows()))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 0}),
		image.Point{}, draw.Src)

	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	dr.DrawString(text)

	// convert image.RGBA to gocv.Mat and blend over the source
	imgRGBA, err := gocv.NewMatFromBytes(rgba.Bounds().Dy(), rgba.Bounds().Dx(),
		gocv.MatTypeCV8UC4, rgba.Pix)

	if imgRGBA.Empty() || err != nil {
		return fmt.Errorf("error creating Mat from RGBA")
	}

	defer imgRGBA.Close()

	gocv.CvtColor(imgRGBA, &imgRGBA, gocv.ColorRGBAToBGR)
	gocv.AddWeighted(*img, 1.0, imgRGBA, 1.0, 0, img)

	return nil
}
