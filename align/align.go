/*
Package align warps captured faces onto a canonical 5 point template.

Face embedding models expect their input aligned so the eyes, nose, and
mouth sit at fixed positions.  The aligner picks the five reference
landmarks out of the face mesh, estimates the least squares similarity
transform (rotation, uniform scale, translation) onto the ArcFace template
and warps the image to a square output.
*/
package align

import (
	"fmt"
	"image"
	"math"

	"github.com/smartface/go-smartface"
	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"
)

// arcFaceTemplate holds the canonical eye, nose and mouth positions for a
// 112x112 aligned face as used by the ArcFace family of embedding models
var arcFaceTemplate = [5][2]float64{
	{38.2946, 51.6963}, // left eye
	{73.5318, 51.5014}, // right eye
	{56.0252, 71.7366}, // nose
	{41.5493, 92.3655}, // left mouth
	{70.7299, 92.2041}, // right mouth
}

// templateSize is the face size the template coordinates are defined on
const templateSize = 112

// meshRefPoints are the face mesh landmark indexes approximating the five
// template points.  Eye outer corners stand in for the eye centers which
// is close enough for capture alignment.
var meshRefPoints = [5]int{
	smartface.PointLeftEyeOuter,
	smartface.PointRightEyeOuter,
	smartface.PointNoseTip,
	smartface.PointLeftMouth,
	smartface.PointRightMouth,
}

// minPoints is the landmark set length needed to reference every mesh
// point used for alignment
const minPoints = smartface.PointRightMouth + 1

// Aligner warps faces onto the canonical template at a configured output
// size
type Aligner struct {
	size int
	dst  [5][2]float64
}

// NewAligner returns an aligner producing size x size output faces.  The
// template coordinates are scaled from the 112 pixel reference.
func NewAligner(size int) *Aligner {

	a := &Aligner{
		size: size,
	}

	scale := float64(size) / float64(templateSize)

	for i, pt := range arcFaceTemplate {
		a.dst[i] = [2]float64{pt[0] * scale, pt[1] * scale}
	}

	return a
}

// Align warps the face described by the landmark set onto the template and
// returns a new square Mat owned by the caller.  The source image is not
// modified.
func (a *Aligner) Align(img gocv.Mat, landmarks smartface.Landmarks) (gocv.Mat, error) {

	if img.Empty() {
		return gocv.NewMat(), fmt.Errorf("error source Mat is empty")
	}

	if len(landmarks) < minPoints {
		return gocv.NewMat(), fmt.Errorf("landmark set too short for alignment, have %d need %d",
			len(landmarks), minPoints)
	}

	// reference landmarks in pixel space
	var src [5][2]float64
	w := float64(img.Cols())
	h := float64(img.Rows())

	for i, idx := range meshRefPoints {
		pt := landmarks.Get(idx)
		src[i] = [2]float64{float64(pt.X) * w, float64(pt.Y) * h}
	}

	transform, err := EstimateSimilarityTransform(src[:], a.dst[:])

	if err != nil {
		return gocv.NewMat(), fmt.Errorf("failed to estimate transform: %w", err)
	}

	defer transform.Close()

	aligned := gocv.NewMat()
	gocv.WarpAffine(img, &aligned, transform, image.Pt(a.size, a.size))

	return aligned, nil
}

// EstimateSimilarityTransform computes the least squares similarity
// transform mapping the source points onto the destination points and
// returns it as a 2x3 affine Mat suitable for gocv.WarpAffine.  The Mat is
// owned by the caller.
func EstimateSimilarityTransform(src, dst [][2]float64) (gocv.Mat, error) {

	scale, r, t, err := similarityParams(src, dst)

	if err != nil {
		return gocv.NewMat(), err
	}

	transform := gocv.NewMatWithSize(2, 3, gocv.MatTypeCV64F)
	transform.SetDoubleAt(0, 0, scale*r[0][0])
	transform.SetDoubleAt(0, 1, scale*r[0][1])
	transform.SetDoubleAt(0, 2, t[0])
	transform.SetDoubleAt(1, 0, scale*r[1][0])
	transform.SetDoubleAt(1, 1, scale*r[1][1])
	transform.SetDoubleAt(1, 2, t[1])

	return transform, nil
}

// similarityParams solves the Umeyama least squares problem for the
// rotation matrix, uniform scale, and translation aligning src to dst
func similarityParams(src, dst [][2]float64) (float64, [2][2]float64, [2]float64, error) {

	var r [2][2]float64
	var t [2]float64

	if len(src) < 2 || len(src) != len(dst) {
		return 0, r, t, fmt.Errorf("need matching point sets of at least 2 points, got %d and %d",
			len(src), len(dst))
	}

	n := float64(len(src))

	// point set means
	var muSrc, muDst [2]float64

	for i := range src {
		muSrc[0] += src[i][0]
		muSrc[1] += src[i][1]
		muDst[0] += dst[i][0]
		muDst[1] += dst[i][1]
	}

	muSrc[0] /= n
	muSrc[1] /= n
	muDst[0] /= n
	muDst[1] /= n

	// covariance of the centered point sets and source variance
	sigma := mat.NewDense(2, 2, nil)
	varSrc := 0.0

	for i := range src {
		sx := src[i][0] - muSrc[0]
		sy := src[i][1] - muSrc[1]
		dx := dst[i][0] - muDst[0]
		dy := dst[i][1] - muDst[1]

		sigma.Set(0, 0, sigma.At(0, 0)+dx*sx/n)
		sigma.Set(0, 1, sigma.At(0, 1)+dx*sy/n)
		sigma.Set(1, 0, sigma.At(1, 0)+dy*sx/n)
		sigma.Set(1, 1, sigma.At(1, 1)+dy*sy/n)

		varSrc += (sx*sx + sy*sy) / n
	}

	if varSrc == 0 {
		return 0, r, t, fmt.Errorf("source points are degenerate")
	}

	var svd mat.SVD

	if ok := svd.Factorize(sigma, mat.SVDFull); !ok {
		return 0, r, t, fmt.Errorf("svd factorization failed")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	vals := svd.Values(nil)

	// reflection guard keeps the rotation proper
	d := 1.0

	if mat.Det(&u)*mat.Det(&v) < 0 {
		d = -1.0
	}

	s := mat.NewDiagDense(2, []float64{1, d})

	var rot mat.Dense
	rot.Product(&u, s, v.T())

	r[0][0] = rot.At(0, 0)
	r[0][1] = rot.At(0, 1)
	r[1][0] = rot.At(1, 0)
	r[1][1] = rot.At(1, 1)

	scale := (vals[0] + d*vals[1]) / varSrc

	t[0] = muDst[0] - scale*(r[0][0]*muSrc[0]+r[0][1]*muSrc[1])
	t[1] = muDst[1] - scale*(r[1][0]*muSrc[0]+r[1][1]*muSrc[1])

	// guard against numerical blowup on near collinear inputs
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return 0, r, t, fmt.Errorf("transform is numerically unstable")
	}

	return scale, r, t, nil
}
