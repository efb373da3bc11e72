package smartface

import "github.com/x448/float16"

var f16LookupTable [65536]float32

func init() {
	// precompute float16 lookup table for faster conversion to float32
	for i := range f16LookupTable {
		f16 := float16.Frombits(uint16(i))
		f16LookupTable[i] = f16.Float32()
	}
}

// LandmarksFromFloat16 decodes a raw float16 landmark tensor into a set of
// Landmarks.  The buffer layout is interleaved x,y,z triples as output by
// face mesh models running in half precision.  Trailing values that do not
// make up a whole triple are ignored.
func LandmarksFromFloat16(buf []uint16) Landmarks {

	num := len(buf) / 3
	lms := make(Landmarks, 0, num)

	for i := 0; i < num; i++ {
		lms = append(lms, Point{
			X: f16LookupTable[buf[i*3]],
			Y: f16LookupTable[buf[i*3+1]],
			Z: f16LookupTable[buf[i*3+2]],
		})
	}

	return lms
}

// LandmarksFromFloat32 decodes a raw float32 landmark tensor of interleaved
// x,y,z triples into a set of Landmarks
func LandmarksFromFloat32(buf []float32) Landmarks {

	num := len(buf) / 3
	lms := make(Landmarks, 0, num)

	for i := 0; i < num; i++ {
		lms = append(lms, Point{
			X: buf[i*3],
			Y: buf[i*3+1],
			Z: buf[i*3+2],
		})
	}

	return lms
}
