/*
Example code showing how to run the face capture gate over an image.

A real deployment feeds the gate with landmarks from a face mesh model.
This example has no model attached so it fabricates landmarks with the
simulate package, which is enough to demonstrate the session, gate, crop,
and alignment flow end to end.
*/
package main

import (
	"flag"
	"log"

	"github.com/smartface/go-smartface"
	"github.com/smartface/go-smartface/align"
	"github.com/smartface/go-smartface/capture"
	"github.com/smartface/go-smartface/render"
	"github.com/smartface/go-smartface/simulate"
	"gocv.io/x/gocv"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	imgFile := flag.String("i", "../data/face.jpg", "Image file to run capture on")
	cropFile := flag.String("o", "../data/face-crop.jpg", "The output JPG file with the cropped face")
	alignedFile := flag.String("l", "../data/face-aligned.jpg", "The output JPG file with the aligned face")
	annoFile := flag.String("a", "../data/face-anno.jpg", "The output JPG file with debug overlays")
	confFile := flag.String("c", "", "Optional YAML capture config file")
	variant := flag.String("v", "calculator", "Capture gate variant [calculator|demo]")
	alignSize := flag.Int("s", 112, "Aligned face output size in pixels")

	flag.Parse()

	// load capture configuration
	cfg := smartface.DefaultCaptureConfig()

	if *confFile != "" {
		var err error
		cfg, err = smartface.LoadCaptureConfig(*confFile)

		if err != nil {
			log.Fatal("Error loading config: ", err)
		}
	}

	var params capture.Params

	switch *variant {
	case "demo":
		params = capture.DemoParams(cfg)
	default:
		params = capture.CalculatorParams(cfg)
	}

	capturer := capture.NewCapturer(params)
	session := smartface.NewCaptureSession(cfg)

	// load image
	img := gocv.IMRead(*imgFile, gocv.IMReadColor)

	if img.Empty() {
		log.Fatal("Error reading image from: ", *imgFile)
	}

	defer img.Close()

	// fabricate landmarks in place of a real face mesh model
	landmarks := simulate.Landmarks(simulate.FromImageSize(img.Cols(), img.Rows()))

	res := capturer.Process(img, landmarks, session)

	log.Printf("status=%q yaw=%.2f pitch=%.2f roll=%.2f\n",
		res.Message, res.Pose.Yaw, res.Pose.Pitch, res.Pose.Roll)
	log.Println(session.Status())

	// annotate source frame with debug overlays
	annotated := img.Clone()
	defer annotated.Close()

	render.FaceLandmarks(&annotated, landmarks)
	render.PoseRefPoints(&annotated, landmarks)

	if res.Captured {
		render.CropBox(&annotated, res.Region, render.Green, 2)
	}

	render.Label(&annotated, res.Status.String(), 10, 24, render.DefaultFont())

	if ok := gocv.IMWrite(*annoFile, annotated); !ok {
		log.Fatal("Failed to write annotated image to: ", *annoFile)
	}

	if !res.HasFace {
		return
	}

	defer res.Face.Close()

	if ok := gocv.IMWrite(*cropFile, res.Face); !ok {
		log.Fatal("Failed to write cropped face to: ", *cropFile)
	}

	// align the capture onto the canonical template for downstream
	// embedding models
	aligner := align.NewAligner(*alignSize)
	aligned, err := aligner.Align(img, landmarks)

	if err != nil {
		log.Fatal("Error aligning face: ", err)
	}

	defer aligned.Close()

	if ok := gocv.IMWrite(*alignedFile, aligned); !ok {
		log.Fatal("Failed to write aligned face to: ", *alignedFile)
	}

	log.Printf("wrote crop %dx%d region=(%d %d %d %d), aligned %dx%d\n",
		res.Face.Cols(), res.Face.Rows(),
		res.Region.X, res.Region.Y, res.Region.Width, res.Region.Height,
		aligned.Cols(), aligned.Rows())
}
