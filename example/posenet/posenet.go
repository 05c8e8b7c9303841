package main

import (
	"flag"
	"github.com/swdee/go-posenet"
	"github.com/swdee/go-posenet/postprocess"
	"github.com/swdee/go-posenet/preprocess"
	"github.com/swdee/go-posenet/render"
	ort "github.com/yalue/onnxruntime_go"
	"gocv.io/x/gocv"
	"log"
	"sync"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	modelFile := flag.String("m", "../data/posenet_mobilenet_257.onnx", "ONNX PoseNet model file")
	ortLib := flag.String("l", "/usr/lib/libonnxruntime.so", "ONNX Runtime shared library")
	inputName := flag.String("n", "image", "Model input tensor name")
	nhwc := flag.Bool("nhwc", true, "Model outputs are in NHWC layout")
	stride := flag.Int("s", 16, "Model output stride")
	paramsFile := flag.String("c", "", "Optional YAML or JSON pose parameters file")
	imgFile := flag.String("i", "../data/person.jpg", "Image file to run pose estimation on")
	vidFile := flag.String("v", "", "Video file to run pose estimation on instead of an image")
	saveFile := flag.String("o", "../data/person-out.jpg", "The output JPG file with pose rendering")

	flag.Parse()

	params, err := postprocess.LoadPoseNetParams(*paramsFile)

	if err != nil {
		log.Fatal("Error loading pose parameters: ", err)
	}

	// initialize onnx runtime
	ort.SetSharedLibraryPath(*ortLib)

	if err := ort.InitializeEnvironment(); err != nil {
		log.Fatal("Error initializing ONNX Runtime: ", err)
	}

	defer ort.DestroyEnvironment()

	outputFmt := posenet.TensorNCHW

	if *nhwc {
		outputFmt = posenet.TensorNHWC
	}

	model, err := NewModel(*modelFile, *inputName, outputFmt)

	if err != nil {
		log.Fatal("Error loading model: ", err)
	}

	defer model.Close()

	proc := &processor{
		model:   model,
		poseNet: postprocess.NewPoseNet(params),
		stride:  *stride,
		style:   render.DefaultPoseStyle(),
	}

	if *vidFile != "" {
		proc.video(*vidFile)
		log.Println("done")
		return
	}

	// load image
	img := gocv.IMRead(*imgFile, gocv.IMReadColor)

	if img.Empty() {
		log.Fatal("Error reading image from: ", *imgFile)
	}

	defer img.Close()

	pose, err := proc.process(img)

	if err != nil {
		log.Fatal("Error decoding pose: ", err)
	}

	logPose(pose)

	// Save the result
	if ok := gocv.IMWrite(*saveFile, img); !ok {
		log.Println("Failed to save the image")
	}

	log.Printf("Saved pose result to %s\n", *saveFile)
	log.Println("done")
}

// processor runs the model, decodes and renders a pose for each frame
type processor struct {
	model   *Model
	poseNet *postprocess.PoseNet
	stride  int
	style   render.PoseStyle
}

// process decodes the pose in img and draws it onto img
func (p *processor) process(img gocv.Mat) (*postprocess.Pose, error) {

	width, height := p.model.InputSize()
	resizer := preprocess.NewResizer(img.Cols(), img.Rows(), width, height)

	// convert colorspace and resize image
	rgbImg := gocv.NewMat()
	defer rgbImg.Close()
	gocv.CvtColor(img, &rgbImg, gocv.ColorBGRToRGB)

	cropImg := gocv.NewMat()
	defer cropImg.Close()
	resizer.Resize(rgbImg, &cropImg)

	tensors, err := p.model.Inference(cropImg)

	if err != nil {
		return nil, err
	}

	outputs, err := posenet.NewOutputs(tensors, resizer.ModelInputSize(), p.stride)

	if err != nil {
		return nil, err
	}

	pose, err := p.poseNet.DecodePose(outputs, resizer.DisplaySize())

	if err != nil {
		return nil, err
	}

	render.PoseSkeleton(&img, pose, p.style)
	render.PoseLabel(&img, pose, render.DefaultFont(), render.Black)

	return pose, nil
}

// video reads frames from the video file as fast as possible and offers each
// one for decoding.  Frames arriving while a decode is in flight are dropped.
func (p *processor) video(vidFile string) {

	vc, err := gocv.VideoCaptureFile(vidFile)

	if err != nil {
		log.Fatal("Error opening video: ", err)
	}

	defer vc.Close()

	gate := posenet.NewGate()
	var wg sync.WaitGroup
	img := gocv.NewMat()
	defer img.Close()

	for vc.Read(&img) {

		if img.Empty() {
			continue
		}

		frame := img.Clone()
		wg.Add(1)

		go func() {
			defer wg.Done()
			defer frame.Close()

			_, err := gate.TryRun(func() error {
				pose, err := p.process(frame)

				if err != nil {
					return err
				}

				logPose(pose)
				return nil
			})

			if err != nil {
				log.Printf("Frame dropped, decode failed: %v", err)
			}
		}()
	}

	wg.Wait()

	log.Printf("Decoded %d frames, dropped %d frames\n", gate.Ran(), gate.Dropped())
}

// logPose prints the pose confidence and the valid joints
func logPose(pose *postprocess.Pose) {

	log.Printf("Pose confidence: %.3f\n", pose.Confidence)

	for _, j := range pose.ValidJoints() {
		log.Printf("  %-14s (%7.1f, %7.1f) %.3f\n", j.Kind, j.Position.X, j.Position.Y, j.Confidence)
	}
}
