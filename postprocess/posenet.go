package postprocess

import (
	"encoding/json"
	"fmt"
	"github.com/swdee/go-posenet"
	"gonum.org/v1/gonum/floats"
)

// Algorithm selects the pose decoding strategy
type Algorithm int

const (
	// SingleAlgorithm decodes the most confident location of each joint into
	// one pose
	SingleAlgorithm Algorithm = iota
	// MultipleAlgorithm is reserved for multi person decoding which is not
	// implemented, requesting it causes decoding to fail
	MultipleAlgorithm
)

// String returns a readable description of the Algorithm
func (a Algorithm) String() string {
	switch a {
	case SingleAlgorithm:
		return "single"
	case MultipleAlgorithm:
		return "multiple"
	default:
		return "UNKNOW"
	}
}

// MarshalJSON encodes the Algorithm by name
func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts the Algorithm name or its numeric value
func (a *Algorithm) UnmarshalJSON(data []byte) error {

	var name string

	if err := json.Unmarshal(data, &name); err != nil {
		var n int

		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("algorithm must be a name or number: %s", data)
		}

		*a = Algorithm(n)
		return nil
	}

	switch name {
	case "single":
		*a = SingleAlgorithm
	case "multiple":
		*a = MultipleAlgorithm
	default:
		return fmt.Errorf("unknown algorithm %q", name)
	}

	return nil
}

// PoseNet defines the struct for PoseNet model inference post processing
type PoseNet struct {
	// Params are the pose building configuration parameters
	Params PoseNetParams
}

// PoseNetParams defines the struct containing the PoseNet parameters to use
// for post processing operations
type PoseNetParams struct {
	// Algorithm selects single or multiple pose decoding
	Algorithm Algorithm `json:"algorithm"`
	// JointConfidenceThreshold is the minimum heatmap score for a joint to be
	// marked valid
	JointConfidenceThreshold float64 `json:"jointConfidenceThreshold"`
	// PoseConfidenceThreshold is the minimum pose score for a pose to be kept
	// when decoding multiple poses.  Not used by single pose decoding.
	PoseConfidenceThreshold float64 `json:"poseConfidenceThreshold"`
	// The following are multiple pose parameters.  They are carried for
	// configuration compatibility and not used by single pose decoding.
	MatchingJointDistance              float64 `json:"matchingJointDistance"`
	LocalSearchRadius                  int     `json:"localSearchRadius"`
	MaxPoseCount                       int     `json:"maxPoseCount"`
	AdjacentJointOffsetRefinementSteps int     `json:"adjacentJointOffsetRefinementSteps"`
}

// PoseNetDefaultParams returns an instance of PoseNetParams configured with
// default values:
// - Algorithm: single
// - Joint Confidence Threshold: 0.1
// - Pose Confidence Threshold: 0.5
// - Matching Joint Distance: 40
// - Local Search Radius: 3
// - Maximum Pose Count: 15
// - Adjacent Joint Offset Refinement Steps: 3
func PoseNetDefaultParams() PoseNetParams {
	return PoseNetParams{
		Algorithm:                          SingleAlgorithm,
		JointConfidenceThreshold:           0.1,
		PoseConfidenceThreshold:            0.5,
		MatchingJointDistance:              40.0,
		LocalSearchRadius:                  3,
		MaxPoseCount:                       15,
		AdjacentJointOffsetRefinementSteps: 3,
	}
}

// NewPoseNet returns an instance of the PoseNet post processor
func NewPoseNet(p PoseNetParams) *PoseNet {
	return &PoseNet{
		Params: p,
	}
}

// Assemble builds a Pose in model input space from the model outputs.  Each
// joint is placed at its most confident cell and marked valid against the
// joint confidence threshold.  The pose confidence is the mean over all
// joints including the invalid ones.
func (p *PoseNet) Assemble(outputs *posenet.Outputs) (*Pose, error) {

	if outputs == nil {
		return nil, &posenet.ConfigError{Field: "outputs", Reason: "nil outputs"}
	}

	if err := outputs.Validate(); err != nil {
		return nil, err
	}

	if p.Params.Algorithm != SingleAlgorithm {
		return nil, fmt.Errorf("%w: %s: %w", posenet.ErrConfiguration,
			p.Params.Algorithm, posenet.ErrUnsupportedAlgorithm)
	}

	pose := &Pose{}
	confs := make([]float64, posenet.JointCount)

	for _, kind := range posenet.JointKinds() {

		joint, err := localizeJoint(outputs, kind)

		if err != nil {
			return nil, err
		}

		joint.IsValid = joint.Confidence >= p.Params.JointConfidenceThreshold

		pose.Joints[kind] = joint
		confs[kind] = joint.Confidence
	}

	pose.Confidence = floats.Sum(confs) / float64(posenet.JointCount)

	return pose, nil
}

// DecodePose takes the bound model outputs, assembles the pose and maps its
// joint positions onto an image of the display size
func (p *PoseNet) DecodePose(outputs *posenet.Outputs,
	display posenet.Size) (*Pose, error) {

	pose, err := p.Assemble(outputs)

	if err != nil {
		return nil, err
	}

	err = Remap(pose, outputs.ModelInputSize, display)

	if err != nil {
		return nil, err
	}

	return pose, nil
}
