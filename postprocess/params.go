package postprocess

import (
	"fmt"
	"github.com/swdee/go-posenet"
	"os"
	"sigs.k8s.io/yaml"
)

// LoadPoseNetParams reads PoseNet parameters from a YAML or JSON file.  Fields
// missing from the file keep their PoseNetDefaultParams value.  An empty path
// returns the defaults.
func LoadPoseNetParams(path string) (PoseNetParams, error) {

	p := PoseNetDefaultParams()

	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)

	if err != nil {
		return p, fmt.Errorf("error reading params file: %w", err)
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("error decoding params file %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return p, err
	}

	return p, nil
}

// Validate checks the parameters are within range
func (p PoseNetParams) Validate() error {

	if p.Algorithm != SingleAlgorithm && p.Algorithm != MultipleAlgorithm {
		return &posenet.ConfigError{
			Field:  "algorithm",
			Reason: fmt.Sprintf("unknown algorithm %d", p.Algorithm),
		}
	}

	thresholds := []struct {
		name string
		val  float64
	}{
		{"jointConfidenceThreshold", p.JointConfidenceThreshold},
		{"poseConfidenceThreshold", p.PoseConfidenceThreshold},
	}

	for _, th := range thresholds {
		if th.val < 0 || th.val > 1 {
			return &posenet.ConfigError{
				Field:  th.name,
				Reason: fmt.Sprintf("must be within [0,1], got %v", th.val),
			}
		}
	}

	return nil
}
