package detection

import (
	"context"
	"sort"
	"strings"

	"github.com/menta2k/activity-analyzer/pkg/client"
	"github.com/menta2k/activity-analyzer/pkg/types"
)

// SimpleTestPrompt for testing if the model can see images
const SimpleTestPrompt = `What do you see in this image? Describe it briefly.`

// DefaultPrompt is the default prompt for object detection
const DefaultPrompt = `You are an object detector for indoor home scenes.

Return JSON only: an array of detected physical objects.
[
  {"class_name": "string", "probability": 0.0}
]

HARD RULES
- List every distinct physical object you can identify, most confident first.
- probability is your confidence in [0,1].
- class_name is a short lowercase English noun phrase ("sofa", "coffee table", "ball").
- Do not list people or body parts.
- Do not invent objects that are not clearly visible.
- If the scene is empty or unclear, return [].
- JSON only. No markdown, no code fences, no comments, no trailing commas.`

// Detector handles object detection using vision models
type Detector struct {
	client client.VisionClient
}

// NewDetector creates a new detector with a vision client
func NewDetector(client client.VisionClient) *Detector {
	return &Detector{client: client}
}

// DetectObjects analyzes an image and returns filtered raw detections,
// sorted by descending confidence
func (d *Detector) DetectObjects(ctx context.Context, model, imageB64 string) ([]types.RawDetection, error) {
	return d.DetectObjectsWithPrompt(ctx, model, imageB64, DefaultPrompt)
}

// DetectObjectsWithPrompt analyzes an image with a custom prompt
func (d *Detector) DetectObjectsWithPrompt(ctx context.Context, model, imageB64, prompt string) ([]types.RawDetection, error) {
	dets, err := d.client.DetectObjects(ctx, model, prompt, imageB64)
	if err != nil {
		return nil, err
	}

	// Post-process: normalize labels and enforce the filter rules
	for i := range dets {
		dets[i].ClassName = strings.ToLower(strings.TrimSpace(dets[i].ClassName))
	}
	sort.SliceStable(dets, func(i, j int) bool {
		return dets[i].Probability > dets[j].Probability
	})

	return dets, nil
}

// TestVision tests if the model can actually see the image with a simple prompt
func (d *Detector) TestVision(ctx context.Context, model, imageB64 string) (string, error) {
	return d.client.SimpleQuery(ctx, model, SimpleTestPrompt, imageB64)
}
