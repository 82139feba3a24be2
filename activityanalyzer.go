// Package activityanalyzer turns a photograph of a child's environment into
// ranked, safety-checked occupational-therapy activity suggestions in Arabic.
//
// The package sends the image to a pretrained vision model (Ollama or
// llama.cpp backend), then runs the detections through a pure reasoning and
// safety pipeline:
//
//  1. Detection filter: drops people and generic labels, applies the
//     confidence threshold with backfill.
//  2. Semantic reasoner: maps labels to Arabic interpretations with
//     adjusted confidence and interaction-priority ordering.
//  3. Element validator: allow/block vocabularies, age gating, final cap.
//  4. Environment analyzer: spatial attributes and therapeutic affordances.
//  5. Safety classifier: physical-safety classes, forbidden actions, hints.
//  6. Activity builder: diversified (element, focus) candidate pairs.
//  7. Safety validator: replaces unsafe pairings with safe alternatives.
//  8. Refiner: space/age substitutions, deterministic text seeds, and
//     diversity ordering.
//  9. Formatter: Arabic prose for a parent or therapist audience.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		activityanalyzer "github.com/menta2k/activity-analyzer"
//		"github.com/menta2k/activity-analyzer/pkg/ollama"
//		"github.com/menta2k/activity-analyzer/pkg/types"
//	)
//
//	func main() {
//		client, err := ollama.NewClient("http://localhost:11434/api/chat")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		analyzer := activityanalyzer.New(client)
//		result, err := analyzer.AnalyzeImageFile(context.Background(), "room.jpg", 5, types.AudienceParent)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		for _, s := range result.Suggestions {
//			fmt.Println(s)
//		}
//	}
//
// The pipeline after detection is pure and synchronous: every stage is
// total, an empty detection list flows through to an empty suggestion list,
// and the only randomness is the builder's variety shuffle, which is
// seedable for tests.
package activityanalyzer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/menta2k/activity-analyzer/pkg/activities"
	"github.com/menta2k/activity-analyzer/pkg/client"
	"github.com/menta2k/activity-analyzer/pkg/detection"
	"github.com/menta2k/activity-analyzer/pkg/environment"
	"github.com/menta2k/activity-analyzer/pkg/processing"
	"github.com/menta2k/activity-analyzer/pkg/safety"
	"github.com/menta2k/activity-analyzer/pkg/semantics"
	"github.com/menta2k/activity-analyzer/pkg/types"
)

// Version of the activity analyzer library
const Version = "1.0.0"

// Options configures an ActivityAnalyzer.
type Options struct {
	// Filter configures the detection filter. The zero value selects
	// DefaultFilterConfig; to run without thresholding set MaxDetections
	// (or any other field) explicitly.
	Filter           detection.FilterConfig
	MaxElements      int
	TargetActivities int
	Model            string
	SendFormat       string
	SendSize         int
	SendQuality      int
	Rand             *rand.Rand
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		Filter:           detection.DefaultFilterConfig(),
		MaxElements:      environment.MaxEnvironmentElements,
		TargetActivities: environment.DefaultTargetActivities,
		Model:            "llava:13b",
		SendFormat:       "jpg",
		SendSize:         1536,
		SendQuality:      85,
	}
}

// ActivityAnalyzer provides a high-level interface for the full pipeline
type ActivityAnalyzer struct {
	processor *processing.Processor
	detector  *detection.Detector
	builder   *environment.Builder
	opts      Options
}

// New creates an ActivityAnalyzer with default configuration.
func New(visionClient client.VisionClient) *ActivityAnalyzer {
	return NewWithOptions(visionClient, DefaultOptions())
}

// NewWithOptions creates an ActivityAnalyzer with custom configuration.
// A nil Rand gets a time-seeded source; tests pass a fixed seed.
func NewWithOptions(visionClient client.VisionClient, opts Options) *ActivityAnalyzer {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Filter == (detection.FilterConfig{}) {
		opts.Filter = detection.DefaultFilterConfig()
	}
	if opts.MaxElements == 0 {
		opts.MaxElements = environment.MaxEnvironmentElements
	}
	if opts.TargetActivities == 0 {
		opts.TargetActivities = environment.DefaultTargetActivities
	}
	return &ActivityAnalyzer{
		processor: processing.NewProcessor(),
		detector:  detection.NewDetector(visionClient),
		builder:   environment.NewBuilder(opts.Rand),
		opts:      opts,
	}
}

// AnalysisResult contains the complete pipeline output for one request.
type AnalysisResult struct {
	RequestID   string                      `json:"request_id"`
	Age         int                         `json:"age"`
	Audience    types.Audience              `json:"audience"`
	Detections  []types.RawDetection        `json:"detections"`
	Elements    []*types.EnvironmentElement `json:"elements"`
	Activities  []types.RefinedActivity     `json:"activities"`
	Suggestions []string                    `json:"suggestions"`
}

// AnalyzeImageFile loads an image from a file path or URL, sends it to the
// vision model, and runs the full pipeline.
func (a *ActivityAnalyzer) AnalyzeImageFile(ctx context.Context, source string, age int, audience types.Audience) (AnalysisResult, error) {
	img, err := a.processor.LoadImageSmart(source)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("failed to load image: %w", err)
	}

	imgB64, err := a.processor.PrepareImageForModel(img, a.opts.SendFormat, a.opts.SendSize, a.opts.SendQuality)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("failed to prepare image: %w", err)
	}

	return a.AnalyzeImage(ctx, imgB64, age, audience)
}

// AnalyzeImage runs detection on a prepared base64 image and then the
// reasoning pipeline. Detector failure is the only error path; everything
// after detection is total.
func (a *ActivityAnalyzer) AnalyzeImage(ctx context.Context, imgB64 string, age int, audience types.Audience) (AnalysisResult, error) {
	dets, err := a.detector.DetectObjects(ctx, a.opts.Model, imgB64)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("object detection failed: %w", err)
	}

	return a.AnalyzeDetections(dets, age, audience), nil
}

// AnalyzeDetections runs the pure post-detection pipeline. It never fails:
// zero detections produce a result with empty elements and suggestions.
func (a *ActivityAnalyzer) AnalyzeDetections(dets []types.RawDetection, age int, audience types.Audience) AnalysisResult {
	filtered := detection.FilterDetections(dets, a.opts.Filter)
	reasoned := semantics.ReasonDetections(filtered)
	validated := semantics.ValidateElements(reasoned, age, a.opts.MaxElements)

	elements := environment.AnalyzeEnvironment(validated)
	safety.AttachSafety(elements)

	cands := a.builder.BuildActivities(elements, a.opts.TargetActivities)
	cands = safety.ValidateActivities(cands, elements, age)
	refined := activities.RefineActivities(cands, age)

	formatter := activities.NewFormatter(semantics.DisplayNames(validated))

	return AnalysisResult{
		RequestID:   uuid.NewString(),
		Age:         age,
		Audience:    audience,
		Detections:  filtered,
		Elements:    elements,
		Activities:  refined,
		Suggestions: formatter.FormatAll(refined, audience),
	}
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
