package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	activityanalyzer "github.com/menta2k/activity-analyzer"
	"github.com/menta2k/activity-analyzer/internal/config"
	"github.com/menta2k/activity-analyzer/internal/utils"
	"github.com/menta2k/activity-analyzer/pkg/client"
	"github.com/menta2k/activity-analyzer/pkg/detection"
	"github.com/menta2k/activity-analyzer/pkg/llamacpp"
	"github.com/menta2k/activity-analyzer/pkg/ollama"
	"github.com/menta2k/activity-analyzer/pkg/types"
)

func main() {
	var in, outDir, model, url, backend, audience, configPath string
	var age int
	var sendFmt string
	var sendSize int
	var sendQ int
	var seed int64

	flag.StringVar(&in, "in", "", "input image path or URL (jpg/png/webp)")
	flag.StringVar(&outDir, "out", "out", "output directory for the analysis JSON")
	flag.StringVar(&model, "model", "", "model name (default from config)")
	flag.StringVar(&backend, "backend", "", "backend to use: ollama or llamacpp (default from config)")
	flag.StringVar(&url, "url", "", "server URL (defaults: ollama=http://localhost:11434/api/chat, llamacpp=http://localhost:8080)")
	flag.StringVar(&configPath, "config", "", "config file path (JSON)")

	flag.IntVar(&age, "age", 5, "child age in years")
	flag.StringVar(&audience, "audience", "parent", "target audience: parent or therapist")

	flag.StringVar(&sendFmt, "sendfmt", "", "format sent to the model: jpg|png")
	flag.IntVar(&sendSize, "sendsize", 0, "max long side sent to the model (px), 0=config default")
	flag.IntVar(&sendQ, "sendq", 0, "JPEG quality for image sent to the model (1-100)")

	flag.Int64Var(&seed, "seed", 0, "random seed for activity variety (0=time-based)")

	flag.Parse()
	if in == "" {
		log.Fatalf("usage: %s -in input.jpg|URL -age 5 [-audience parent|therapist] [-backend ollama|llamacpp] [-url server_url] [-out outdir]", filepath.Base(os.Args[0]))
	}
	if age < 0 || age > 18 {
		log.Fatalf("age must be between 0 and 18, got %d", age)
	}
	aud := types.Audience(audience)
	if aud != types.AudienceParent && aud != types.AudienceTherapist {
		log.Fatalf("unknown audience: %s (use 'parent' or 'therapist')", audience)
	}
	if !strings.HasPrefix(in, "http://") && !strings.HasPrefix(in, "https://") {
		if !utils.FileExists(in) {
			log.Fatalf("input file not found: %s", in)
		}
		if !utils.IsImageFile(in) {
			log.Fatalf("unsupported input format: %s (use jpg, png, or webp)", in)
		}
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	if backend != "" {
		cfg.Model.Backend = backend
	}
	if model != "" {
		cfg.Model.Model = model
	}
	if url != "" {
		cfg.Model.URL = url
	}
	if sendFmt != "" {
		cfg.Model.SendFormat = sendFmt
	}
	if sendSize > 0 {
		cfg.Model.SendSize = sendSize
	}
	if sendQ > 0 {
		cfg.Model.SendQ = sendQ
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if err := utils.EnsureDir(outDir); err != nil {
		log.Fatal(err)
	}

	// Create appropriate client based on backend
	var visionClient client.VisionClient
	var err error

	switch cfg.Model.Backend {
	case "ollama":
		if cfg.Model.URL == "" {
			cfg.Model.URL = "http://localhost:11434/api/chat"
		}
		visionClient, err = ollama.NewClient(cfg.Model.URL)
		if err != nil {
			log.Fatalf("Failed to create Ollama client: %v", err)
		}
	case "llamacpp":
		if cfg.Model.URL == "" {
			cfg.Model.URL = "http://localhost:8080"
		}
		visionClient, err = llamacpp.NewClient(cfg.Model.URL)
		if err != nil {
			log.Fatalf("Failed to create llama.cpp client: %v", err)
		}
	default:
		log.Fatalf("Unknown backend: %s (use 'ollama' or 'llamacpp')", cfg.Model.Backend)
	}

	opts := activityanalyzer.DefaultOptions()
	opts.Filter = detection.FilterConfig{
		ConfidenceThreshold: cfg.Detection.ConfidenceThreshold,
		MinDetections:       cfg.Detection.MinDetections,
		MaxDetections:       cfg.Detection.MaxDetections,
	}
	opts.MaxElements = cfg.Pipeline.MaxElements
	opts.TargetActivities = cfg.Pipeline.TargetActivities
	opts.Model = cfg.Model.Model
	opts.SendFormat = cfg.Model.SendFormat
	opts.SendSize = cfg.Model.SendSize
	opts.SendQuality = cfg.Model.SendQ
	if seed != 0 {
		opts.Rand = rand.New(rand.NewSource(seed))
	}

	analyzer := activityanalyzer.NewWithOptions(visionClient, opts)

	result, err := analyzer.AnalyzeImageFile(context.Background(), in, age, aud)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("request=%s detections=%d elements=%d activities=%d",
		result.RequestID, len(result.Detections), len(result.Elements), len(result.Activities))
	for _, el := range result.Elements {
		log.Printf("element=%q height=%s stability=%s space=%s classes=%v safe_alt_only=%v",
			el.ObjectLabel, el.Height, el.Stability, el.Space,
			el.Safety.Classes, el.Safety.UseSafeAlternativesOnly)
	}
	for i, s := range result.Suggestions {
		fmt.Printf("%d. %s\n", i+1, s)
	}

	// Save full analysis JSON
	js, _ := json.MarshalIndent(result, "", "  ")
	outPath := filepath.Join(outDir, "analysis.json")
	if err := os.WriteFile(outPath, js, 0o644); err != nil {
		log.Printf("save %s failed: %v", outPath, err)
	} else {
		log.Printf("wrote %s", outPath)
	}
}
