package client

import (
	"context"

	"github.com/menta2k/activity-analyzer/pkg/types"
)

type VisionClient interface {
	SimpleQuery(ctx context.Context, model, prompt, imgB64 string) (string, error)
	DetectObjects(ctx context.Context, model, prompt, imgB64 string) ([]types.RawDetection, error)
}
