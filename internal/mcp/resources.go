package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) workoutLibrary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	lib, err := h.src.WorkoutLibrary(ctx)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, lib)
}

func (h *handlers) presets(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	presets, err := h.src.Presets(ctx)
	if err != nil {
		h.log.Warn("presets resource failed", "error", err)
		return nil, err
	}
	return jsonContents(req.Params.URI, presets)
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
