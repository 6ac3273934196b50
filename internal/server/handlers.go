package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/ironsheep/sprite-tools-mcp/internal/detection"
	"github.com/ironsheep/sprite-tools-mcp/internal/imaging"
	"github.com/ironsheep/sprite-tools-mcp/internal/sheet"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "sprite_extract", "image_load").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errInvalidArguments marks argument problems so they map to -32602.
var errInvalidArguments = errors.New("invalid arguments")

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Argument errors return code -32602; any other tool failure returns -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, errInvalidArguments) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Sprite Extraction
	case "sprite_extract":
		return s.handleSpriteExtract(args)
	case "sprite_count":
		return s.handleSpriteCount(args)

	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors":
		return s.handleImageSampleColors(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments and requires a non-empty path.
func decodeArgs(args json.RawMessage, v interface{ path() string }) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing arguments", errInvalidArguments)
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArguments, err)
	}
	if v.path() == "" {
		return fmt.Errorf("%w: path is required", errInvalidArguments)
	}
	return nil
}

// === Sprite Extraction Handlers ===

type spriteExtractArgs struct {
	Path           string   `json:"path"`
	OutputDir      string   `json:"output_dir"`
	IncludeImages  *bool    `json:"include_images"`
	IncludeCleaned bool     `json:"include_cleaned"`
	WriteManifest  *bool    `json:"write_manifest"`
	Scale          *float64 `json:"scale"`
}

func (a *spriteExtractArgs) path() string { return a.Path }

func (s *Server) handleSpriteExtract(args json.RawMessage) (interface{}, error) {
	var a spriteExtractArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	// Without an output directory the images are the only way to get the
	// sprites back, so they are embedded unless explicitly turned off.
	includeImages := a.OutputDir == ""
	if a.IncludeImages != nil {
		includeImages = *a.IncludeImages
	}
	scale := s.cfg.PreviewScale
	if a.Scale != nil {
		if *a.Scale <= 0 || *a.Scale > 16 {
			return nil, fmt.Errorf("%w: scale must be in (0, 16], got %g", errInvalidArguments, *a.Scale)
		}
		scale = *a.Scale
	}

	result, err := s.extract(a.Path)
	if err != nil {
		return nil, err
	}

	rep, err := result.Report(a.Path, sheet.ReportOptions{
		IncludeImages:  includeImages,
		IncludeCleaned: a.IncludeCleaned,
		Scale:          scale,
	})
	if err != nil {
		return nil, err
	}

	if a.OutputDir != "" {
		cfg := *s.cfg
		if a.WriteManifest != nil {
			cfg.WriteManifest = *a.WriteManifest
		}
		dir, err := filepath.Abs(a.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve output directory: %w", err)
		}
		m, err := result.WriteFiles(dir, a.Path, &cfg)
		if err != nil {
			return nil, err
		}
		manifestFile := ""
		if cfg.WriteManifest {
			manifestFile = filepath.Join(dir, sheet.BaseName(a.Path)+".yaml")
		}
		rep.AttachFiles(dir, m, manifestFile)
	}

	return rep, nil
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (a *imageLoadArgs) path() string { return a.Path }

// spriteCountResult is the coordinates-only answer of sprite_count.
type spriteCountResult struct {
	Source string             `json:"source"`
	Count  int                `json:"count"`
	Bounds []detection.Bounds `json:"bounds"`
}

func (s *Server) handleSpriteCount(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	result, err := s.extract(a.Path)
	if err != nil {
		return nil, err
	}

	bounds := make([]detection.Bounds, 0, len(result.Sprites))
	for _, sp := range result.Sprites {
		bounds = append(bounds, sp.Bounds)
	}
	return &spriteCountResult{
		Source: a.Path,
		Count:  len(result.Sprites),
		Bounds: bounds,
	}, nil
}

// extract loads path through the cache and runs sprite extraction on a copy.
func (s *Server) extract(path string) (*sheet.Result, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return sheet.Extract(img)
}

// === Basic Image Information Handlers ===

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (a *imageSampleColorArgs) path() string { return a.Path }

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"points"`
}

func (a *imageSampleColorsArgs) path() string { return a.Path }

func (s *Server) handleImageSampleColors(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]image.Point, len(a.Points))
	for i, p := range a.Points {
		points[i] = image.Pt(p.X, p.Y)
	}
	samples, err := imaging.SampleColors(img, points)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"samples": samples,
	}, nil
}
