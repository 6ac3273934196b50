package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool's path argument.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Sprite Extraction
		{
			Name: "sprite_extract",
			Description: "Find every sprite on a sheet and cut it out. A sprite is a 4-connected group of dark pixels " +
				"(no RGB channel above 128); lighter pixels are background. Sprites are returned in row-major order of " +
				"their first pixel with inclusive bounds. Each sprite image keeps only its own pixels, everything else in " +
				"its box is transparent. The cleaned sheet has every sprite erased to white.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Optional directory to write sprite PNGs, the cleaned sheet and a YAML manifest into",
					},
					"include_images": map[string]interface{}{
						"type":        "boolean",
						"description": "Embed each sprite as base64 PNG. Default true without output_dir, false with it",
					},
					"include_cleaned": map[string]interface{}{
						"type":        "boolean",
						"description": "Embed the cleaned sheet as base64 PNG. Default false",
						"default":     false,
					},
					"write_manifest": map[string]interface{}{
						"type":        "boolean",
						"description": "Write <name>.yaml next to the sprites when output_dir is set",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Nearest-neighbor scale for embedded sprite previews, in (0, 16]. Default from server config (1.0)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "sprite_count",
			Description: "Count the sprites on a sheet and return their bounding boxes without any image data.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it has an alpha channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel as hex, RGBA and HSL, and whether sprite extraction treats it as background.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors",
			Description: "Sample several pixels in one call. Useful for checking why two sprites were or were not joined.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x": map[string]interface{}{"type": "integer"},
								"y": map[string]interface{}{"type": "integer"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Points to sample, answered in the same order",
					},
				},
				"required": []string{"path", "points"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
