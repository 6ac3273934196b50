package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"sprite_extract",
		"sprite_count",
		"image_load",
		"image_dimensions",
		"image_sample_color",
		"image_sample_colors",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want object", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema properties should be a map")
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("required should be []string")
			}

			hasPath := false
			for _, r := range required {
				if r == "path" {
					hasPath = true
				}
			}
			if !hasPath {
				t.Error("path should be required")
			}

			props := tool.InputSchema["properties"].(map[string]interface{})
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required field %s has no property", r)
				}
			}
		})
	}
}

func TestToolDefinitions_SpriteExtractOptions(t *testing.T) {
	var extract Tool
	for _, tool := range GetToolDefinitions() {
		if tool.Name == "sprite_extract" {
			extract = tool
		}
	}

	props := extract.InputSchema["properties"].(map[string]interface{})
	for _, name := range []string{"output_dir", "include_images", "include_cleaned", "write_manifest", "scale"} {
		if _, ok := props[name]; !ok {
			t.Errorf("sprite_extract should accept %s", name)
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New(nil)
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: "list-1"})

	if resp.JSONRPC != "2.0" {
		t.Errorf("JSONRPC: got %s, want 2.0", resp.JSONRPC)
	}
	if resp.ID != "list-1" {
		t.Errorf("ID: got %v, want list-1", resp.ID)
	}
	if resp.Error != nil {
		t.Errorf("unexpected error: %v", resp.Error)
	}
}
