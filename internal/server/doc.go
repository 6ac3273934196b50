// Package server implements the MCP (Model Context Protocol) server for sprite
// extraction.
//
// This package provides a JSON-RPC 2.0 server that exposes sprite sheet slicing
// through the MCP protocol, so an MCP client can ask for the sprites on a sheet,
// inspect them inline, or have them written to disk.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// Any method under notifications/ is accepted silently.
//
// # Available Tools
//
// Sprite Extraction:
//   - sprite_extract: Slice a sheet into sprites, optionally writing files
//   - sprite_count: Bounding boxes only
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Color Operations:
//   - image_sample_color: Get color at pixel and its background classification
//   - image_sample_colors: Sample multiple points
//
// # Image Caching
//
// Decoded images are cached by path and reused across tool calls until the file
// changes on disk. Extraction always works on a private copy, so the cache keeps
// the original pixels.
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses with:
//   - code: -32602 for bad arguments, -32000 for any other tool failure,
//     -32601 for unknown methods and -32700 for unparseable lines
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
