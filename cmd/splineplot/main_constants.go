package main

// Default command-line flag values
const (
	defaultOutput = "" // No image unless requested
	defaultQuery  = "" // No query unless requested
	defaultWidth  = 0  // Keep the configured width
	defaultHeight = 0  // Keep the configured height
)

// Output file permissions
const (
	outputFileMode = 0o644
)
