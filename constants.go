package spline

// Reference configuration
const (
	// DefaultWidth and DefaultHeight are the pixel buffer dimensions.
	DefaultWidth  = 888
	DefaultHeight = 888

	// DefaultHitRadius is the half-width of the toggle hit window, in pixels.
	DefaultHitRadius = 6.0

	// DefaultMarkerRadius is the radius of the query pointer marker, in pixels.
	DefaultMarkerRadius = 6.0
)

// Configuration limits
const (
	// maxDimension bounds each buffer side (4 bytes per pixel, so at most 1 GiB).
	maxDimension = 1 << 14
)
