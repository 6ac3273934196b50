package detection

// BackgroundThreshold is the channel brightness above which a pixel counts as
// background.
const BackgroundThreshold uint8 = 128

// EraseColor replaces every extracted pixel in the source buffer.
var EraseColor = Color{R: 255, G: 255, B: 255, A: 255}

// Color is a single 8-bit RGBA pixel value as stored in a buffer.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// IsBackground reports whether c is ignored by object detection.
//
// A pixel is background if any of its red, green or blue channels is strictly
// greater than BackgroundThreshold. Alpha plays no part, so a fully transparent
// black pixel is still foreground.
func IsBackground(c Color) bool {
	return c.R > BackgroundThreshold || c.G > BackgroundThreshold || c.B > BackgroundThreshold
}
