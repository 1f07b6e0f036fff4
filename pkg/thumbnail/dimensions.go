package thumbnail

// Orientation classifies an image by its aspect ratio.
type Orientation string

// Orientations.
const (
	Landscape Orientation = "landscape"
	Portrait  Orientation = "portrait"
	Square    Orientation = "square"
)

// Default size assumed for images that are not in a catalog.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// Dimensions describes the measured size of a thumbnail image.
// Values are built with [FromSize] so that AspectRatio and Orientation
// always agree with Width and Height.
type Dimensions struct {
	Width       int         `json:"width" bson:"width" yaml:"width"`
	Height      int         `json:"height" bson:"height" yaml:"height"`
	AspectRatio float64     `json:"aspect_ratio" bson:"aspect_ratio" yaml:"aspect_ratio"`
	Orientation Orientation `json:"orientation" bson:"orientation" yaml:"orientation"`
}

// DefaultDimensions is the fallback used for unknown image references:
// 1920×1080 landscape.
var DefaultDimensions = FromSize(DefaultWidth, DefaultHeight)

// FromSize derives Dimensions from a pixel size.
func FromSize(width, height int) Dimensions {
	d := Dimensions{Width: width, Height: height}
	if height > 0 {
		d.AspectRatio = float64(width) / float64(height)
	}
	switch {
	case width > height:
		d.Orientation = Landscape
	case height > width:
		d.Orientation = Portrait
	default:
		d.Orientation = Square
	}
	return d
}

// IsPortrait reports whether the image is taller than it is wide.
func (d Dimensions) IsPortrait() bool { return d.Orientation == Portrait }

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool { return d.Width > 0 && d.Height > 0 }
