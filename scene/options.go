package scene

// Option configures a Scene during creation.
//
// Example:
//
//	s, _ := scene.New("mouse-rotation",
//	    scene.WithCanvasSize(800, 600),
//	    scene.WithMouse(520, 240),
//	)
type Option func(*options)

// options holds the scene parameters.
type options struct {
	width, height  float32
	aspectRatio    float32
	slerpT         float32
	mouseX, mouseY float32
	mouseSet       bool
}

// Default canvas of the demos.
const (
	DefaultWidth  = 500
	DefaultHeight = 300

	DefaultSlerpT = 0.5
)

func defaultOptions() options {
	return options{
		width:  DefaultWidth,
		height: DefaultHeight,
		slerpT: DefaultSlerpT,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.aspectRatio <= 0 && o.width > 0 && o.height > 0 {
		o.aspectRatio = o.width / o.height
	}
	if o.aspectRatio <= 0 {
		o.aspectRatio = float32(DefaultWidth) / DefaultHeight
	}
	if !o.mouseSet {
		o.mouseX, o.mouseY = o.width*0.5, o.height*0.5
	}
	return o
}

// WithCanvasSize sets the canvas size used for mouse rotation and, unless
// WithAspectRatio is given, for the projection's aspect ratio. A canvas
// without positive width and height keeps the default aspect ratio.
func WithCanvasSize(width, height float32) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithAspectRatio overrides the projection's aspect ratio.
// Non-positive values are ignored.
func WithAspectRatio(aspect float32) Option {
	return func(o *options) {
		if aspect > 0 {
			o.aspectRatio = aspect
		}
	}
}

// WithSlerpT sets the interpolation parameter of the quaternion-slerp scene.
// It is clamped to [0, 1].
func WithSlerpT(t float32) Option {
	return func(o *options) {
		o.slerpT = min(max(t, 0), 1)
	}
}

// WithMouse sets the pointer position in canvas coordinates.
// Without it the pointer rests at the canvas centre.
func WithMouse(x, y float32) Option {
	return func(o *options) {
		o.mouseX, o.mouseY = x, y
		o.mouseSet = true
	}
}
