package folio

// defaultFingerTolerance is the tap slop used by SelectWordAt and
// BoundaryAtPoint, in page points.
const defaultFingerTolerance = 10.0

// Option configures a Page at construction time.
type Option func(*Page)

// WithLogger directs the engine's diagnostic messages to log.
func WithLogger(log Logger) Option {
	return func(p *Page) {
		if log != nil {
			p.log = log
		}
	}
}

// WithFingerTolerance sets the tap slop, in page points, used when
// mapping a touch point to a character.
func WithFingerTolerance(tolerance float64) Option {
	return func(p *Page) {
		if tolerance >= 0 {
			p.fingerTolerance = tolerance
		}
	}
}
