package core

// Fixed-point scale factor: 1 tile = 1000 units.
// Sub-tile progress, speeds and timers are integers so that replays with the
// same seed are bit-for-bit identical.
const Scale = 1000

// Fixed represents a fixed-point value scaled by Scale.
type Fixed int

// FixedOne is one whole tile (or one whole timer unit).
const FixedOne Fixed = Scale

// ToFixed converts a whole number of tiles to fixed-point.
func ToFixed(n int) Fixed {
	return Fixed(n * Scale)
}

// Float returns the value as a float64.
func (f Fixed) Float() float64 {
	return float64(f) / Scale
}

// Positive reports whether the value is strictly greater than zero.
func (f Fixed) Positive() bool {
	return f > 0
}
