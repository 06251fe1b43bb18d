package core

import "math"

// Interval represents a closed range of scalar values [Start, End]
type Interval struct {
	Start, End float64
}

// NewInterval creates a new interval
func NewInterval(start, end float64) Interval {
	return Interval{Start: start, End: end}
}

// UniverseInterval returns the interval covering all representable values
func UniverseInterval() Interval {
	return Interval{Start: math.Inf(-1), End: math.Inf(1)}
}

// Contains returns true if value is in the interval, inclusive
func (i Interval) Contains(value float64) bool {
	return i.Start <= value && value <= i.End
}

// Surrounds returns true if value is in the interval, exclusive
func (i Interval) Surrounds(value float64) bool {
	return i.Start < value && value < i.End
}

// Union returns the smallest interval containing both i and other
func (i Interval) Union(other Interval) Interval {
	return Interval{
		Start: math.Min(i.Start, other.Start),
		End:   math.Max(i.End, other.End),
	}
}

// Expand returns the interval padded by delta/2 on each side
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Start: i.Start - padding, End: i.End + padding}
}

// Middle returns the midpoint of the interval
func (i Interval) Middle() float64 {
	return (i.Start + i.End) / 2
}

// Size returns the extent of the interval
func (i Interval) Size() float64 {
	return i.End - i.Start
}

// IsEmpty returns true if the interval contains no values
func (i Interval) IsEmpty() bool {
	return i.Start > i.End
}
