package planar

import "testing"

var sink float64

func BenchmarkPoint_DistanceTo(b *testing.B) {
	a := NewPoint(1.25, -3)
	c := NewPoint(-7, 11.5)
	b.ReportAllocs()
	for b.Loop() {
		sink = a.DistanceTo(c)
	}
}

func BenchmarkCircle_Area(b *testing.B) {
	c := NewCircle(0, 0, 2.5)
	b.ReportAllocs()
	for b.Loop() {
		sink = c.Area()
	}
}
