package dis_test

import (
	"fmt"
	"testing"

	"github.com/urbanmetrics/divintseg/dis"
	"github.com/urbanmetrics/divintseg/frame"
)

// benchTable builds communities×units rows over 5 subgroups with a
// deterministic count pattern.
func benchTable(b *testing.B, communities, units int) *frame.Table {
	b.Helper()
	tb, err := frame.New([]string{"region", "tract"}, []string{"A", "B", "C", "D", "E"})
	if err != nil {
		b.Fatal(err)
	}
	for c := 0; c < communities; c++ {
		region := fmt.Sprintf("r%d", c)
		for u := 0; u < units; u++ {
			tract := fmt.Sprintf("t%d", u)
			counts := []float64{
				float64(c%7 + 1),
				float64(u%5 + 1),
				float64((c + u) % 11),
				float64(u % 3),
				float64(c % 2),
			}
			if err := tb.AppendRow([]string{region, tract}, counts); err != nil {
				b.Fatal(err)
			}
		}
	}
	return tb
}

func BenchmarkDiversity(b *testing.B) {
	tb := benchTable(b, 100, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dis.Diversity(tb); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIntegration_Over(b *testing.B) {
	tb := benchTable(b, 100, 50)
	opts := &dis.Options{Over: "tract"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dis.Integration(tb, "region", opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDI(b *testing.B) {
	tb := benchTable(b, 100, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dis.DI(tb, "region", nil); err != nil {
			b.Fatal(err)
		}
	}
}
