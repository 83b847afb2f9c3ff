package dis_test

import (
	"fmt"

	"github.com/urbanmetrics/divintseg/dis"
	"github.com/urbanmetrics/divintseg/frame"
)

// ExampleDiversityOfCounts measures a single community given as a flat
// count vector: three equally sized subgroups attain the maximum 1−1/3.
func ExampleDiversityOfCounts() {
	fmt.Printf("%.4f\n", dis.DiversityOfCounts([]float64{10, 10, 10}))
	fmt.Printf("%.4f\n", dis.DiversityOfCounts([]float64{98, 1, 1}))
	// Output:
	// 0.6667
	// 0.0394
}

// ExampleDI contrasts two regions with identical pooled composition:
// X mixes its subgroups in every row, Y keeps them in separate rows.
// Both are equally diverse on paper; only X is integrated.
func ExampleDI() {
	tb, _ := frame.New([]string{"region"}, []string{"A", "B", "C"})
	_ = tb.AppendRow([]string{"X"}, []float64{10, 10, 10})
	_ = tb.AppendRow([]string{"X"}, []float64{20, 20, 20})
	_ = tb.AppendRow([]string{"X"}, []float64{30, 30, 30})
	_ = tb.AppendRow([]string{"Y"}, []float64{100, 0, 0})
	_ = tb.AppendRow([]string{"Y"}, []float64{0, 100, 0})
	_ = tb.AppendRow([]string{"Y"}, []float64{0, 0, 100})

	res, err := dis.DI(tb, "region", nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	div, _ := res.Column(dis.ColDiversity)
	integ, _ := res.Column(dis.ColIntegration)
	for i, region := range res.Keys() {
		fmt.Printf("%s: diversity=%.4f integration=%.4f\n", region, div[i], integ[i])
	}
	// Output:
	// X: diversity=0.6667 integration=0.6667
	// Y: diversity=0.6667 integration=0.0000
}
