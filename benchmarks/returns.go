package benchmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/zeu5/multistep-env/types"
	"github.com/zeu5/multistep-env/util"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ReturnsDataSet collects per-episode returns and lengths of one
// experiment.
type ReturnsDataSet struct {
	Returns []float64 `json:"returns"`
	Lengths []int     `json:"lengths"`
}

// ReturnsAnalyzer sums the macro-step rewards of each trace.
func ReturnsAnalyzer(traces []*types.Trace) types.DataSet {
	dataSet := &ReturnsDataSet{
		Returns: make([]float64, len(traces)),
		Lengths: make([]int, len(traces)),
	}
	for i, trace := range traces {
		dataSet.Returns[i] = floats.Sum(trace.Rewards())
		dataSet.Lengths[i] = trace.Len()
	}
	return dataSet
}

// ReturnsComparator prints summary statistics, records the datasets as
// JSON and plots the return curves side by side.
func ReturnsComparator(savePath string) types.Comparator {
	return func(names []string, datasets []types.DataSet) error {
		if err := os.MkdirAll(savePath, 0755); err != nil {
			return err
		}

		p := plot.New()
		p.Title.Text = "Episode returns"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Return"

		for i, name := range names {
			dataSet := datasets[i].(*ReturnsDataSet)

			mean := stat.Mean(dataSet.Returns, nil)
			std := stat.StdDev(dataSet.Returns, nil)
			fmt.Printf("%s: mean return %.3f (std %.3f) over %d episodes\n",
				name, mean, std, len(dataSet.Returns))

			bs, err := json.Marshal(dataSet)
			if err != nil {
				return err
			}
			if err := util.WriteToFile(path.Join(savePath, name+".json"), string(bs)); err != nil {
				return err
			}

			points := make(plotter.XYs, len(dataSet.Returns))
			for j, r := range dataSet.Returns {
				points[j].X = float64(j)
				points[j].Y = r
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				return err
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(name, line)
		}

		return p.Save(6*vg.Inch, 4*vg.Inch, path.Join(savePath, "returns.png"))
	}
}
