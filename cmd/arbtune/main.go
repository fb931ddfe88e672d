// Command arbtune measures the crossover points between the schoolbook and
// the asymptotically fast polynomial algorithms and emits tuned poly.Parameters.
//
// For each size from -min to -max (doubling), both algorithms of the selected
// operation are timed -reps times on random data. The smallest size from which
// the fast algorithm is consistently faster becomes the threshold of the
// corresponding poly.ParametersLiteral field.
//
//	arbtune -op evaluate -min 8 -max 512 -prec 256 -html report.html -json params.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/montanaflynn/stats"

	"github.com/arbpoly/arbpoly/ball"
	"github.com/arbpoly/arbpoly/poly"
	"github.com/arbpoly/arbpoly/utils/sampling"
)

// algorithm is a named implementation of an operation on inputs of size n.
type algorithm struct {
	name string
	// setup returns the function to time on random inputs of size n
	setup func(s *ball.Sampler, n int, prec uint) func()
}

// measurement holds the timings of every algorithm at a given size.
type measurement struct {
	N       int
	Median  map[string]float64
	Mean    map[string]float64
	StdDev  map[string]float64
	Fastest string
}

func main() {

	op := flag.String("op", "evaluate", "operation to tune: compose|evaluate|interpolate")
	minN := flag.Int("min", 4, "smallest size")
	maxN := flag.Int("max", 256, "largest size")
	prec := flag.Uint("prec", 128, "working precision in bits")
	reps := flag.Int("reps", 5, "number of timed repetitions per size")
	htmlPath := flag.String("html", "", "write a go-echarts report to this file")
	jsonPath := flag.String("json", "", "write the tuned parameters to this file instead of stdout")
	paramsPath := flag.String("params", "", "JSON parameters to start from (defaults otherwise)")
	seed := flag.String("seed", "arbtune", "label of the keyed PRNG, empty for a non-deterministic source")
	flag.Parse()

	if *minN < 1 || *maxN < *minN {
		log.Fatalf("invalid size range [%d, %d]", *minN, *maxN)
	}

	if *reps < 1 {
		log.Fatalf("invalid number of repetitions %d", *reps)
	}

	slow, fast, err := algorithms(*op)
	if err != nil {
		log.Fatal(err)
	}

	params, err := loadParameters(*paramsPath)
	if err != nil {
		log.Fatal(err)
	}

	var prng io.Reader
	if *seed != "" {
		prng = sampling.NewKeyedPRNGFromLabel(*seed)
	} else if prng, err = sampling.NewPRNG(); err != nil {
		log.Fatal(err)
	}

	s := ball.NewSampler(prng)

	var results []measurement

	for n := *minN; ; n *= 2 {

		m, err := measure(s, []algorithm{slow, fast}, n, *prec, *reps)
		if err != nil {
			log.Fatal(err)
		}

		for _, alg := range []algorithm{slow, fast} {
			log.Printf("%s n=%d %s: median %.3f ms, mean %.3f ms, std %.3f ms", *op, n, alg.name, m.Median[alg.name], m.Mean[alg.name], m.StdDev[alg.name])
		}

		results = append(results, m)

		if n > *maxN/2 {
			break
		}
	}

	threshold := crossover(results, fast.name)
	if threshold == 0 {
		log.Printf("%s: %s never faster up to n=%d, threshold set above the range", *op, fast.name, *maxN)
		threshold = 2 * *maxN
	} else {
		log.Printf("%s: %s faster from n=%d", *op, fast.name, threshold)
	}

	if params, err = tune(params, *op, threshold); err != nil {
		log.Fatal(err)
	}

	if *htmlPath != "" {
		if err = writeReport(*htmlPath, *op, *prec, results, []algorithm{slow, fast}); err != nil {
			log.Fatalf("render html: %v", err)
		}
		log.Printf("report written to %s", *htmlPath)
	}

	data, err := json.MarshalIndent(params.ParametersLiteral(), "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	if *jsonPath == "" {
		fmt.Println(string(data))
		return
	}

	if err = os.WriteFile(*jsonPath, data, 0o644); err != nil {
		log.Fatalf("save parameters: %v", err)
	}

	log.Printf("parameters written to %s", *jsonPath)
}

// algorithms returns the schoolbook and the fast algorithm of op.
func algorithms(op string) (slow, fast algorithm, err error) {

	switch op {
	case "compose":

		inputs := func(s *ball.Sampler, n int, prec uint) (p, q *poly.Poly) {
			return randPoly(s, n, prec), randPoly(s, poly.DefaultComposeDivConquerMinLen2+1, prec)
		}

		slow = algorithm{name: poly.ComposeHornerAlgorithm.String(), setup: func(s *ball.Sampler, n int, prec uint) func() {
			p, q := inputs(s, n, prec)
			r := poly.NewPoly(0)
			return func() { r.ComposeHorner(p, q, prec) }
		}}

		fast = algorithm{name: poly.ComposeDivConquerAlgorithm.String(), setup: func(s *ball.Sampler, n int, prec uint) func() {
			p, q := inputs(s, n, prec)
			r := poly.NewPoly(0)
			return func() { r.ComposeDivConquer(p, q, prec) }
		}}

	case "evaluate":

		slow = algorithm{name: poly.EvaluateVecIterAlgorithm.String(), setup: func(s *ball.Sampler, n int, prec uint) func() {
			p, xs := randPoly(s, n, prec), randBalls(s, n, prec)
			return func() { poly.EvaluateVecIter(p, xs, prec) }
		}}

		fast = algorithm{name: poly.EvaluateVecFastAlgorithm.String(), setup: func(s *ball.Sampler, n int, prec uint) func() {
			p, xs := randPoly(s, n, prec), randBalls(s, n, prec)
			return func() { poly.EvaluateVecFast(p, xs, prec) }
		}}

	case "interpolate":

		nodes := func(n int) []ball.Ball {
			xs := make([]ball.Ball, n)
			for i := range xs {
				xs[i] = ball.NewInt(int64(i))
			}
			return xs
		}

		slow = algorithm{name: poly.InterpolateNewtonAlgorithm.String(), setup: func(s *ball.Sampler, n int, prec uint) func() {
			xs, ys := nodes(n), randBalls(s, n, prec)
			return func() {
				if _, err := poly.InterpolateNewton(xs, ys, prec); err != nil {
					log.Fatal(err)
				}
			}
		}}

		fast = algorithm{name: poly.InterpolateFastAlgorithm.String(), setup: func(s *ball.Sampler, n int, prec uint) func() {
			xs, ys := nodes(n), randBalls(s, n, prec)
			return func() {
				if _, err := poly.InterpolateFast(xs, ys, prec); err != nil {
					log.Fatal(err)
				}
			}
		}}

	default:
		err = fmt.Errorf("invalid operation %q: must be compose, evaluate or interpolate", op)
	}

	return
}

func randBalls(s *ball.Sampler, n int, prec uint) []ball.Ball {
	xs := make([]ball.Ball, n)
	for i := range xs {
		xs[i] = s.ReadExact(prec, 1)
	}
	return xs
}

func randPoly(s *ball.Sampler, n int, prec uint) *poly.Poly {
	return poly.NewPolyFromBalls(randBalls(s, n, prec))
}

// measure times every algorithm reps times on inputs of size n and
// summarizes the timings in milliseconds.
func measure(s *ball.Sampler, algs []algorithm, n int, prec uint, reps int) (m measurement, err error) {

	m = measurement{
		N:      n,
		Median: map[string]float64{},
		Mean:   map[string]float64{},
		StdDev: map[string]float64{},
	}

	for _, alg := range algs {

		run := alg.setup(s, n, prec)

		timings := make([]float64, reps)
		for i := range timings {
			start := time.Now()
			run()
			timings[i] = float64(time.Since(start).Nanoseconds()) / 1e6
		}

		if m.Median[alg.name], err = stats.Median(timings); err != nil {
			return m, fmt.Errorf("cannot measure %s: %w", alg.name, err)
		}

		if m.Mean[alg.name], err = stats.Mean(timings); err != nil {
			return m, fmt.Errorf("cannot measure %s: %w", alg.name, err)
		}

		if m.StdDev[alg.name], err = stats.StandardDeviation(timings); err != nil {
			return m, fmt.Errorf("cannot measure %s: %w", alg.name, err)
		}

		if m.Fastest == "" || m.Median[alg.name] < m.Median[m.Fastest] {
			m.Fastest = alg.name
		}
	}

	return
}

// crossover returns the smallest size from which fast is the fastest
// algorithm at every measured size, or 0 if there is none.
func crossover(results []measurement, fast string) (n int) {
	for i := len(results) - 1; i >= 0 && results[i].Fastest == fast; i-- {
		n = results[i].N
	}
	return
}

func loadParameters(path string) (params poly.Parameters, err error) {

	if path == "" {
		return poly.DefaultParameters(), nil
	}

	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		return params, fmt.Errorf("cannot loadParameters: %w", err)
	}

	if err = json.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("cannot loadParameters: %w", err)
	}

	return
}

// tune returns params with the threshold of op set to n.
func tune(params poly.Parameters, op string, n int) (poly.Parameters, error) {

	pl := params.ParametersLiteral()

	switch op {
	case "compose":
		pl.ComposeDivConquerMinLen1 = n
	case "evaluate":
		pl.EvaluateVecFastMinPoints = n
		pl.EvaluateVecFastMinLen = n
	case "interpolate":
		pl.InterpolateFastMinPoints = n
	}

	return poly.NewParametersFromLiteral(pl)
}

func writeReport(path, op string, prec uint, results []measurement, algs []algorithm) (err error) {

	sizes := make([]string, len(results))
	for i := range results {
		sizes[i] = fmt.Sprintf("%d", results[i].N)
	}

	title := fmt.Sprintf("%s at %d bits", op, prec)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "median time in ms per size"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "arbtune", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
	)

	bar.SetXAxis(sizes)

	for _, alg := range algs {
		items := make([]opts.BarData, len(results))
		for i := range results {
			items[i] = opts.BarData{Value: results[i].Median[alg.name]}
		}
		bar.AddSeries(alg.name, items)
	}

	bar.SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	page := components.NewPage()
	page.AddCharts(bar)

	var f *os.File
	if f, err = os.Create(path); err != nil {
		return
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return page.Render(f)
}
