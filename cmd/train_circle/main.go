package main

import "flag"
import "fmt"
import "log"
import "os"

import "github.com/neurlang/tinynet/datasets/circle"
import "github.com/neurlang/tinynet/dot"
import "github.com/neurlang/tinynet/net/feedforward"
import "github.com/neurlang/tinynet/neuron"
import "github.com/neurlang/tinynet/trainer"

// Network builds the classifier: folded axis features feeding a tanh output.
func Network() *feedforward.FeedforwardNetwork {
	return feedforward.New(2, 1).
		AddLayer(4, neuron.ReLU).
		WithWeights([][]float32{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}).
		AddLayer(1, neuron.Tanh)
}

func main() {
	dstmodel := flag.String("dstmodel", "", "model destination .json.zlib file")
	pgo := flag.Bool("pgo", false, "write a cpu profile to default.pgo")
	resume := flag.Bool("resume", false, "resume training")
	tolerance := flag.Float64("tolerance", 0.2, "stop once the mean error is at most this")
	iterations := flag.Int("iterations", 100, "edits per round")
	rounds := flag.Int("rounds", 1000, "give up after this many rounds, 0 never gives up")
	extent := flag.Int("extent", circle.Extent, "half-width of the dataset grid")
	step := flag.Int("step", 5, "grid step of the dataset")
	dotStrategy := flag.String("dot", "", "dot product strategy: scalar, chunked or blas, empty picks by cpu")
	seed := flag.Uint64("seed", 0, "seed for reproducible training, 0 picks a random one")
	logfile := flag.String("log", "", "append training progress to this file")
	flag.Parse()

	if *pgo {
		defer startProfile("default.pgo")()
	}

	strategy, lanes, err := dot.ByName(*dotStrategy)
	if err != nil {
		log.Fatal(err)
	}
	dot.Use(strategy, lanes)

	dataset := circle.New(*extent, *step, circle.Radius)

	var h trainer.HyperParameters
	h.Seed = *seed
	if *logfile != "" {
		if err := h.SetLogger(*logfile); err != nil {
			log.Fatal(err)
		}
	} else {
		h.SetOutput(os.Stderr)
	}

	net := Network()
	if err := trainer.Resume(net, resume, dstmodel); err != nil {
		log.Fatal(err)
	}

	t := trainer.New(dataset, h)
	best := t.ComputeError(net)
	evaluate := trainer.NewEvaluateFunc(net, t, &best, dstmodel)
	fmt.Printf("Dataset has %d rows, initial error %g\n", dataset.Len(), best)

	for round := 1; *rounds == 0 || round <= *rounds; round++ {
		t.Train(net, *iterations)
		current, err := evaluate()
		if err != nil {
			log.Fatal(err)
		}
		println("[round]", round, "error", current)
		if current <= float32(*tolerance) {
			break
		}
	}

	for _, p := range [][]float32{{0, 0}, {5, 5}, {-10, 10}, {25, 1}, {25, 25}, {50, -50}, {-75, 75}, {140, 140}} {
		out := net.Run(p)[0]
		fmt.Printf("run: %v -> %+.3f inside=%v\n", p, out, circle.Classify(out))
	}
}
