package main

import "flag"
import "log"
import "os"

import "github.com/neurlang/tinynet/datasets/squareroot"
import "github.com/neurlang/tinynet/dot"
import "github.com/neurlang/tinynet/net/feedforward"
import "github.com/neurlang/tinynet/neuron"
import "github.com/neurlang/tinynet/trainer"

func main() {
	dstmodel := flag.String("dstmodel", "", "model destination .json.zlib file")
	resume := flag.Bool("resume", false, "resume training")
	rounds := flag.Int("rounds", 500, "number of training rounds")
	seed := flag.Uint64("seed", 0, "seed for reproducible training, 0 picks a random one")
	dotStrategy := flag.String("dot", "", "dot product strategy: scalar, chunked or blas, empty picks by cpu")
	flag.Parse()

	strategy, lanes, err := dot.ByName(*dotStrategy)
	if err != nil {
		log.Fatal(err)
	}
	dot.Use(strategy, lanes)

	dataset := squareroot.New(squareroot.Medium)

	const hidden = 6

	var r neuron.Rand = neuron.Global
	if *seed != 0 {
		r = neuron.NewSeeded(*seed)
	}
	net := feedforward.New(1, 1).
		AddRandomLayer(hidden, neuron.ReLU, r).
		AddRandomLayer(1, neuron.Linear, r)

	// mutations continue the stream that initialized the weights
	h := trainer.HyperParameters{Rand: r}
	h.SetOutput(os.Stderr)

	if err := trainer.Resume(net, resume, dstmodel); err != nil {
		log.Fatal(err)
	}

	t := trainer.New(dataset, h)
	var best = t.ComputeError(net)
	evaluate := trainer.NewEvaluateFunc(net, t, &best, dstmodel)
	for round := 0; round < *rounds; round++ {
		t.Train(net, 200)
		if _, err := evaluate(); err != nil {
			log.Fatal(err)
		}
	}
	println("[mean error]", best)
}
