package main

import "flag"
import "fmt"
import "log"
import "os"

import "github.com/neurlang/tinynet/datasets/linear"
import "github.com/neurlang/tinynet/dot"
import "github.com/neurlang/tinynet/net/feedforward"
import "github.com/neurlang/tinynet/neuron"
import "github.com/neurlang/tinynet/trainer"

func main() {
	tolerance := flag.Float64("tolerance", 0.1, "stop once the mean error is at most this")
	iterations := flag.Int("iterations", 10, "edits per round")
	seed := flag.Uint64("seed", 0, "seed for reproducible training, 0 picks a random one")
	dotStrategy := flag.String("dot", "", "dot product strategy: scalar, chunked or blas, empty picks by cpu")
	flag.Parse()

	strategy, lanes, err := dot.ByName(*dotStrategy)
	if err != nil {
		log.Fatal(err)
	}
	dot.Use(strategy, lanes)

	net := feedforward.New(1, 1).AddLayer(1, neuron.Linear)

	var h trainer.HyperParameters
	h.Seed = *seed
	h.SetOutput(os.Stderr)
	t := trainer.New(linear.Medium(), h)

	loss, rounds, err := t.TrainUntil(net, float32(*tolerance), *iterations, 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("error %g after %d rounds\n", loss, rounds)

	n := net.Neuron(0, 0)
	fmt.Printf("weight %g bias %g\n", n.Weights[0], n.Bias)
	for i := -5; i < 5; i++ {
		x := float32(i) + 0.5
		fmt.Printf("run: %5.1f -> %8.4f (want %5.1f)\n", x, net.Run([]float32{x})[0], linear.Slope*x)
	}
}
