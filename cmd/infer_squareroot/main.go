package main

import "flag"
import "log"

import "github.com/chewxy/math32"

import "github.com/neurlang/tinynet/datasets/squareroot"
import "github.com/neurlang/tinynet/net/feedforward"

func main() {

	dstmodel := flag.String("dstmodel", "", "model .json.zlib file written by train_squareroot")
	flag.Parse()

	var net feedforward.FeedforwardNetwork
	if err := net.ReadZlibWeightsFromFile(*dstmodel); err != nil {
		log.Fatal(err)
	}

	dataset := squareroot.New(squareroot.Medium)
	outputs := net.ParRun(dataset.Inputs)

	var errsum float32
	for k := range outputs {
		errsum += math32.Abs(outputs[k][0] - dataset.Labels[k][0])
		if k%32 == 0 {
			println("sqrt", k, "=", outputs[k][0])
		}
	}
	println("[infer mean error]", errsum/float32(len(outputs)))
}
