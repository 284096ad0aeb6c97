package main

import "flag"
import "fmt"
import "log"
import "strconv"

import "github.com/neurlang/tinynet/datasets/circle"
import "github.com/neurlang/tinynet/net/feedforward"

func main() {
	dstmodel := flag.String("dstmodel", "", "model .json.zlib file written by train_circle")
	flag.Parse()

	var net feedforward.FeedforwardNetwork
	if err := net.ReadZlibWeightsFromFile(*dstmodel); err != nil {
		log.Fatal(err)
	}

	points := [][]float32{{0, 0}, {10, -10}, {29, 0}, {31, 0}, {60, 60}, {-140, 0}, {140, 140}}
	if args := flag.Args(); len(args) > 0 {
		if len(args)%2 != 0 {
			log.Fatal("expected x y pairs")
		}
		points = points[:0]
		for i := 0; i < len(args); i += 2 {
			x, err := strconv.ParseFloat(args[i], 32)
			if err != nil {
				log.Fatal(err)
			}
			y, err := strconv.ParseFloat(args[i+1], 32)
			if err != nil {
				log.Fatal(err)
			}
			points = append(points, []float32{float32(x), float32(y)})
		}
	}

	var correct int
	outputs := net.ParRun(points)
	for i, p := range points {
		inside := circle.Classify(outputs[i][0])
		if inside == circle.Inside(p[0], p[1], circle.Radius) {
			correct++
		}
		fmt.Printf("run: (%g,%g) -> %+.3f inside=%v\n", p[0], p[1], outputs[i][0], inside)
	}
	println("[infer success rate]", 100*correct/len(points), "%")
}
