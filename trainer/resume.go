package trainer

import "github.com/neurlang/tinynet/net/feedforward"

// Resume loads the model at dstmodel into net when resume is set. A missing
// file is reported, leaving net as it was.
func Resume(net *feedforward.FeedforwardNetwork, resume *bool, dstmodel *string) error {
	if resume != nil && *resume && dstmodel != nil && *dstmodel != "" {
		return net.ReadZlibWeightsFromFile(*dstmodel)
	}
	return nil
}
