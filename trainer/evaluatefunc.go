package trainer

import "github.com/neurlang/tinynet/net/feedforward"

// NewEvaluateFunc returns a function computing the error of net. Whenever the
// error is below *best, the model is written to dstmodel (if set) and *best
// is updated. A nil best means every evaluation is an improvement.
func NewEvaluateFunc(net *feedforward.FeedforwardNetwork, t *Trainer, best *float32, dstmodel *string) func() (float32, error) {
	return func() (float32, error) {
		current := t.ComputeError(net)
		if best != nil && current >= *best {
			return current, nil
		}
		if best != nil {
			*best = current
		}
		if dstmodel != nil && *dstmodel != "" {
			if err := net.WriteZlibWeightsToFile(*dstmodel); err != nil {
				return current, err
			}
			t.h.logf("saved %s with error %g", *dstmodel, current)
		}
		return current, nil
	}
}
