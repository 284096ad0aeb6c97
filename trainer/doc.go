// Package trainer provides high-level training orchestration for feedforward networks.
// It fits a network to a dataset by greedy random search: perturb one parameter,
// measure the error over every row in parallel, keep the change only if the error
// dropped. No gradients and no backpropagation are involved.
package trainer
