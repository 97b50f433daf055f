// Package optim provides the unconstrained, gradient-based minimiser used to
// tune kernel hyperparameters.
//
// The GP engine only sees the Optimizer interface: hand it a Cost able to
// report (value, gradient) at any parameter vector and a starting point,
// receive a refined vector plus a "usable" verdict. LBFGS is the default
// implementation, built on gonum's optimize package:
//
//   - limited-memory BFGS with MaxRank stored correction pairs;
//   - a backtracking line search capped at MaxLineSearchStepIterations trials;
//   - on line-search failure the search direction is restarted (fresh L-BFGS
//     memory, steepest descent) from the best point so far, at most
//     MaxLineSearchDirectionRestarts times;
//   - MaxIterations major iterations in total across all restarts.
//
// A run that hits the iteration budget without converging is still usable;
// only failures (restarts exhausted, non-finite starting cost) are not.
package optim
