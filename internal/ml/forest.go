package ml

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

const minSamplesSplit = 2

// A single node of a regression tree. Leaves carry the mean target of the
// samples that reached them; internal nodes split on Feature < Threshold.
type treeNode struct {
	Leaf      bool      `json:"leaf"`
	Value     float64   `json:"value,omitempty"`
	Feature   int       `json:"feature,omitempty"`
	Threshold float64   `json:"threshold,omitempty"`
	Left      *treeNode `json:"left,omitempty"`
	Right     *treeNode `json:"right,omitempty"`
}

// Forest is an ensemble of bagged regression trees. Each tree is fit on a
// bootstrap sample of the training set and predictions are averaged, which
// keeps the estimator robust to the mixed categorical/numeric features of
// trip vectors.
type Forest struct {
	Trees    []*treeNode `json:"trees"`
	MaxDepth int         `json:"max_depth"`
}

// FitForest fits nTrees bagged regression trees. The context is consulted
// between trees so a long training run can be aborted by the host without
// producing a partial ensemble. Fitting is deterministic for a given rng
// state and input.
func FitForest(ctx context.Context, features [][]float64, targets []float64, nTrees, maxDepth int, rng *rand.Rand) (*Forest, error) {
	if len(features) == 0 || len(features) != len(targets) {
		return nil, fmt.Errorf("fit forest: %d feature rows for %d targets", len(features), len(targets))
	}
	if nTrees < 1 {
		return nil, fmt.Errorf("fit forest: nTrees must be positive, got %d", nTrees)
	}

	f := &Forest{
		Trees:    make([]*treeNode, 0, nTrees),
		MaxDepth: maxDepth,
	}

	indices := make([]int, len(features))
	for i := 0; i < nTrees; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("fit forest: aborted after %d trees: %w", i, err)
		}

		// Bootstrap sample with replacement.
		for j := range indices {
			indices[j] = rng.Intn(len(features))
		}
		f.Trees = append(f.Trees, buildTree(features, targets, indices, 0, maxDepth))
	}

	return f, nil
}

// Predict returns the mean prediction over all trees.
func (f *Forest) Predict(features []float64) float64 {
	preds := make([]float64, len(f.Trees))
	for i, t := range f.Trees {
		preds[i] = t.predict(features)
	}
	return stat.Mean(preds, nil)
}

func (n *treeNode) predict(features []float64) float64 {
	for !n.Leaf {
		if features[n.Feature] < n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Value
}

func buildTree(features [][]float64, targets []float64, indices []int, depth, maxDepth int) *treeNode {
	if depth >= maxDepth || len(indices) < minSamplesSplit {
		return leaf(targets, indices)
	}

	feature, threshold, ok := bestSplit(features, targets, indices)
	if !ok {
		return leaf(targets, indices)
	}

	var left, right []int
	for _, idx := range indices {
		if features[idx][feature] < threshold {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return leaf(targets, indices)
	}

	return &treeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      buildTree(features, targets, left, depth+1, maxDepth),
		Right:     buildTree(features, targets, right, depth+1, maxDepth),
	}
}

func leaf(targets []float64, indices []int) *treeNode {
	sum := 0.0
	for _, idx := range indices {
		sum += targets[idx]
	}
	return &treeNode{Leaf: true, Value: sum / float64(len(indices))}
}

// bestSplit scans every feature and every midpoint between adjacent distinct
// values, maximizing the reduction in sum of squared errors.
func bestSplit(features [][]float64, targets []float64, indices []int) (int, float64, bool) {
	bestFeature := -1
	bestThreshold := 0.0
	bestSSE := nodeSSE(targets, indices)
	found := false

	nFeatures := len(features[indices[0]])
	order := make([]int, len(indices))

	for f := 0; f < nFeatures; f++ {
		copy(order, indices)
		sort.Slice(order, func(a, b int) bool {
			return features[order[a]][f] < features[order[b]][f]
		})

		// Running sums let each candidate split be scored in O(1).
		var leftSum, leftSq float64
		rightSum, rightSq := 0.0, 0.0
		for _, idx := range order {
			rightSum += targets[idx]
			rightSq += targets[idx] * targets[idx]
		}

		for i := 0; i < len(order)-1; i++ {
			y := targets[order[i]]
			leftSum += y
			leftSq += y * y
			rightSum -= y
			rightSq -= y * y

			cur := features[order[i]][f]
			next := features[order[i+1]][f]
			if cur == next {
				continue
			}

			nLeft := float64(i + 1)
			nRight := float64(len(order) - i - 1)
			sse := (leftSq - leftSum*leftSum/nLeft) + (rightSq - rightSum*rightSum/nRight)
			if sse < bestSSE {
				bestSSE = sse
				bestFeature = f
				bestThreshold = (cur + next) / 2
				found = true
			}
		}
	}

	return bestFeature, bestThreshold, found
}

func nodeSSE(targets []float64, indices []int) float64 {
	var sum, sq float64
	for _, idx := range indices {
		sum += targets[idx]
		sq += targets[idx] * targets[idx]
	}
	return sq - sum*sum/float64(len(indices))
}
