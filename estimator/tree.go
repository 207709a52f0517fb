// estimator/tree.go
package estimator

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Node is one node of a regression tree. Leaves carry the mean target of
// the training rows that reached them; internal nodes split on
// X[Feature] <= Threshold. Fields are exported for gob.
type Node struct {
	Leaf      bool
	Value     float64
	Feature   int
	Threshold float64
	Left      *Node
	Right     *Node
}

// Tree is a CART regression tree grown by variance reduction.
// Classification targets are handled upstream as 0/1 regression targets,
// so a leaf mean is directly a class proportion.
type Tree struct {
	Root *Node
}

// growTree fits a tree on the rows of X indexed by idx. mtry features are
// sampled (without replacement) from rng at every split.
func growTree(X *mat.Dense, y []float64, idx []int, maxDepth, minLeaf, mtry int, rng *rand.Rand) *Tree {
	return &Tree{Root: grow(X, y, idx, 0, maxDepth, minLeaf, mtry, rng)}
}

func grow(X *mat.Dense, y []float64, idx []int, depth, maxDepth, minLeaf, mtry int, rng *rand.Rand) *Node {
	if depth >= maxDepth || len(idx) < 2*minLeaf || pure(y, idx) {
		return &Node{Leaf: true, Value: meanAt(y, idx)}
	}

	feat, thr, ok := bestSplit(X, y, idx, minLeaf, mtry, rng)
	if !ok {
		return &Node{Leaf: true, Value: meanAt(y, idx)}
	}

	var left, right []int
	for _, i := range idx {
		if X.At(i, feat) <= thr {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < minLeaf || len(right) < minLeaf {
		return &Node{Leaf: true, Value: meanAt(y, idx)}
	}

	return &Node{
		Feature:   feat,
		Threshold: thr,
		Left:      grow(X, y, left, depth+1, maxDepth, minLeaf, mtry, rng),
		Right:     grow(X, y, right, depth+1, maxDepth, minLeaf, mtry, rng),
	}
}

// bestSplit scans mtry random features for the threshold minimizing the
// summed squared error of the two children. For each feature it sorts the
// rows once and sweeps split points with running sums, so a feature costs
// O(n log n).
func bestSplit(X *mat.Dense, y []float64, idx []int, minLeaf, mtry int, rng *rand.Rand) (feature int, threshold float64, ok bool) {
	_, nFeat := X.Dims()
	if mtry <= 0 || mtry > nFeat {
		mtry = nFeat
	}

	feats := rng.Perm(nFeat)[:mtry]
	sort.Ints(feats) // stable candidate order for a given permutation

	bestSSE := sseAt(y, idx)
	if bestSSE == 0 {
		return 0, 0, false
	}
	found := false

	order := make([]int, len(idx))
	for _, f := range feats {
		copy(order, idx)
		sort.SliceStable(order, func(a, b int) bool {
			return X.At(order[a], f) < X.At(order[b], f)
		})

		var leftSum, leftSq float64
		totSum, totSq := sums(y, idx)
		n := float64(len(idx))

		for k := 0; k < len(order)-1; k++ {
			v := y[order[k]]
			leftSum += v
			leftSq += v * v

			cur, next := X.At(order[k], f), X.At(order[k+1], f)
			if cur == next {
				continue // no boundary between equal values
			}
			nl := float64(k + 1)
			nr := n - nl
			if int(nl) < minLeaf || int(nr) < minLeaf {
				continue
			}

			rightSum := totSum - leftSum
			rightSq := totSq - leftSq
			sse := (leftSq - leftSum*leftSum/nl) + (rightSq - rightSum*rightSum/nr)
			if sse < bestSSE {
				bestSSE = sse
				feature = f
				threshold = (cur + next) / 2
				found = true
			}
		}
	}
	return feature, threshold, found
}

// predictRow walks the tree for one encoded feature row.
func (t *Tree) predictRow(row []float64) float64 {
	n := t.Root
	for !n.Leaf {
		if row[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Value
}

func pure(y []float64, idx []int) bool {
	for _, i := range idx[1:] {
		if y[i] != y[idx[0]] {
			return false
		}
	}
	return true
}

func meanAt(y []float64, idx []int) float64 {
	sum := 0.0
	for _, i := range idx {
		sum += y[i]
	}
	return sum / float64(len(idx))
}

func sums(y []float64, idx []int) (sum, sq float64) {
	for _, i := range idx {
		sum += y[i]
		sq += y[i] * y[i]
	}
	return sum, sq
}

func sseAt(y []float64, idx []int) float64 {
	sum, sq := sums(y, idx)
	n := float64(len(idx))
	return sq - sum*sum/n
}
