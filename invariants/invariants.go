package invariants

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/classify"
	"github.com/arbelos/burnside/closure"
	"github.com/arbelos/burnside/group"
)

// ErrBadSampleSize is returned when k is outside [1, |G|].
var ErrBadSampleSize = errors.New("invariants: sample size out of range")

// CommutingProbability returns the probability that two uniformly
// random elements of g commute: #conjugacy classes / |G|. Equals 1
// exactly for abelian groups and is at most 5/8 otherwise.
func CommutingProbability(g *group.Group, opts ...classify.Option) (float64, error) {
	classes, err := classify.Classes(g, opts...)
	if err != nil {
		return 0, err
	}
	return float64(len(classes)) / float64(g.Order()), nil
}

// EqualOrderProbability returns the probability that two elements drawn
// uniformly with replacement (unordered) have the same element order.
func EqualOrderProbability(g *group.Group) (float64, error) {
	if !g.Materialized() {
		return 0, fmt.Errorf("%w: equal-order probability", group.ErrRequiresMaterialized)
	}
	n := g.Order()
	orders := make([]int, n)
	for i := 0; i < n; i++ {
		orders[i] = algebra.Order(g.Element(i))
	}
	equal := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if orders[i] == orders[j] {
				equal++
			}
		}
	}
	return float64(equal) / binomial(n+1, 2), nil
}

// ExpectationNumber returns the expected order of the subgroup
// generated by k distinct uniformly chosen elements of g. With scaled
// set, the expectation is divided by |G|, giving a value in (0, 1].
func ExpectationNumber(ctx context.Context, g *group.Group, k int, scaled bool) (float64, error) {
	sum, err := subsetSum(ctx, g, k, func(subset []algebra.Element) (int, error) {
		gens, err := algebra.NewGeneratingSet(subset...)
		if err != nil {
			return 0, err
		}
		h, err := closure.Close(gens, closure.WithContext(ctx), closure.WithMaxOrder(g.Order()))
		if err != nil {
			return 0, err
		}
		return h.Order(), nil
	})
	if err != nil {
		return 0, err
	}
	avg := sum / binomial(g.Order(), k)
	if scaled {
		avg /= float64(g.Order())
	}
	return avg, nil
}

// AverageCentralizerSize returns the expected size of the centralizer
// of k distinct uniformly chosen elements. The centralizer of a subset
// equals the centralizer of the subgroup it generates, so no closure is
// needed. With scaled set, the average is divided by |G|.
func AverageCentralizerSize(ctx context.Context, g *group.Group, k int, scaled bool) (float64, error) {
	sum, err := subsetSum(ctx, g, k, func(subset []algebra.Element) (int, error) {
		c, err := classify.Centralizer(g, subset)
		if err != nil {
			return 0, err
		}
		return c.Order(), nil
	})
	if err != nil {
		return 0, err
	}
	avg := sum / binomial(g.Order(), k)
	if scaled {
		avg /= float64(g.Order())
	}
	return avg, nil
}

// AverageNormalizerSize returns the expected size of the normalizer of
// the subgroup generated by k distinct uniformly chosen elements. Unlike
// the centralizer, the normalizer of a subset and of the subgroup it
// generates differ, so each subset is closed first. With scaled set, the
// average is divided by |G|.
func AverageNormalizerSize(ctx context.Context, g *group.Group, k int, scaled bool) (float64, error) {
	sum, err := subsetSum(ctx, g, k, func(subset []algebra.Element) (int, error) {
		gens, err := algebra.NewGeneratingSet(subset...)
		if err != nil {
			return 0, err
		}
		h, err := closure.Close(gens, closure.WithContext(ctx), closure.WithMaxOrder(g.Order()))
		if err != nil {
			return 0, err
		}
		nm, err := classify.Normalizer(g, h)
		if err != nil {
			return 0, err
		}
		return nm.Order(), nil
	})
	if err != nil {
		return 0, err
	}
	avg := sum / binomial(g.Order(), k)
	if scaled {
		avg /= float64(g.Order())
	}
	return avg, nil
}

// subsetSum enumerates all k-subsets of g's elements in lexicographic
// index order and sums fn over them, checking ctx between subsets.
func subsetSum(ctx context.Context, g *group.Group, k int, fn func([]algebra.Element) (int, error)) (float64, error) {
	if !g.Materialized() {
		return 0, fmt.Errorf("%w: subset enumeration", group.ErrRequiresMaterialized)
	}
	n := g.Order()
	if k < 1 || k > n {
		return 0, fmt.Errorf("%w: k=%d, |G|=%d", ErrBadSampleSize, k, n)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	subset := make([]algebra.Element, k)
	sum := 0.0
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		for i, v := range idx {
			subset[i] = g.Element(v)
		}
		v, err := fn(subset)
		if err != nil {
			return 0, err
		}
		sum += float64(v)

		if !nextSubset(idx, n) {
			return sum, nil
		}
	}
}

// nextSubset advances idx to the next k-subset of [0, n) in
// lexicographic order, reporting false after the last one.
func nextSubset(idx []int, n int) bool {
	k := len(idx)
	for i := k - 1; i >= 0; i-- {
		if idx[i] < n-k+i {
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
			return true
		}
	}
	return false
}

// binomial returns C(n, k) as a float64.
func binomial(n, k int) float64 {
	b := new(big.Int).Binomial(int64(n), int64(k))
	f, _ := new(big.Float).SetInt(b).Float64()
	return f
}
