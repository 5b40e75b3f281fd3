package edt

import "math"

// Transform1D — lower envelope of parabolas (Felzenszwalb–Huttenlocher)
//
// Description:
//
//	For costs f[0..n) returns d with d[q] = min over p of (q-p)² + f[p].
//	Each sample roots an upward parabola; only the parabolas on the lower
//	envelope can win, and they appear in increasing order of position, so
//	one monotone stack finds them all.
//
// Algorithm Outline:
//  1. Stack v holds envelope positions, z[i] the query coordinate where
//     v[i] starts to dominate. Start with v[0]=0, z[0]=-∞, z[1]=+∞.
//  2. For q = 1..n-1:
//     s = ((f[q]+q²) - (f[v]+v²)) / (2q - 2v)   with v the stack top
//     while s <= z[top]: pop and recompute s
//     push q with z[top]=s, z[top+1]=+∞
//  3. For q = 0..n-1: advance the cursor k while z[k+1] <= q, then
//     d[q] = (q - v[k])² + f[v[k]].
//
// Complexity:
//
//	Time   = O(n)   (every position is pushed and popped at most once)
//	Memory = O(n)
//
// Preconditions:
//   - f holds finite values or a finite sentinel; NaN or ±Inf entries give
//     undefined results (not validated).
func Transform1D(f []float64) []float64 {
	d := make([]float64, len(f))
	if len(f) == 0 {
		return d
	}
	env := newEnvelope(len(f))
	env.build(f)
	env.sample(f, d)

	return d
}

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// envelope is a bounded stack of parabola roots and their validity boundaries.
// Capacity is fixed at construction; one envelope serves every line of a pass.
type envelope struct {
	v   []int     // positions on the envelope, v[0..top]
	z   []float64 // z[i] = first coordinate where v[i] is lowest, z[0..top+1]
	top int       // index of the current stack top
}

// newEnvelope allocates an envelope for lines of up to n samples.
func newEnvelope(n int) *envelope {
	return &envelope{
		v: make([]int, n),
		z: make([]float64, n+1),
	}
}

// build computes the lower envelope for f. len(f) must be in [1, len(e.v)].
func (e *envelope) build(f []float64) {
	e.top = 0
	e.v[0] = 0
	e.z[0] = negInf
	e.z[1] = posInf
	for q := 1; q < len(f); q++ {
		s := e.intersect(f, q)
		for s <= e.z[e.top] {
			e.top--
			s = e.intersect(f, q)
		}
		e.top++
		e.v[e.top] = q
		e.z[e.top] = s
		e.z[e.top+1] = posInf
	}
}

// intersect returns the coordinate where the parabola rooted at q meets the
// one rooted at the stack top. The top is always < q, so the denominator is
// never zero.
func (e *envelope) intersect(f []float64, q int) float64 {
	p := e.v[e.top]

	return ((f[q] + float64(q*q)) - (f[p] + float64(p*p))) / float64(2*q-2*p)
}

// sample evaluates the envelope at every integer position into d.
// d must not alias f.
func (e *envelope) sample(f, d []float64) {
	k := 0
	for q := range f {
		for e.z[k+1] <= float64(q) {
			k++
		}
		p := e.v[k]
		dq := float64(q - p)
		d[q] = dq*dq + f[p]
	}
}
