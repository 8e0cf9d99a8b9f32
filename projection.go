package divisive

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// principalDirectionEpsilon guards against splitting clusters whose points
// are (numerically) identical: a leading singular value at or below it means
// there is no principal direction to project on.
const principalDirectionEpsilon = 1e-12

// principalProjection projects the given samples of a flat row-major dataset
// onto the first principal direction of their centered sub-matrix, via thin
// SVD. The result is aligned index-for-index with samples.
//
// ok is false when the sub-matrix is degenerate: fewer than two samples, a
// failed factorization, or no variance along any direction.
func principalProjection(data []float64, dims int, samples []int) (proj []float64, ok bool) {
	r := len(samples)
	if r < 2 || dims < 1 {
		return nil, false
	}

	// Center the sample sub-matrix column by column.
	centered := mat.NewDense(r, dims, nil)
	col := make([]float64, r)
	for j := 0; j < dims; j++ {
		for i, s := range samples {
			col[i] = data[s*dims+j]
		}
		m := stat.Mean(col, nil)
		for i := range col {
			centered.Set(i, j, col[i]-m)
		}
	}

	var svd mat.SVD
	if !svd.Factorize(centered, mat.SVDThin) {
		return nil, false
	}
	if svd.Values(nil)[0] <= principalDirectionEpsilon {
		return nil, false
	}

	var v mat.Dense
	svd.VTo(&v)
	dir := mat.Col(nil, 0, &v)

	proj = make([]float64, r)
	for i := 0; i < r; i++ {
		proj[i] = floats.Dot(centered.RawRowView(i), dir)
	}
	return proj, true
}

// scatter is the total scatter of a projection: the summed squared deviation
// from its mean. Used as the split criterion by the variance-seeking variants.
func scatter(proj []float64) float64 {
	m := stat.Mean(proj, nil)
	var sum float64
	for _, x := range proj {
		d := x - m
		sum += d * d
	}
	return sum
}

// fptr returns a pointer to a copy of v, for optional node fields.
func fptr(v float64) *float64 { return &v }
