package cauchy256

import "github.com/vawlt/cauchy256/gf256"

// cauchyMatrix builds the m x k Cauchy coefficient matrix:
// M[i][j] = inv(add(k+i, j)). The two index sets {0..k-1} and
// {k..k+m-1} are disjoint, so add(k+i, j) is never zero and every
// entry is well-defined. Any square submatrix of a Cauchy matrix is
// non-singular in GF(256), which is what gives the code its MDS
// guarantee.
func cauchyMatrix(gf *gf256.Context, k, m int) [][]byte {
	matrix := make([][]byte, m)
	for i := 0; i < m; i++ {
		row := make([]byte, k)
		x := byte(i + k)
		for j := 0; j < k; j++ {
			y := byte(j)
			row[j] = gf.Inv(gf.Add(x, y))
		}
		matrix[i] = row
	}
	return matrix
}
