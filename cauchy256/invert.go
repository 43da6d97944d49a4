package cauchy256

import "github.com/vawlt/cauchy256/gf256"

// invertMatrix inverts the n x n byte matrix in GF(256) via Gauss-Jordan
// elimination on an augmented n x 2n matrix [A|I]. Returns the inverse,
// or ErrMatrixOperation if the matrix is singular.
//
// Pivot selection only needs to find *a* non-zero entry; which one is
// algebraically irrelevant in GF(256). This picks the first non-zero
// entry at or below the diagonal, which is deterministic and simpler
// than the original's "largest signed byte" heuristic without changing
// any observable result.
func invertMatrix(gf *gf256.Context, matrix [][]byte) ([][]byte, error) {
	n := len(matrix)

	aug := make([][]byte, n)
	for i := 0; i < n; i++ {
		row := make([]byte, 2*n)
		copy(row, matrix[i])
		row[n+i] = 1
		aug[i] = row
	}

	for i := 0; i < n; i++ {
		pivot := -1
		for p := i; p < n; p++ {
			if aug[p][i] != 0 {
				pivot = p
				break
			}
		}
		if pivot == -1 {
			return nil, newError(ErrMatrixOperation, "matrix is singular")
		}
		aug[i], aug[pivot] = aug[pivot], aug[i]

		inv := gf.Inv(aug[i][i])
		row := aug[i]
		for j := range row {
			row[j] = gf.Mul(row[j], inv)
		}

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			f := aug[j][i]
			if f == 0 {
				continue
			}
			other := aug[j]
			for c := range other {
				other[c] ^= gf.Mul(row[c], f)
			}
		}
	}

	inverse := make([][]byte, n)
	for i := 0; i < n; i++ {
		inverse[i] = append([]byte(nil), aug[i][n:]...)
	}
	return inverse, nil
}
