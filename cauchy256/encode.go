package cauchy256

// Encode computes m recovery blocks from k equal-sized data blocks.
//
// data must hold exactly k slices, each blockBytes long. recovery must be
// a single contiguous buffer of m*blockBytes bytes; on success it holds
// the m recovery blocks concatenated in row order.
func (ctx *Context) Encode(k, m int, data [][]byte, recovery []byte, blockBytes int) error {
	if err := ctx.checkReady(); err != nil {
		return err
	}
	if err := checkParams(k, m, blockBytes); err != nil {
		return err
	}
	if data == nil || recovery == nil {
		return newError(ErrNullData, "data or recovery buffer is nil")
	}
	if len(data) != k {
		return newError(ErrNullData, "data must contain exactly k blocks")
	}
	for _, d := range data {
		if len(d) != blockBytes {
			return newError(ErrNullData, "data block has wrong length")
		}
	}
	if len(recovery) != m*blockBytes {
		return newError(ErrNullData, "recovery buffer has wrong length")
	}

	matrix := cauchyMatrix(ctx.gf, k, m)

	for i := range recovery {
		recovery[i] = 0
	}

	for i := 0; i < m; i++ {
		out := recovery[i*blockBytes : (i+1)*blockBytes]
		row := matrix[i]
		for j := 0; j < k; j++ {
			coef := row[j]
			if coef == 0 {
				continue
			}
			ctx.gf.MulAddMem(out, coef, data[j])
		}
	}

	metricsEncodeObserved(k, m)
	return nil
}
