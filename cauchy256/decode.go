package cauchy256

import pool "github.com/libp2p/go-buffer-pool"

// Decode reconstructs missing data blocks in place. blocks must have
// length >= k; each present entry carries a payload of blockBytes bytes
// and a Row in [0, k+m). On success, every row in [0, k) is present in
// blocks with its original payload — rows may be installed into any
// empty slot, not necessarily their original position, so callers must
// look blocks up by Row rather than by index.
func (ctx *Context) Decode(k, m int, blocks []Block, blockBytes int) error {
	if err := ctx.checkReady(); err != nil {
		metricsDecodeFailed(ErrUninitializedContext)
		return err
	}
	if err := checkParams(k, m, blockBytes); err != nil {
		metricsDecodeFailed(ErrInvalidParameters)
		return err
	}
	if blocks == nil || len(blocks) < k {
		metricsDecodeFailed(ErrNullData)
		return newError(ErrNullData, "blocks array is nil or shorter than k")
	}

	rowPayload := make(map[int][]byte, len(blocks))
	for _, b := range blocks {
		if b.Present() {
			rowPayload[b.Row] = b.Payload
		}
	}

	missing := make([]bool, k)
	var missingIndices []int
	for i := 0; i < k; i++ {
		if _, ok := rowPayload[i]; !ok {
			missing[i] = true
			missingIndices = append(missingIndices, i)
		}
	}
	missingCount := len(missingIndices)

	if missingCount == 0 {
		logger.Debug("decode: no missing blocks, nothing to do")
		metricsDecodeObserved(k, m, 0)
		return nil
	}

	logger.Debugf("decode: missingCount=%d missingIndices=%v", missingCount, missingIndices)

	var recoveryRows []int
	seenRecovery := make(map[int]bool)
	for _, b := range blocks {
		if !b.Present() || b.Row < k || b.Row >= k+m {
			continue
		}
		r := b.Row - k
		if seenRecovery[r] {
			continue
		}
		seenRecovery[r] = true
		recoveryRows = append(recoveryRows, r)
		if len(recoveryRows) >= missingCount {
			break
		}
	}
	if len(recoveryRows) < missingCount {
		metricsDecodeFailed(ErrInsufficientBlocks)
		return newError(ErrInsufficientBlocks, "not enough recovery blocks to restore missing data")
	}

	matrix := cauchyMatrix(ctx.gf, k, m)

	sub := make([][]byte, missingCount)
	for t := 0; t < missingCount; t++ {
		row := make([]byte, missingCount)
		for u := 0; u < missingCount; u++ {
			row[u] = matrix[recoveryRows[t]][missingIndices[u]]
		}
		sub[t] = row
	}

	subInv, err := invertMatrix(ctx.gf, sub)
	if err != nil {
		logger.Warnf("decode: submatrix inversion failed: %v", err)
		metricsDecodeFailed(ErrMatrixOperation)
		return err
	}

	scratch := blockBytes
	getBuf := func() []byte {
		if ctx.cfg.UsePool {
			return pool.Get(scratch)
		}
		return make([]byte, scratch)
	}
	putBuf := func(buf []byte) {
		if ctx.cfg.UsePool {
			pool.Put(buf)
		}
	}

	for u := 0; u < missingCount; u++ {
		acc := getBuf()
		for i := range acc {
			acc[i] = 0
		}

		for t := 0; t < missingCount; t++ {
			recoveryRow := recoveryRows[t]
			recoveryData, ok := rowPayload[recoveryRow+k]
			if !ok {
				putBuf(acc)
				metricsDecodeFailed(ErrBlockBuffer)
				return newError(ErrBlockBuffer, "recovery block data unexpectedly absent")
			}

			rt := getBuf()
			copy(rt, recoveryData)

			for l := 0; l < k; l++ {
				if missing[l] {
					continue
				}
				coef := matrix[recoveryRow][l]
				if coef == 0 {
					continue
				}
				dataL, ok := rowPayload[l]
				if !ok {
					putBuf(rt)
					putBuf(acc)
					metricsDecodeFailed(ErrBlockBuffer)
					return newError(ErrBlockBuffer, "original block data unexpectedly absent")
				}
				ctx.gf.MulAddMem(rt, coef, dataL)
			}

			coef := subInv[u][t]
			if coef != 0 {
				ctx.gf.MulAddMem(acc, coef, rt)
			}
			putBuf(rt)
		}

		slot := -1
		for i, b := range blocks {
			if !b.Present() {
				slot = i
				break
			}
		}
		if slot == -1 {
			putBuf(acc)
			metricsDecodeFailed(ErrBlockBuffer)
			return newError(ErrBlockBuffer, "no empty slot for reconstructed block")
		}
		blocks[slot] = Block{Row: missingIndices[u], Payload: acc}
	}

	metricsDecodeObserved(k, m, missingCount)
	return nil
}
