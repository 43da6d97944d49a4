package cauchy256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pattern(seed, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte((seed*31 + i*17) & 0xff)
	}
	return b
}

// S1: k=2,m=2, drop both data blocks, recover from parity alone.
func TestDecodeFromRecoveryOnly(t *testing.T) {
	ctx := Init()
	k, m, bs := 2, 2, 8
	data := [][]byte{
		{1, 2, 3, 4, 5, 6, 7, 8},
		{9, 10, 11, 12, 13, 14, 15, 16},
	}
	recovery := make([]byte, m*bs)
	require.NoError(t, ctx.Encode(k, m, data, recovery, bs))

	blocks := []Block{
		{},
		{},
		{Row: k, Payload: recovery[0:bs]},
		{Row: k + 1, Payload: recovery[bs : 2*bs]},
	}
	require.NoError(t, ctx.Decode(k, m, blocks, bs))

	got := map[int][]byte{}
	for _, b := range blocks {
		got[b.Row] = b.Payload
	}
	assert.Equal(t, data[0], got[0])
	assert.Equal(t, data[1], got[1])
}

// S2: k=4,m=2, every choice of up to 2 losses among the 6 blocks recovers.
func TestDecodeAllLossCombinations(t *testing.T) {
	ctx := Init()
	k, m, bs := 4, 2, 8
	data := make([][]byte, k)
	for i := range data {
		data[i] = pattern(i+1, bs)
	}
	recovery := make([]byte, m*bs)
	require.NoError(t, ctx.Encode(k, m, data, recovery, bs))

	allPayloads := make([][]byte, k+m)
	copy(allPayloads, data)
	for i := 0; i < m; i++ {
		allPayloads[k+i] = recovery[i*bs : (i+1)*bs]
	}

	n := k + m
	for lost := 0; lost < (1 << n); lost++ {
		var losses []int
		for i := 0; i < n; i++ {
			if lost&(1<<i) != 0 {
				losses = append(losses, i)
			}
		}
		if len(losses) > m {
			continue
		}
		lostSet := map[int]bool{}
		for _, l := range losses {
			lostSet[l] = true
		}

		blocks := make([]Block, 0, n)
		for row := 0; row < n; row++ {
			if lostSet[row] {
				blocks = append(blocks, Block{})
				continue
			}
			blocks = append(blocks, Block{Row: row, Payload: allPayloads[row]})
		}

		require.NoError(t, ctx.Decode(k, m, blocks, bs), "losses=%v", losses)

		recovered := map[int][]byte{}
		for _, b := range blocks {
			if b.Present() {
				recovered[b.Row] = b.Payload
			}
		}
		for i := 0; i < k; i++ {
			assert.Equal(t, data[i], recovered[i], "row %d, losses=%v", i, losses)
		}
	}
}

// S3: decode with no losses leaves inputs unchanged.
func TestDecodeIdempotentWithNoLosses(t *testing.T) {
	ctx := Init()
	k, m, bs := 3, 1, 8
	data := make([][]byte, k)
	for i := range data {
		data[i] = pattern(i+5, bs)
	}
	recovery := make([]byte, m*bs)
	require.NoError(t, ctx.Encode(k, m, data, recovery, bs))

	blocks := []Block{
		{Row: 0, Payload: append([]byte(nil), data[0]...)},
		{Row: 1, Payload: append([]byte(nil), data[1]...)},
		{Row: 2, Payload: append([]byte(nil), data[2]...)},
	}
	require.NoError(t, ctx.Decode(k, m, blocks, bs))
	for i, b := range blocks {
		assert.Equal(t, data[i], b.Payload)
	}
}

// S4: fewer than k present blocks must fail with InsufficientBlocks.
func TestDecodeInsufficientBlocksTooFewTotal(t *testing.T) {
	ctx := Init()
	k, m, bs := 4, 2, 8
	data := make([][]byte, k)
	for i := range data {
		data[i] = pattern(i, bs)
	}
	recovery := make([]byte, m*bs)
	require.NoError(t, ctx.Encode(k, m, data, recovery, bs))

	blocks := []Block{
		{Row: 0, Payload: data[0]},
		{},
		{},
		{},
		{Row: k, Payload: recovery[0:bs]},
		{Row: k + 1, Payload: recovery[bs : 2*bs]},
	}
	err := ctx.Decode(k, m, blocks, bs)
	require.Error(t, err)
	cErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrInsufficientBlocks, cErr.Kind)
}

// S5: exactly k present blocks (missing == m) succeeds.
func TestDecodeExactlyKPresent(t *testing.T) {
	ctx := Init()
	k, m, bs := 5, 3, 8
	data := make([][]byte, k)
	for i := range data {
		data[i] = pattern(i+2, bs)
	}
	recovery := make([]byte, m*bs)
	require.NoError(t, ctx.Encode(k, m, data, recovery, bs))

	blocks := []Block{
		{Row: 0, Payload: data[0]},
		{Row: 1, Payload: data[1]},
		{},
		{},
		{},
		{Row: k, Payload: recovery[0:bs]},
		{Row: k + 1, Payload: recovery[bs : 2*bs]},
		{Row: k + 2, Payload: recovery[2*bs : 3*bs]},
	}
	require.NoError(t, ctx.Decode(k, m, blocks, bs))

	recovered := map[int][]byte{}
	for _, b := range blocks {
		if b.Present() {
			recovered[b.Row] = b.Payload
		}
	}
	for i := 0; i < k; i++ {
		assert.Equal(t, data[i], recovered[i])
	}
}

// S6: k=1,m=1 with an all-zero block; Cauchy coefficient M[0][0] = inv(add(1,0)) = inv(1) = 1.
func TestEncodeSingleBlockCoefficientIsOne(t *testing.T) {
	ctx := Init()
	data := [][]byte{{0, 0, 0, 0, 0, 0, 0, 0}}
	recovery := make([]byte, 8)
	require.NoError(t, ctx.Encode(1, 1, data, recovery, 8))
	assert.Equal(t, data[0], recovery)
}

// S7: negative k/m must fail InvalidParameters.
func TestEncodeNegativeParameters(t *testing.T) {
	ctx := Init()
	err := ctx.Encode(-1, 2, nil, nil, 8)
	cErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidParameters, cErr.Kind)

	err = ctx.Encode(2, -1, nil, nil, 8)
	cErr, ok = err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidParameters, cErr.Kind)
}

// S8: k+m just over 256 must fail; k+m == 256 must succeed.
func TestBoundaryKPlusM(t *testing.T) {
	ctx := Init()

	err := ctx.Encode(250, 7, nil, nil, 8)
	cErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidParameters, cErr.Kind)

	k, m, bs := 250, 6, 8
	data := make([][]byte, k)
	for i := range data {
		data[i] = pattern(i, bs)
	}
	recovery := make([]byte, m*bs)
	assert.NoError(t, ctx.Encode(k, m, data, recovery, bs))
}

// S9: more data blocks missing than recovery blocks present must fail.
func TestDecodeMoreMissingThanRecoveryAvailable(t *testing.T) {
	ctx := Init()
	k, m, bs := 4, 1, 8
	data := make([][]byte, k)
	for i := range data {
		data[i] = pattern(i, bs)
	}
	recovery := make([]byte, m*bs)
	require.NoError(t, ctx.Encode(k, m, data, recovery, bs))

	blocks := []Block{
		{Row: 0, Payload: data[0]},
		{},
		{},
		{},
		{Row: k, Payload: recovery[0:bs]},
	}
	err := ctx.Decode(k, m, blocks, bs)
	require.Error(t, err)
	cErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrInsufficientBlocks, cErr.Kind)
}

// block_bytes not divisible by 8 must fail with InvalidParameters.
func TestEncodeBlockBytesNotMultipleOfEight(t *testing.T) {
	ctx := Init()
	data := [][]byte{make([]byte, 9), make([]byte, 9)}
	recovery := make([]byte, 9)
	err := ctx.Encode(2, 1, data, recovery, 9)
	cErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidParameters, cErr.Kind)
}

// Decode before Init must fail with UninitializedContext.
func TestDecodeUninitializedContext(t *testing.T) {
	var ctx *Context
	err := ctx.Decode(2, 1, make([]Block, 2), 8)
	cErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrUninitializedContext, cErr.Kind)
}

// A singular submatrix surfaces as MatrixOperation; exercised directly
// against the inverter since a well-formed Cauchy matrix never produces
// one during Decode.
func TestInvertMatrixSingular(t *testing.T) {
	ctx := Init()
	singular := [][]byte{
		{1, 1},
		{1, 1},
	}
	_, err := invertMatrix(ctx.gf, singular)
	require.Error(t, err)
	cErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrMatrixOperation, cErr.Kind)
}

func TestInvertMatrixRoundTrip(t *testing.T) {
	ctx := Init()
	m := [][]byte{
		{2, 3},
		{1, 4},
	}
	inv, err := invertMatrix(ctx.gf, m)
	require.NoError(t, err)

	// m * inv must be the identity.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var sum byte
			for l := 0; l < 2; l++ {
				sum ^= ctx.gf.Mul(m[i][l], inv[l][j])
			}
			if i == j {
				assert.Equal(t, byte(1), sum)
			} else {
				assert.Equal(t, byte(0), sum)
			}
		}
	}
}
