package cauchy256

import "github.com/vawlt/cauchy256/gf256"

// Config collects the tunables that sit outside the per-call k/m/
// blockBytes contract of Encode and Decode.
type Config struct {
	// PolynomialIndex selects the GF(256) generator polynomial; see
	// gf256.GenPoly. Default gf256.DefaultPolynomialIndex.
	PolynomialIndex int
	// UsePool routes Decode's scratch/accumulator allocations through a
	// pooled allocator instead of plain make([]byte, ...).
	UsePool bool
}

// DefaultConfig sets a recommended option list: the default GF(256)
// polynomial and pooled scratch buffers enabled.
func DefaultConfig() Config {
	return Config{
		PolynomialIndex: gf256.DefaultPolynomialIndex,
		UsePool:         true,
	}
}

func (c Config) gfConfig() gf256.Config {
	return gf256.Config{PolynomialIndex: c.PolynomialIndex}
}
