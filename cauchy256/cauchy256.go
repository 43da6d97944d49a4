// Package cauchy256 implements a pure-software Cauchy-Reed-Solomon
// erasure coder over GF(2^8). Given k equal-sized data blocks it produces
// m equal-sized recovery blocks such that any k of the resulting k+m
// blocks suffice to reconstruct the original data.
package cauchy256

import "github.com/vawlt/cauchy256/gf256"

// Context owns the initialized GF(256) field tables and the Config used
// to build them. It is immutable once constructed: any number of
// goroutines may call Encode/Decode concurrently on the same Context
// provided each call owns its inputs/outputs exclusively.
type Context struct {
	gf  *gf256.Context
	cfg Config
}

// New builds a Context from cfg. Equivalent to calling gf256.NewContext
// and wrapping it; fails only if the underlying field construction
// would, which in practice never happens for in-range cfg values.
func New(cfg Config) *Context {
	return &Context{
		gf:  gf256.NewContext(cfg.gfConfig()),
		cfg: cfg,
	}
}

// Init builds a Context using the package's default tuning, for callers
// that don't need a custom Config.
func Init() *Context {
	return New(DefaultConfig())
}

func (ctx *Context) checkReady() error {
	if ctx == nil || ctx.gf == nil {
		return newError(ErrUninitializedContext, "GF(256) context not initialized; call Init() first")
	}
	return nil
}

func checkParams(k, m, blockBytes int) error {
	if k <= 0 {
		return newError(ErrInvalidParameters, "k must be positive")
	}
	if m <= 0 {
		return newError(ErrInvalidParameters, "m must be positive")
	}
	if k+m > 256 {
		return newError(ErrInvalidParameters, "k+m must not exceed 256")
	}
	if blockBytes <= 0 {
		return newError(ErrInvalidParameters, "blockBytes must be positive")
	}
	if blockBytes%8 != 0 {
		return newError(ErrInvalidParameters, "blockBytes must be a multiple of 8")
	}
	return nil
}
