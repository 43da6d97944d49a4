// Package gf256 implements byte-level arithmetic over the finite field
// GF(2^8): table-driven add/mul/div/inv built from a chosen irreducible
// polynomial. The tables are derived once, deterministically, and are
// immutable thereafter — any number of goroutines may call the arithmetic
// methods concurrently on a shared *Context.
package gf256

import (
	logging "github.com/dep2p/log"
)

var logger = logging.Logger("gf256")

func init() {
	logging.SetupLogging(logging.Config{
		Format: logging.JSONOutput,
		Stderr: true,
		Level:  logging.LevelInfo,
	})
}

// SetLog redirects gf256's logger output to a file, or back to stderr.
func SetLog(filename string, stderr ...bool) {
	useStderr := false
	if len(stderr) > 0 {
		useStderr = stderr[0]
	}
	logging.SetupLogging(logging.Config{
		Format: logging.JSONOutput,
		Stderr: useStderr,
		File:   filename,
		Level:  logging.LevelInfo,
	})
}

// GenPoly is the fixed, ordered list of candidate generator polynomials
// for GF(2^8). The polynomial actually in force is
// (GenPoly[Config.PolynomialIndex] << 1) | 1.
var GenPoly = [16]int{
	0x8e, 0x95, 0x96, 0xa6,
	0xaf, 0xb1, 0xb2, 0xb4,
	0xb8, 0xc3, 0xc6, 0xd4,
	0xe1, 0xe7, 0xf3, 0xfa,
}

// DefaultPolynomialIndex selects GenPoly[3] = 0xa6, giving polynomial 0x14D.
const DefaultPolynomialIndex = 3

// logUndefined is the log-table sentinel meaning "log(0) is undefined".
const logUndefined = 512

// Config tunes the field construction. The zero Config selects GenPoly[0],
// not the default polynomial; use DefaultConfig for the default.
type Config struct {
	// PolynomialIndex selects the irreducible polynomial from GenPoly.
	// Values outside [0, 16) fall back to DefaultPolynomialIndex.
	PolynomialIndex int
}

// DefaultConfig returns the tunables used by the package-level Init.
func DefaultConfig() Config {
	return Config{PolynomialIndex: DefaultPolynomialIndex}
}

// Context owns the exp/log/mul/div/inv tables for one choice of
// irreducible polynomial. It is safe for concurrent read-only use once
// NewContext has returned.
type Context struct {
	polynomial int

	expTable [4*255 + 1]byte
	logTable [256]int

	mulTable [256][256]byte
	divTable [256][256]byte
	invTable [256]byte
}

// NewContext builds a field context from cfg. Construction is pure and
// deterministic: the same cfg always yields byte-identical tables.
func NewContext(cfg Config) *Context {
	ctx := &Context{}
	ctx.polyInit(cfg.PolynomialIndex)
	logger.Infof("polynomial initialized: 0x%x", ctx.polynomial)
	ctx.expLogInit()
	logger.Info("exp/log tables initialized")
	ctx.mulDivInit()
	logger.Info("mul/div tables initialized")
	ctx.invInit()
	logger.Info("inverse table initialized")
	return ctx
}

// Init builds a context using DefaultConfig, for callers that don't
// need a custom Config.
func Init() *Context {
	return NewContext(DefaultConfig())
}

func (c *Context) polyInit(idx int) {
	if idx < 0 || idx >= len(GenPoly) {
		idx = DefaultPolynomialIndex
	}
	c.polynomial = (GenPoly[idx] << 1) | 1
}

func (c *Context) expLogInit() {
	poly := c.polynomial

	c.logTable[0] = logUndefined
	c.expTable[0] = 1

	for j := 1; j < 255; j++ {
		next := int(c.expTable[j-1]) << 1
		if next >= 256 {
			next ^= poly
		}
		c.expTable[j] = byte(next)
		c.logTable[c.expTable[j]] = j
	}

	c.expTable[255] = c.expTable[0]
	c.logTable[c.expTable[255]] = 255

	for j := 256; j < 2*255; j++ {
		c.expTable[j] = c.expTable[j%255]
	}
	c.expTable[2*255] = 1
	for j := 2*255 + 1; j < 4*255; j++ {
		c.expTable[j] = 0
	}
}

func (c *Context) mulDivInit() {
	for x := 0; x < 256; x++ {
		c.mulTable[0][x] = 0
		c.divTable[0][x] = 0
	}

	for y := 1; y < 256; y++ {
		logY := c.logTable[y]
		logYn := 255 - logY

		c.mulTable[y][0] = 0
		c.divTable[y][0] = 0

		for x := 1; x < 256; x++ {
			logX := c.logTable[x]
			c.mulTable[y][x] = c.expTable[(logX+logY)%255]
			c.divTable[y][x] = c.expTable[(logX+logYn)%255]
		}
	}
}

func (c *Context) invInit() {
	for x := 0; x < 256; x++ {
		c.invTable[x] = c.divTable[x][1]
	}
}

// Add computes x + y in GF(256), which is bitwise XOR.
func (c *Context) Add(x, y byte) byte { return x ^ y }

// Mul computes x * y in GF(256). Put the constant multiplier in y for
// better cache locality when multiplying a buffer by a fixed coefficient.
func (c *Context) Mul(x, y byte) byte { return c.mulTable[y][x] }

// Div computes x / y in GF(256). The caller must ensure y != 0; the
// zero row of the division table is all zero and does not signal an
// error.
func (c *Context) Div(x, y byte) byte { return c.divTable[y][x] }

// Inv computes 1/x in GF(256). Defined for x != 0; Inv(0) returns 0,
// which is not a valid multiplicative inverse and must not be consumed.
func (c *Context) Inv(x byte) byte { return c.invTable[x] }

// Polynomial returns the irreducible polynomial in force, encoded as
// (GenPoly[idx] << 1) | 1.
func (c *Context) Polynomial() int { return c.polynomial }

// AddMem performs the bulk operation x[] ^= y[].
func (c *Context) AddMem(x, y []byte) {
	for i := range x {
		x[i] ^= y[i]
	}
}

// MulMem performs the bulk operation z[] = x[] * y, handling the y==0
// and y==1 special cases without a table lookup.
func (c *Context) MulMem(z, x []byte, y byte) {
	if y == 0 {
		for i := range z {
			z[i] = 0
		}
		return
	}
	if y == 1 {
		copy(z, x)
		return
	}
	row := &c.mulTable[y]
	for i, v := range x {
		z[i] = row[v]
	}
}

// MulAddMem performs the bulk operation z[] ^= x[] * y.
func (c *Context) MulAddMem(z []byte, y byte, x []byte) {
	if y == 0 {
		return
	}
	if y == 1 {
		c.AddMem(z, x)
		return
	}
	row := &c.mulTable[y]
	for i, v := range x {
		z[i] ^= row[v]
	}
}
