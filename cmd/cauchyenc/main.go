// cauchyenc 将单个文件编码为 k 个数据分片和 m 个恢复分片
//
// 要反转此过程，请参见 "cauchydec"
//
// 用法:
//
//	go run cauchyenc.go -data 4 -par 2 -block 4096 filename.ext
//
// 输出:
//   - filename.ext.info        ASCII, 逗号分隔: originalSize,k,m,blockSize
//   - filename.ext.d<i>        第 i 个数据分片, i in [0,k)
//   - filename.ext.r<i>        第 i 个恢复分片, i in [0,m)
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/vawlt/cauchy256/cauchy256"
)

var (
	dataShards  = flag.Int("data", 4, "Number of data blocks, must be below 256.")
	parShards   = flag.Int("par", 2, "Number of recovery blocks.")
	blockSize   = flag.Int("block", 1<<20, "Block size in bytes; must be a multiple of 8.")
	outDir      = flag.String("out", "", "Alternative output directory")
	profilePath = flag.String("profile", "", "Optional cauchy256.toml profile; overrides -data/-par/-block")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cauchyenc [-flags] filename.ext\n\n")
		fmt.Fprintf(os.Stderr, "Valid flags:\n")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Error: no input filename given\n")
		flag.Usage()
		os.Exit(1)
	}
	if *dataShards+*parShards > 256 {
		fmt.Fprintf(os.Stderr, "Error: sum of data and parity blocks cannot exceed 256\n")
		os.Exit(1)
	}

	fname := args[0]
	fs := afero.NewOsFs()

	if *profilePath != "" {
		p, err := loadProfile(fs, *profilePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
			os.Exit(2)
		}
		*dataShards, *parShards, *blockSize = p.K, p.M, p.BlockSize
	}

	if err := run(fs, fname); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}

func run(fs afero.Fs, fname string) error {
	k, m, blockBytes := *dataShards, *parShards, *blockSize

	fmt.Println("Opening", fname)
	content, err := afero.ReadFile(fs, fname)
	if err != nil {
		return errors.Wrapf(err, "reading %s", fname)
	}
	originalSize := len(content)
	fmt.Printf("Read %s\n", humanize.Bytes(uint64(originalSize)))

	data := splitIntoBlocks(content, k, blockBytes)

	ctx := cauchy256.Init()
	recovery := make([]byte, m*blockBytes)
	if err := ctx.Encode(k, m, data, recovery, blockBytes); err != nil {
		return errors.Wrap(err, "encoding")
	}
	fmt.Printf("Encoded %d data + %d recovery blocks of %s each\n",
		k, m, humanize.Bytes(uint64(blockBytes)))

	dir, file := filepath.Split(fname)
	if *outDir != "" {
		dir = *outDir
	}
	basename := filepath.Join(dir, file)

	infoLine := fmt.Sprintf("%d,%d,%d,%d", originalSize, k, m, blockBytes)
	if err := afero.WriteFile(fs, basename+".info", []byte(infoLine), 0o644); err != nil {
		return errors.Wrap(err, "writing sidecar info file")
	}

	for i, block := range data {
		outfn := fmt.Sprintf("%s.d%d", basename, i)
		fmt.Println("Writing to", outfn)
		if err := afero.WriteFile(fs, outfn, block, 0o644); err != nil {
			return errors.Wrapf(err, "writing data block %d", i)
		}
	}
	for i := 0; i < m; i++ {
		outfn := fmt.Sprintf("%s.r%d", basename, i)
		fmt.Println("Writing to", outfn)
		if err := afero.WriteFile(fs, outfn, recovery[i*blockBytes:(i+1)*blockBytes], 0o644); err != nil {
			return errors.Wrapf(err, "writing recovery block %d", i)
		}
	}
	return nil
}

// splitIntoBlocks divides content into k equal blockBytes-sized blocks,
// zero-padding the final block as needed.
func splitIntoBlocks(content []byte, k, blockBytes int) [][]byte {
	data := make([][]byte, k)
	for i := 0; i < k; i++ {
		block := make([]byte, blockBytes)
		start := i * blockBytes
		if start < len(content) {
			end := start + blockBytes
			if end > len(content) {
				end = len(content)
			}
			copy(block, content[start:end])
		}
		data[i] = block
	}
	return data
}
