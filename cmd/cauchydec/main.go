// cauchydec 使用 cauchyenc 写出的侧车文件重建原始文件
//
// 用法:
//
//	go run cauchydec.go filename.ext
//
// 读取 filename.ext.info 以及尽可能多的 filename.ext.d<i> / filename.ext.r<i>
// 文件，重建缺失的数据分片，并写出 filename.ext.reconstructed，截断到
// originalSize。
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/vawlt/cauchy256/cauchy256"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cauchydec filename.ext\n\n")
	}
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Error: no basename given\n")
		flag.Usage()
		os.Exit(1)
	}

	basename := args[0]
	fs := afero.NewOsFs()

	if err := run(fs, basename); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}

func run(fs afero.Fs, basename string) error {
	originalSize, k, m, blockBytes, err := readInfo(fs, basename+".info")
	if err != nil {
		return err
	}
	fmt.Printf("k=%d m=%d blockSize=%s originalSize=%s\n",
		k, m, humanize.Bytes(uint64(blockBytes)), humanize.Bytes(uint64(originalSize)))

	blocks := make([]cauchy256.Block, 0, k+m)
	for i := 0; i < k; i++ {
		payload, err := afero.ReadFile(fs, fmt.Sprintf("%s.d%d", basename, i))
		if err != nil {
			blocks = append(blocks, cauchy256.Block{})
			continue
		}
		blocks = append(blocks, cauchy256.Block{Row: i, Payload: payload})
	}
	for i := 0; i < m; i++ {
		payload, err := afero.ReadFile(fs, fmt.Sprintf("%s.r%d", basename, i))
		if err != nil {
			continue
		}
		blocks = append(blocks, cauchy256.Block{Row: k + i, Payload: payload})
	}

	ctx := cauchy256.Init()
	if err := ctx.Decode(k, m, blocks, blockBytes); err != nil {
		return errors.Wrap(err, "decoding")
	}

	byRow := make(map[int][]byte, k)
	for _, b := range blocks {
		if b.Present() {
			byRow[b.Row] = b.Payload
		}
	}

	out := make([]byte, 0, k*blockBytes)
	for i := 0; i < k; i++ {
		out = append(out, byRow[i]...)
	}
	if len(out) > originalSize {
		out = out[:originalSize]
	}

	outfn := basename + ".reconstructed"
	fmt.Println("Writing to", outfn)
	if err := afero.WriteFile(fs, outfn, out, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", outfn)
	}
	return nil
}

func readInfo(fs afero.Fs, path string) (originalSize, k, m, blockBytes int, err error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return 0, 0, 0, 0, errors.Wrapf(err, "reading sidecar info file %s", path)
	}
	parts := strings.Split(strings.TrimSpace(string(raw)), ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0, errors.Errorf("malformed info file %s: expected 4 comma-separated fields", path)
	}
	fields := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, 0, errors.Wrapf(err, "malformed info file %s", path)
		}
		fields[i] = v
	}
	return fields[0], fields[1], fields[2], fields[3], nil
}
