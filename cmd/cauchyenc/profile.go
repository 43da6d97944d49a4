package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// profile is a named (k, m, blockSize) triple loaded from a
// cauchy256.toml file, so repeat invocations don't need to repeat the
// same three flags on every call.
type profile struct {
	K         int `toml:"k"`
	M         int `toml:"m"`
	BlockSize int `toml:"blockSize"`
}

func loadProfile(fs afero.Fs, path string) (*profile, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading profile %s", path)
	}
	p := new(profile)
	if _, err := toml.Decode(string(raw), p); err != nil {
		return nil, errors.Wrapf(err, "parsing profile %s", path)
	}
	return p, nil
}
