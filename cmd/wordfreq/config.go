package main

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/wordfreq"
	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML config file. Every field is optional.
//
//	url: https://en.wikipedia.org/wiki/Microsoft
//	section: History
//	top_n: 20
//	strategy: text
//	parser: html
//	user_agent: wordfreq/1.0
//	ignore: [the, a, and, of]
type FileConfig struct {
	URL       string   `yaml:"url"`
	Section   string   `yaml:"section"`
	TopN      int      `yaml:"top_n"`
	Strategy  string   `yaml:"strategy"`
	Parser    string   `yaml:"parser"`
	UserAgent string   `yaml:"user_agent"`
	Ignore    []string `yaml:"ignore"`
}

// LoadFileConfig reads and decodes the config file at path.
// Unknown keys are rejected.
func LoadFileConfig(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, wordfreq.Errorf(wordfreq.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg FileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "invalid config file %s: %v", path, err)
	}
	return &cfg, nil
}
