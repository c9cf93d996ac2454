// Package config holds the settings of a translation run.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"tlog.app/go/errors"
)

type (
	Config struct {
		Input string `yaml:"input"`

		Output    Output    `yaml:"output"`
		Analyzer  Analyzer  `yaml:"analyzer"`
		Generator Generator `yaml:"generator"`
	}

	// Output names the dump files, relative to Dir.
	Output struct {
		Dir      string `yaml:"dir"`
		Tokens   string `yaml:"tokens"`
		Symbols  string `yaml:"symbols"`
		Parse    string `yaml:"parse"`
		Assembly string `yaml:"assembly"`
	}

	Analyzer struct {
		// Rollback discards every symbol table write of a line that fails analysis.
		Rollback bool `yaml:"rollback"`

		MaxListSize int `yaml:"max_list_size"`
	}

	Generator struct {
		ElementSize int    `yaml:"element_size"`
		PrintTarget string `yaml:"print_target"`
	}
)

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Input: "src/input/input.txt",
		Output: Output{
			Dir:      "src/output",
			Tokens:   "laika.tok",
			Symbols:  "laika.csv",
			Parse:    "laika.parse",
			Assembly: "laika.asm",
		},
		Analyzer: Analyzer{
			MaxListSize: 1 << 16,
		},
		Generator: Generator{
			ElementSize: 4,
			PrintTarget: "print",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	err = yaml.Unmarshal(data, c)
	if err != nil {
		return nil, errors.Wrap(err, "parse config %v", path)
	}

	err = c.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "config %v", path)
	}

	return c, nil
}

func (c *Config) Validate() error {
	files := []struct {
		key, val string
	}{
		{"output.tokens", c.Output.Tokens},
		{"output.symbols", c.Output.Symbols},
		{"output.parse", c.Output.Parse},
		{"output.assembly", c.Output.Assembly},
	}

	for _, f := range files {
		if f.val == "" {
			return errors.New("%v: empty file name", f.key)
		}
	}

	if c.Analyzer.MaxListSize <= 0 {
		return errors.New("analyzer.max_list_size: must be positive, got %d", c.Analyzer.MaxListSize)
	}

	if c.Generator.ElementSize <= 0 {
		return errors.New("generator.element_size: must be positive, got %d", c.Generator.ElementSize)
	}

	if c.Generator.PrintTarget == "" {
		return errors.New("generator.print_target: empty")
	}

	return nil
}

func (o Output) TokensPath() string   { return filepath.Join(o.Dir, o.Tokens) }
func (o Output) SymbolsPath() string  { return filepath.Join(o.Dir, o.Symbols) }
func (o Output) ParsePath() string    { return filepath.Join(o.Dir, o.Parse) }
func (o Output) AssemblyPath() string { return filepath.Join(o.Dir, o.Assembly) }

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "marshal config")
	}

	return data, nil
}
