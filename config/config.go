// Package config loads the YAML settings shared by the command line tool and
// the HTTP server.
package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v3"

	"github.com/JustAnOrangeCat/TinyMathParser/compiler"
	"github.com/JustAnOrangeCat/TinyMathParser/eval"
	"github.com/JustAnOrangeCat/TinyMathParser/token"
)

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 8080

	// MaxPrecision bounds the decimals a result is printed with.
	MaxPrecision = 100
)

// Operator adds a symbol to the default operator table or overrides one.
type Operator struct {
	Symbol     string `yaml:"symbol"`
	Precedence int    `yaml:"precedence"`
	Arity      int    `yaml:"arity"`
}

type Server struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type Config struct {
	// Precision is the number of decimals results are printed with; -1
	// prints the shortest exact form.
	Precision int                `yaml:"precision"`
	Operators []Operator         `yaml:"operators"`
	Variables map[string]float64 `yaml:"variables"`
	Server    Server             `yaml:"server"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Precision: eval.DefaultPrecision,
		Variables: map[string]float64{},
		Server: Server{
			Host: DefaultHost,
			Port: DefaultPort,
		},
	}
}

// Load reads name from fs on top of Default. Keys that do not exist in
// Config are rejected. An empty file yields the defaults.
func Load(fs billy.Filesystem, name string) (*Config, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := Default()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config %s: %w", name, err)
	}

	if cfg.Variables == nil {
		cfg.Variables = map[string]float64{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Precision < -1 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision %d: must be between -1 and %d", c.Precision, MaxPrecision)
	}

	for _, op := range c.Operators {
		if !compiler.IsOperatorSymbol(op.Symbol) {
			return fmt.Errorf("operator %q: symbol may only contain operator characters", op.Symbol)
		}
		if op.Arity != 1 && op.Arity != 2 {
			return fmt.Errorf("operator %q: arity must be 1 or 2, got %d", op.Symbol, op.Arity)
		}
		if !eval.SupportsOperator(op.Symbol, op.Arity) {
			return fmt.Errorf("operator %q: no evaluation rule for arity %d", op.Symbol, op.Arity)
		}
	}

	for name := range c.Variables {
		if !compiler.IsVariableName(name) {
			return fmt.Errorf("variable %q: name must be a single letter", name)
		}
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}

	return nil
}

// Table returns the default operator table extended with c.Operators.
func (c *Config) Table() *token.Table {
	entries := make([]token.Entry, 0, len(c.Operators))
	for _, op := range c.Operators {
		entries = append(entries, token.Entry{
			Symbol: op.Symbol,
			OperatorInfo: token.OperatorInfo{
				Precedence: op.Precedence,
				Arity:      op.Arity,
			},
		})
	}

	return token.DefaultTable().Extend(entries...)
}

// Bindings merges c.Variables with overrides; overrides win.
func (c *Config) Bindings(overrides map[string]float64) map[string]float64 {
	vars := make(map[string]float64, len(c.Variables)+len(overrides))
	for k, v := range c.Variables {
		vars[k] = v
	}
	for k, v := range overrides {
		vars[k] = v
	}

	return vars
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
