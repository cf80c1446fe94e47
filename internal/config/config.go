// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the settings of the hwgend server from a .env file,
// command line flags and HWGEN_* environment variables, the latter taking
// precedence.
//
package config

import (
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/hwgen/verilog"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds the server settings.
//
type Config struct {
	Addr            string
	CacheSize       int
	ClockPeriod     float64
	ResetIOStandard string
	Comments        bool
	Strict          bool
}

// Options returns the generator options selected by c.
//
func (c *Config) Options() verilog.Options {
	o := verilog.DefaultOptions()
	o.IncludeComments = c.Comments
	o.ClockPeriod = c.ClockPeriod
	o.ResetIOStandard = c.ResetIOStandard
	return o
}

// Load parses args (without the program name) and the environment.
// A missing .env file is not an error.
//
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	c := new(Config)
	fs := flag.NewFlagSet("hwgend", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&c.Addr, "addr", ":8080", "listen address")
	fs.IntVar(&c.CacheSize, "cache", 256, "number of generated artifacts kept in memory")
	fs.Float64Var(&c.ClockPeriod, "clock", verilog.DefaultClockPeriod, "sys_clk period in ns")
	fs.StringVar(&c.ResetIOStandard, "iostd", verilog.DefaultResetIOStandard, "IO standard of the reset port")
	fs.BoolVar(&c.Comments, "comments", true, "emit comments in generated code")
	fs.BoolVar(&c.Strict, "strict", false, "reject structurally invalid designs")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if v := env("HWGEN_ADDR"); v != "" {
		if !strings.Contains(v, ":") {
			v = ":" + v
		}
		c.Addr = v
	}
	if err := envInt("HWGEN_CACHE_SIZE", &c.CacheSize); err != nil {
		return nil, err
	}
	if v := env("HWGEN_CLOCK_PERIOD_NS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Wrap(err, "HWGEN_CLOCK_PERIOD_NS")
		}
		c.ClockPeriod = f
	}
	if v := env("HWGEN_RESET_IOSTANDARD"); v != "" {
		c.ResetIOStandard = v
	}
	if err := envBool("HWGEN_COMMENTS", &c.Comments); err != nil {
		return nil, err
	}
	if err := envBool("HWGEN_STRICT", &c.Strict); err != nil {
		return nil, err
	}

	if c.CacheSize < 1 {
		return nil, errors.Errorf("invalid cache size %d", c.CacheSize)
	}
	if c.ClockPeriod <= 0 {
		return nil, errors.Errorf("invalid clock period %g", c.ClockPeriod)
	}
	return c, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envInt(key string, dst *int) error {
	v := env(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrap(err, key)
	}
	*dst = n
	return nil
}

func envBool(key string, dst *bool) error {
	v := env(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return errors.Wrap(err, key)
	}
	*dst = b
	return nil
}
