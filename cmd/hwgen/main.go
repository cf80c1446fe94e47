// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// hwgen generates Verilog and XDC files from schematic designs and block
// diagrams.
//
// Usage:
//
//	hwgen module [flags] design.json
//	hwgen wrapper [flags] soc.yaml
//	hwgen xdc [flags] soc.yaml
//
// A file name of "-" reads the document from standard input.
//
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/db47h/hwgen/codec"
	"github.com/db47h/hwgen/verilog"
	"github.com/pkg/errors"
)

const usage = "usage: hwgen module|wrapper|xdc [flags] <file>"

type settings struct {
	out      string
	format   string
	tb       bool
	comments bool
	date     bool
	strict   bool
	clock    float64
	iostd    string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%v: ", path.Base(os.Args[0])))
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 1 {
		return errors.New(usage)
	}
	cmd := args[0]
	switch cmd {
	case "module", "wrapper", "xdc":
	default:
		return errors.Errorf("unknown command %q\n%s", cmd, usage)
	}

	var s settings
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.StringVar(&s.out, "o", "", "output file (default stdout)")
	fs.StringVar(&s.format, "format", "", "input format: json or yaml (default from file extension)")
	fs.BoolVar(&s.tb, "tb", false, "also generate a testbench (module only)")
	fs.BoolVar(&s.comments, "comments", true, "emit comments")
	fs.BoolVar(&s.date, "date", false, "write the generation date in headers")
	fs.BoolVar(&s.strict, "strict", false, "reject structurally invalid documents")
	fs.Float64Var(&s.clock, "clock", verilog.DefaultClockPeriod, "sys_clk period in ns")
	fs.StringVar(&s.iostd, "iostd", verilog.DefaultResetIOStandard, "IO standard of the reset port")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New(usage)
	}
	name := fs.Arg(0)

	doc, err := readInput(name, stdin)
	if err != nil {
		return err
	}
	f := codec.FormatOf(name)
	if s.format != "" {
		if f, err = codec.ParseFormat(s.format); err != nil {
			return err
		}
	}
	c, err := codec.New()
	if err != nil {
		return err
	}

	opts := verilog.DefaultOptions()
	opts.IncludeComments = s.comments
	opts.IncludeTestbench = s.tb
	opts.ClockPeriod = s.clock
	opts.ResetIOStandard = s.iostd
	if s.date {
		opts.Timestamp = time.Now()
	}

	var (
		code, tb string
		ws       verilog.Warnings
	)
	if cmd == "module" {
		d, err := c.DecodeDesign(doc, f)
		if err != nil {
			return errors.Wrap(err, name)
		}
		if s.strict {
			if err = d.Check(); err != nil {
				return errors.Wrap(err, name)
			}
		}
		r := verilog.Module(d, opts)
		code, tb, ws = r.Module, r.Testbench, r.Warnings
	} else {
		d, err := c.DecodeDiagram(doc, f)
		if err != nil {
			return errors.Wrap(err, name)
		}
		if s.strict {
			if err = d.Check(); err != nil {
				return errors.Wrap(err, name)
			}
		}
		if cmd == "xdc" {
			code = verilog.Constraints(d, opts)
		} else {
			code, ws = verilog.Wrapper(d, opts)
		}
	}
	for _, w := range ws {
		log.Printf("warning: %s", w)
	}

	if s.out == "" {
		_, err = io.WriteString(stdout, code+tb)
		return err
	}
	if err = os.WriteFile(s.out, []byte(code), 0644); err != nil {
		return err
	}
	if tb != "" {
		return os.WriteFile(testbenchFile(s.out), []byte(tb), 0644)
	}
	return nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// testbenchFile returns foo_tb.v for foo.v.
func testbenchFile(out string) string {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + "_tb" + ext
}
