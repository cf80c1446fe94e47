// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package service exposes the code generators over HTTP.
//
// Generated artifacts are memoised in an LRU cache keyed by a hash of the
// request document. The generators are pure, so a cached artifact is always
// identical to a freshly generated one.
//
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log"
	"sync/atomic"

	"github.com/db47h/hwgen/codec"
	"github.com/db47h/hwgen/verilog"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// Config holds the service settings.
//
type Config struct {
	// Options used for all generated artifacts. Module artifacts always
	// include a testbench.
	Options verilog.Options
	// CacheSize is the maximum number of cached artifacts.
	CacheSize int
	// Strict rejects documents that fail Design.Check or BlockDiagram.Check.
	Strict bool
	// Logger receives one line per HTTP request. Nil disables logging.
	Logger *log.Logger
}

// An Artifact is the output of a generator. Cached artifacts are shared and
// must not be modified.
//
type Artifact struct {
	Code      string   `json:"code"`
	Testbench string   `json:"testbench,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// Service generates artifacts from design documents.
//
type Service struct {
	cfg    Config
	codec  *codec.Codec
	cache  *lru.Cache[string, *Artifact]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New returns a new Service.
//
func New(cfg Config) (*Service, error) {
	if cfg.CacheSize < 1 {
		return nil, errors.Errorf("invalid cache size %d", cfg.CacheSize)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	c, err := codec.New()
	if err != nil {
		return nil, err
	}
	cache, err := lru.New[string, *Artifact](cfg.CacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "creating cache")
	}
	return &Service{cfg: cfg, codec: c, cache: cache}, nil
}

// Stats returns the number of cache hits and misses so far.
//
func (s *Service) Stats() (hits, misses uint64) {
	return s.hits.Load(), s.misses.Load()
}

// Module generates the Verilog module and testbench of a schematic document.
//
func (s *Service) Module(ctx context.Context, doc []byte, f codec.Format) (*Artifact, error) {
	a, _, err := s.run(ctx, genModule, doc, f)
	return a, err
}

// Wrapper generates the top-level wrapper of a block diagram document.
//
func (s *Service) Wrapper(ctx context.Context, doc []byte, f codec.Format) (*Artifact, error) {
	a, _, err := s.run(ctx, genWrapper, doc, f)
	return a, err
}

// Constraints generates the XDC constraints of a block diagram document.
//
func (s *Service) Constraints(ctx context.Context, doc []byte, f codec.Format) (*Artifact, error) {
	a, _, err := s.run(ctx, genConstraints, doc, f)
	return a, err
}

type generator string

const (
	genModule      generator = "module"
	genWrapper     generator = "wrapper"
	genConstraints generator = "xdc"
)

// run returns the artifact of the given generator and whether it came from
// the cache.
func (s *Service) run(ctx context.Context, g generator, doc []byte, f codec.Format) (*Artifact, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	key := cacheKey(g, doc, f)
	if a, ok := s.cache.Get(key); ok {
		s.hits.Add(1)
		return a, true, nil
	}
	s.misses.Add(1)
	a, err := s.generate(g, doc, f)
	if err != nil {
		return nil, false, err
	}
	s.cache.Add(key, a)
	return a, false, nil
}

func (s *Service) generate(g generator, doc []byte, f codec.Format) (*Artifact, error) {
	if g == genModule {
		d, err := s.codec.DecodeDesign(doc, f)
		if err != nil {
			return nil, invalid(err)
		}
		if s.cfg.Strict {
			if err = d.Check(); err != nil {
				return nil, invalid(errors.Wrap(err, d.Name))
			}
		}
		opts := s.cfg.Options
		opts.IncludeTestbench = true
		r := verilog.Module(d, opts)
		return &Artifact{Code: r.Module, Testbench: r.Testbench, Warnings: r.Warnings}, nil
	}

	d, err := s.codec.DecodeDiagram(doc, f)
	if err != nil {
		return nil, invalid(err)
	}
	if s.cfg.Strict {
		if err = d.Check(); err != nil {
			return nil, invalid(errors.Wrap(err, d.Name))
		}
	}
	if g == genConstraints {
		return &Artifact{Code: verilog.Constraints(d, s.cfg.Options)}, nil
	}
	code, ws := verilog.Wrapper(d, s.cfg.Options)
	return &Artifact{Code: code, Warnings: ws}, nil
}

func cacheKey(g generator, doc []byte, f codec.Format) string {
	h := sha256.New()
	io.WriteString(h, string(g))
	h.Write([]byte{0})
	io.WriteString(h, f.String())
	h.Write([]byte{0})
	h.Write(doc)
	return hex.EncodeToString(h.Sum(nil))
}

type invalidError struct {
	err error
}

func (e *invalidError) Error() string { return e.err.Error() }

func invalid(err error) error { return &invalidError{err} }

// IsInvalid returns true if err was caused by an invalid request document.
//
func IsInvalid(err error) bool {
	_, ok := errors.Cause(err).(*invalidError)
	return ok
}
