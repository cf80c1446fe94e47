// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package service

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/db47h/hwgen/codec"
	"github.com/pkg/errors"
)

// MaxDocumentSize is the maximum size of a request body.
//
const MaxDocumentSize = 4 << 20

// Handler returns the HTTP API of s:
//
//	POST /v1/schematic/module     schematic document -> module and testbench
//	POST /v1/block/wrapper        block diagram document -> top-level wrapper
//	POST /v1/block/constraints    block diagram document -> XDC constraints
//	GET  /healthz
//
// Documents are JSON unless the request content type is a YAML one or the
// format query parameter is "yaml".
//
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /v1/schematic/module", s.endpoint(genModule))
	mux.Handle("POST /v1/block/wrapper", s.endpoint(genWrapper))
	mux.Handle("POST /v1/block/constraints", s.endpoint(genConstraints))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	return mux
}

func (s *Service) endpoint(g generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, err := requestFormat(r)
		if err != nil {
			s.fail(w, r, http.StatusBadRequest, err)
			return
		}
		doc, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxDocumentSize))
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				s.fail(w, r, http.StatusRequestEntityTooLarge, err)
				return
			}
			s.fail(w, r, http.StatusBadRequest, err)
			return
		}
		a, cached, err := s.run(r.Context(), g, doc, f)
		if err != nil {
			code := http.StatusInternalServerError
			if IsInvalid(err) {
				code = http.StatusUnprocessableEntity
			}
			s.fail(w, r, code, err)
			return
		}
		if cached {
			w.Header().Set("X-Cache", "hit")
		} else {
			w.Header().Set("X-Cache", "miss")
		}
		writeJSON(w, http.StatusOK, a)
		s.cfg.Logger.Printf("%s %s: %d bytes in, %d bytes out, cached=%t, %d warnings",
			r.Method, r.URL.Path, len(doc), len(a.Code)+len(a.Testbench), cached, len(a.Warnings))
	})
}

func requestFormat(r *http.Request) (codec.Format, error) {
	if q := r.URL.Query().Get("format"); q != "" {
		return codec.ParseFormat(q)
	}
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return codec.JSON, nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return codec.JSON, errors.Wrap(err, "content type")
	}
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return codec.YAML, nil
	}
	return codec.JSON, nil
}

func (s *Service) fail(w http.ResponseWriter, r *http.Request, code int, err error) {
	s.cfg.Logger.Printf("%s %s: %d %v", r.Method, r.URL.Path, code, err)
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
