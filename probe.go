// SPDX-License-Identifier: EPL-2.0

package streamfmt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/streamfmt/asbd"
	"github.com/ik5/streamfmt/formats/aiff"
	"github.com/ik5/streamfmt/formats/mp3"
	"github.com/ik5/streamfmt/formats/vorbis"
	"github.com/ik5/streamfmt/formats/wav"
)

// DefaultRegistry returns a registry with every prober in this module:
// wav, aif/aiff/aifc, mp3 and ogg/oga.
func DefaultRegistry() *asbd.Registry {
	reg := asbd.NewRegistry()
	reg.Register("wav", wav.Prober{})
	reg.Register("aif", aiff.Prober{})
	reg.Register("aiff", aiff.Prober{})
	reg.Register("aifc", aiff.Prober{})
	reg.Register("mp3", mp3.Prober{})
	reg.Register("ogg", vorbis.Prober{})
	reg.Register("oga", vorbis.Prober{})

	return reg
}

// ProbeFile describes the file at path with the prober registered for its
// extension.
func ProbeFile(reg *asbd.Registry, path string) (asbd.Descriptor, error) {
	ext := filepath.Ext(path)
	if _, ok := reg.Get(ext); !ok {
		return asbd.Descriptor{}, fmt.Errorf("%s: %w: %q", path, asbd.ErrUnknownExtension, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return asbd.Descriptor{}, err
	}
	defer f.Close()

	d, err := reg.Probe(ext, f)
	if err != nil {
		return asbd.Descriptor{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Candidate is the outcome of probing one file.
type Candidate struct {
	Path       string
	Descriptor asbd.Descriptor
	Err        error
}

// ProbeFiles probes every path. A failing file does not stop the others;
// its error is kept on its Candidate.
func ProbeFiles(reg *asbd.Registry, paths []string) []Candidate {
	out := make([]Candidate, 0, len(paths))
	for _, p := range paths {
		d, err := ProbeFile(reg, p)
		out = append(out, Candidate{Path: p, Descriptor: d, Err: err})
	}

	return out
}

// Preferred returns the index of the best successfully probed candidate,
// or -1 if none succeeded.
func Preferred(cands []Candidate) int {
	ok := make([]int, 0, len(cands))
	ds := make([]asbd.Descriptor, 0, len(cands))
	for i, c := range cands {
		if c.Err != nil {
			continue
		}
		ok = append(ok, i)
		ds = append(ds, c.Descriptor)
	}

	best := asbd.Preferred(ds)
	if best < 0 {
		return -1
	}
	return ok[best]
}

// Resolve decodes a user or config supplied descriptor. When text is
// malformed it returns fallback together with the decode error, so the
// caller can choose between continuing and reporting.
func Resolve(text string, fallback asbd.Descriptor) (asbd.Descriptor, error) {
	d, err := asbd.Decode(text)
	if err != nil {
		return fallback, err
	}

	return d, nil
}
