// SPDX-License-Identifier: EPL-2.0

package asbd

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// Prober reads the header of an encoded audio stream and describes it.
type Prober interface {
	Probe(r io.Reader) (Descriptor, error)
}

// ProberFunc adapts a function to Prober.
type ProberFunc func(r io.Reader) (Descriptor, error)

func (f ProberFunc) Probe(r io.Reader) (Descriptor, error) { return f(r) }

// Registry maps file extensions (e.g., "wav", "mp3", "ogg") to probers.
// Keys are case-insensitive and may be given with or without a leading dot.
type Registry struct {
	probers map[string]Prober

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		probers: make(map[string]Prober),
		mtx:     &sync.RWMutex{},
	}
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func (r *Registry) Register(ext string, p Prober) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.probers[normalizeExt(ext)] = p
}

func (r *Registry) Get(ext string) (Prober, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	p, ok := r.probers[normalizeExt(ext)]
	return p, ok
}

// Extensions lists the registered keys in sorted order.
func (r *Registry) Extensions() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	exts := make([]string, 0, len(r.probers))
	for ext := range r.probers {
		exts = append(exts, ext)
	}
	slices.Sort(exts)

	return exts
}

// Probe looks up the prober for ext and runs it on src.
func (r *Registry) Probe(ext string, src io.Reader) (Descriptor, error) {
	p, ok := r.Get(ext)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}

	return p.Probe(src)
}
