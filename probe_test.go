// SPDX-License-Identifier: EPL-2.0

package streamfmt

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/streamfmt/asbd"
	"github.com/ik5/streamfmt/formats/wav"
	"github.com/ik5/streamfmt/internal/asbdtest"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
	return path
}

func TestDefaultRegistry_Extensions(t *testing.T) {
	t.Parallel()

	got := DefaultRegistry().Extensions()
	want := []string{"aifc", "aif", "aiff", "mp3", "oga", "ogg", "wav"}
	slices.Sort(want)

	if !slices.Equal(got, want) {
		t.Errorf("Extensions() = %v, want %v", got, want)
	}
}

func TestProbeFile_WAV(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tone.WAV", asbdtest.WAVFile(48000, 2, 24, asbdtest.WAVFormatPCM, 16))

	got, err := ProbeFile(DefaultRegistry(), path)
	if err != nil {
		t.Fatalf("ProbeFile() error = %v", err)
	}

	want := asbd.MustDecode("LEI24@48000,2")
	if !got.Equal(want) {
		t.Errorf("ProbeFile() = %v, want %v", got, want)
	}
}

func TestProbeFile_AIFF(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tone.aiff", asbdtest.AIFFFile(44100, 2, 16, 16))

	got, err := ProbeFile(DefaultRegistry(), path)
	if err != nil {
		t.Fatalf("ProbeFile() error = %v", err)
	}

	want := asbd.MustDecode("BEI16@44100,2")
	if !got.Equal(want) {
		t.Errorf("ProbeFile() = %v, want %v", got, want)
	}
}

func TestProbeFile_UnknownExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", []byte("hello"))

	_, err := ProbeFile(DefaultRegistry(), path)
	if !errors.Is(err, asbd.ErrUnknownExtension) {
		t.Errorf("ProbeFile() error = %v, want ErrUnknownExtension", err)
	}
}

func TestProbeFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ProbeFile(DefaultRegistry(), filepath.Join(t.TempDir(), "missing.wav"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ProbeFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestProbeFile_Corrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "bad.wav", []byte("NOT A WAV FILE DATA"))

	_, err := ProbeFile(DefaultRegistry(), path)
	if !errors.Is(err, wav.ErrNotWavFile) {
		t.Errorf("ProbeFile() error = %v, want ErrNotWavFile", err)
	}
}

func TestProbeFiles_Preferred(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "low.wav", asbdtest.WAVFile(22050, 1, 16, asbdtest.WAVFormatPCM, 8)),
		writeFile(t, dir, "bad.wav", []byte("garbage")),
		writeFile(t, dir, "float.wav", asbdtest.WAVFile(44100, 2, 32, asbdtest.WAVFormatFloat, 8)),
		writeFile(t, dir, "deep.aif", asbdtest.AIFFFile(96000, 2, 24, 8)),
	}

	cands := ProbeFiles(DefaultRegistry(), paths)
	if len(cands) != len(paths) {
		t.Fatalf("ProbeFiles() returned %d candidates, want %d", len(cands), len(paths))
	}

	for i, c := range cands {
		if c.Path != paths[i] {
			t.Errorf("cands[%d].Path = %q, want %q", i, c.Path, paths[i])
		}
	}
	if cands[1].Err == nil {
		t.Error("cands[1].Err = nil, want probe error")
	}

	// Float wins over deeper integer PCM.
	if got := Preferred(cands); got != 2 {
		t.Errorf("Preferred() = %d, want 2", got)
	}
}

func TestPreferred_NoneSucceeded(t *testing.T) {
	t.Parallel()

	cands := []Candidate{
		{Path: "a", Err: errors.New("a")},
		{Path: "b", Err: errors.New("b")},
	}

	if got := Preferred(cands); got != -1 {
		t.Errorf("Preferred() = %d, want -1", got)
	}
	if got := Preferred(nil); got != -1 {
		t.Errorf("Preferred(nil) = %d, want -1", got)
	}
}

func TestPreferred_TieKeepsFirst(t *testing.T) {
	t.Parallel()

	d := asbd.MustDecode("LEI16@44100,2")
	cands := []Candidate{{Path: "a", Descriptor: d}, {Path: "b", Descriptor: d}}

	if got := Preferred(cands); got != 0 {
		t.Errorf("Preferred() = %d, want 0", got)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	fallback := asbd.MustDecode("LEI16@44100,2")

	got, err := Resolve("BEF32@48000,2", fallback)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !got.Equal(asbd.MustDecode("BEF32@48000,2")) {
		t.Errorf("Resolve() = %v", got)
	}

	got, err = Resolve("BEI16@x", fallback)
	if !errors.Is(err, asbd.ErrMalformedDescriptor) {
		t.Errorf("Resolve() error = %v, want ErrMalformedDescriptor", err)
	}
	if !got.Equal(fallback) {
		t.Errorf("Resolve() = %v, want fallback %v", got, fallback)
	}
}
