// SPDX-License-Identifier: EPL-2.0

package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/formats/wav"
)

func testBlob(t *testing.T) wav.Blob {
	t.Helper()

	buf, err := audio.NewBuffer(8000, []float32{0, 0.5, -0.5, 1})
	if err != nil {
		t.Fatal(err)
	}

	blob, err := wav.Encode(buf)
	if err != nil {
		t.Fatal(err)
	}

	return blob
}

func TestDir_Deliver(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blob := testBlob(t)

	if err := Dir(dir).Deliver(context.Background(), "cut.wav", blob); err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "cut.wav"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, blob.Bytes()) {
		t.Error("file contents differ from the blob")
	}

	info, err := os.Stat(filepath.Join(dir, "cut.wav"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != filePerm {
		t.Errorf("file mode = %v, want %v", perm, os.FileMode(filePerm))
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want only the delivered file", len(entries))
	}
}

func TestDir_InvalidFilename(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	for _, name := range []string{"", ".", "..", "../escape.wav", "sub/dir.wav", `win\path.wav`} {
		err := Dir(dir).Deliver(context.Background(), name, testBlob(t))
		if !errors.Is(err, ErrInvalidFilename) || !errors.Is(err, ErrDeliver) {
			t.Errorf("Deliver(%q) error = %v, want ErrInvalidFilename", name, err)
		}
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("directory holds %d entries after rejected deliveries", len(entries))
	}
}

func TestDir_FailureLeavesNothingBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// A non-empty directory under the target name makes the rename fail.
	blocker := filepath.Join(dir, "cut.wav")
	if err := os.MkdirAll(filepath.Join(blocker, "inner"), 0o755); err != nil {
		t.Fatal(err)
	}

	err := Dir(dir).Deliver(context.Background(), "cut.wav", testBlob(t))
	if !errors.Is(err, ErrDeliver) {
		t.Fatalf("Deliver() error = %v, want ErrDeliver", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 || entries[0].Name() != "cut.wav" {
		t.Errorf("directory entries = %v, want only the blocking directory", entries)
	}
}

func TestDir_MissingDirectory(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope")
	if err := Dir(missing).Deliver(context.Background(), "cut.wav", testBlob(t)); !errors.Is(err, ErrDeliver) {
		t.Errorf("Deliver() error = %v, want ErrDeliver", err)
	}
}

func TestWriter_Deliver(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	blob := testBlob(t)

	if err := NewWriter(&out).Deliver(context.Background(), "ignored.wav", blob); err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}
	if !bytes.Equal(out.Bytes(), blob.Bytes()) {
		t.Error("written bytes differ from the blob")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewWriter(&out).Deliver(ctx, "x.wav", blob); !errors.Is(err, context.Canceled) {
		t.Errorf("Deliver(cancelled) error = %v, want context.Canceled", err)
	}
}
