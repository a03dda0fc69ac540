// SPDX-License-Identifier: EPL-2.0

package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audcut/formats/wav"
)

// Deliverer hands a finished file to whoever asked for it.
type Deliverer interface {
	Deliver(ctx context.Context, filename string, blob wav.Blob) error
}

// DeliverFunc adapts a function to Deliverer.
type DeliverFunc func(ctx context.Context, filename string, blob wav.Blob) error

func (f DeliverFunc) Deliver(ctx context.Context, filename string, blob wav.Blob) error {
	return f(ctx, filename, blob)
}

// Dir saves files into a directory. A file only appears under its final
// name once it was written completely.
type Dir string

const filePerm = 0o644

func (d Dir) Deliver(ctx context.Context, filename string, blob wav.Blob) error {
	if err := validFilename(filename); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrDeliver, err)
	}

	tmp, err := os.CreateTemp(string(d), "."+filename+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliver, err)
	}

	if err := d.commit(tmp, filename, blob); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("%w: %w", ErrDeliver, err)
	}

	return nil
}

func (d Dir) commit(tmp *os.File, filename string, blob wav.Blob) error {
	if _, err := blob.WriteTo(tmp); err != nil {
		return err
	}

	if err := tmp.Chmod(filePerm); err != nil {
		return err
	}

	if err := tmp.Sync(); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(string(d), filename))
}

func validFilename(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidFilename, name)
	}

	return nil
}

// Writer streams every delivered file to an io.Writer, such as os.Stdout.
// The filename is ignored.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) Writer {
	return Writer{w: w}
}

func (w Writer) Deliver(ctx context.Context, _ string, blob wav.Blob) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrDeliver, err)
	}

	if _, err := blob.WriteTo(w.w); err != nil {
		return fmt.Errorf("%w: %w", ErrDeliver, err)
	}

	return nil
}
