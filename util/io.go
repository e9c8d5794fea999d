package util

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"os"
	"syscall"
)

// WriteJSON writes v to w as indented JSON (two spaces) without HTML escaping.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// DumpJSON writes v to the file at path as indented UTF-8 JSON, creating or
// truncating it.
func DumpJSON(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteJSON(f, v)
}

// FlushStdio syncs stdout and stderr. Errors from streams that cannot be
// synced, such as terminals and pipes, are ignored.
func FlushStdio() error {
	var errs []error
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if err := f.Sync(); err != nil && !unsyncable(err) {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

func unsyncable(err error) bool {
	return stderrors.Is(err, syscall.EINVAL) ||
		stderrors.Is(err, syscall.ENOTSUP) ||
		stderrors.Is(err, os.ErrClosed)
}

// Ready returns a closed channel that already holds v, for callers that
// expect to wait on a result.
func Ready[T any](v T) <-chan T {
	ch := make(chan T, 1)
	ch <- v
	close(ch)
	return ch
}
