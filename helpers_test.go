package caret_test

import (
	"errors"
	"strings"

	"github.com/stretchr/testify/require"

	"github.com/ge-editor/caret/file"
)

func newBuffer(t require.TestingT, text string) *file.File {
	ff := file.NewFile("")
	require.NoError(t, ff.Read(strings.NewReader(text)))
	return ff
}

func loadFixture(t require.TestingT) *file.File {
	ff := file.NewFile("testdata/hokey_pokey_caret.txt")
	require.NoError(t, ff.Load())
	return ff
}

// recovered runs f and returns the error it panicked with, if any.
func recovered(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = errors.New("non-error panic")
		}
	}()
	f()
	return nil
}
