package file

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ge-editor/caret/pkg_error"
)

type codec struct {
	name    string
	message error // returned by Load after decoding, nil for plain UTF-8
	decoder func(io.Reader) io.Reader
	encoder func(io.Writer) io.WriteCloser
}

var codecs = map[string]codec{
	"UTF-8": {
		name:    "UTF-8",
		decoder: func(r io.Reader) io.Reader { return r },
		encoder: func(w io.Writer) io.WriteCloser { return nopCloser{w} },
	},
	"UTF-8-MAC": {
		name:    "UTF-8-mac",
		message: pkg_error.ErrMac,
		decoder: func(r io.Reader) io.Reader { return norm.NFC.Reader(r) },
		encoder: func(w io.Writer) io.WriteCloser { return norm.NFD.Writer(w) },
	},
	"SHIFT_JIS": {
		name:    "Shift_JIS",
		message: pkg_error.ErrShiftJis,
		decoder: func(r io.Reader) io.Reader { return transform.NewReader(r, japanese.ShiftJIS.NewDecoder()) },
		encoder: func(w io.Writer) io.WriteCloser { return transform.NewWriter(w, japanese.ShiftJIS.NewEncoder()) },
	},
	"EUC-JP": {
		name:    "EUC-JP",
		message: pkg_error.ErrEucJp,
		decoder: func(r io.Reader) io.Reader { return transform.NewReader(r, japanese.EUCJP.NewDecoder()) },
		encoder: func(w io.Writer) io.WriteCloser { return transform.NewWriter(w, japanese.EUCJP.NewEncoder()) },
	},
}

func init() {
	codecs["UTF8"] = codecs["UTF-8"]
	codecs["SJIS"] = codecs["SHIFT_JIS"]
	codecs["SHIFT-JIS"] = codecs["SHIFT_JIS"]
	codecs["EUCJP"] = codecs["EUC-JP"]
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func lookupCodec(encoding string) (codec, error) {
	c, ok := codecs[strings.ToUpper(encoding)]
	if !ok {
		return codec{}, fmt.Errorf("%w: %q", pkg_error.ErrUnknownEncoding, encoding)
	}
	return c, nil
}
