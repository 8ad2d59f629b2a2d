package file

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/ge-editor/utils"
)

type flags int8
type linefeed int8

const (
	READONLY flags = 1 << iota

	LF linefeed = 1 << iota
	CRLF
	CR
)

// Longest row accepted by Load
const maxRowBytes = 16 * 1024 * 1024

// File holds the rows of one text file. It implements caret.Buffer.
type File struct {
	rawPath string
	path    string
	base    string

	rows
	encoding string
	linefeed
	flags // readonly
}

// Call New(), Load() or Read() after invoking this function
func NewFile(rawPath string) *File {
	ff := &File{
		rawPath:  rawPath,
		rows:     nil,
		encoding: "UTF-8",
		linefeed: LF,
		flags:    0,
	}
	ff.init()
	return ff
}

// Initialize File with File.rawPath
func (ff *File) init() {
	if ff.rawPath == "" {
		ff.rawPath = "unnamed"
	}
	path, err := filepath.Abs(ff.rawPath)
	if err != nil {
		path = ""
	}
	ff.path = path
	ff.base = filepath.Base(ff.rawPath)
}

// Buffer interface

func (ff *File) NumLines() int {
	return ff.rows.RowLength()
}

func (ff *File) LineLength(line int) (int, bool) {
	return ff.rows.GetColLength(line)
}

func (ff *File) LineChars(line int) (iter.Seq[rune], bool) {
	row, ok := ff.rows.GetRow(line)
	if !ok {
		return nil, false
	}
	return row.Chars(), true
}

func (ff *File) Row(rowIndex int) (Row, bool) {
	return ff.rows.GetRow(rowIndex)
}

// New file, one empty row
func (ff *File) New() error {
	ff.rows.New()
	ff.rows.AddRow(NewRow())
	ff.linefeed = LF
	return nil
}

// Load file from File.path.
// A non-nil error with a usable File is a message, see pkg_error.IsMessage.
func (ff *File) Load() error {
	fp, err := os.Open(ff.path)
	if err != nil {
		return err
	}
	defer fp.Close()
	return ff.Read(fp)
}

// Read replaces the rows with text decoded from r using the file encoding.
// Every row but the last ends with LF; CRLF and CR are converted to LF.
func (ff *File) Read(r io.Reader) error {
	c, err := lookupCodec(ff.encoding)
	if err != nil {
		return err
	}

	scanLines := newScanLines()
	scanner := bufio.NewScanner(c.decoder(r))
	scanner.Buffer(make([]byte, 0, 64*1024), maxRowBytes)
	scanner.Split(scanLines.scanLines)

	var rs rows
	rs.New()
	for scanner.Scan() {
		row := make(Row, 0, len(scanner.Bytes()))
		row.bytes(scanner.Bytes())
		rs.AddRow(row)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// Empty input, or the last row ends with LF: the caret needs a row after it
	if n := rs.RowLength(); n == 0 || rs[n-1].IsTerminated() {
		rs.AddRow(NewRow())
	}
	ff.rows = rs

	// Set linefeed type
	ff.linefeed = []linefeed{LF, CRLF, CR}[utils.MaxValueIndex([]int{scanLines.countLF, scanLines.countCRLF, scanLines.countCR})]
	return c.message
}

// Write encodes the rows to w, restoring the original linefeed.
func (ff *File) Write(w io.Writer) error {
	c, err := lookupCodec(ff.encoding)
	if err != nil {
		return err
	}

	linefeed := []byte{'\n'} // Default to LF
	if ff.linefeed&CRLF > 0 {
		linefeed = []byte{'\r', '\n'}
	} else if ff.linefeed&CR > 0 {
		linefeed = []byte{'\r'}
	}

	enc := c.encoder(w)
	for _, row := range ff.rows {
		b := []byte(string(row))
		if row.IsTerminated() {
			b = append(b[:len(b)-1], linefeed...) // replace LF
		}
		if _, err := enc.Write(b); err != nil {
			return err
		}
	}
	return enc.Close()
}

func (ff *File) Save() error {
	var buf bytes.Buffer
	if err := ff.Write(&buf); err != nil {
		return err
	}
	return os.WriteFile(ff.path, buf.Bytes(), 0644)
}

// Setter/Getter

func (ff *File) GetPath() string {
	return ff.path
}

func (ff *File) GetBase() string {
	return ff.base
}

// SetEncoding selects the codec used by Load, Read, Write and Save.
func (ff *File) SetEncoding(encoding string) error {
	c, err := lookupCodec(encoding)
	if err != nil {
		return err
	}
	ff.encoding = c.name
	return nil
}

func (ff *File) GetEncoding() string {
	return ff.encoding
}

func (ff *File) GetLinefeed() string {
	if ff.linefeed&LF > 0 {
		return "LF"
	}
	if ff.linefeed&CRLF > 0 {
		return "CRLF"
	}
	return "CR"
}

// Flags

func (ff *File) SetReadonly(b bool) {
	if b {
		ff.flags |= READONLY
	} else {
		ff.flags &= ^READONLY
	}
}

func (ff *File) IsReadonly() bool {
	return ff.flags&READONLY > 0
}
