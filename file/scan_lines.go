// adapted from bufio/scan.go
// 2023-05-09

package file

import (
	"bytes"
)

func newScanLines() *scanLines_ {
	return &scanLines_{}
}

type scanLines_ struct {
	countLF, countCRLF, countCR int
}

// scanLines is a split function for a Scanner that returns each line of
// text including its end-of-line marker. The marker is one of LF, CRLF or
// a lone CR. The last non-empty line of input is returned even if it has no
// marker.
//
// Convert the newline code to LF and leave it at the end of the line
// Count the types of newline codes
func (sl *scanLines_) scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			sl.countLF++
			return i + 1, data[0 : i+1], nil
		}
		// CR at the end of data may be the first half of CRLF
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			sl.countCRLF++
			data[i] = '\n'
			return i + 2, data[0 : i+1], nil
		}
		sl.countCR++
		data[i] = '\n'
		return i + 1, data[0 : i+1], nil
	}
	// If we're at EOF, we have a final, non-terminated line. Return it.
	if atEOF {
		return len(data), data, nil
	}
	// Request more data.
	return 0, nil, nil
}
