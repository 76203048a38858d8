package main

import (
	"bufio"
	"io"
)

// DefaultMaxLine is the line length cap applied when none is configured.
const DefaultMaxLine = 4096

// LineReader reads newline-terminated lines with a hard length cap. Lines
// longer than the cap are truncated to it and the remainder of the line is
// drained, so one oversized line cannot desynchronize the stream.
type LineReader struct {
	r          *bufio.Reader
	line       []byte
	maxLine    int
	lineNumber int
	truncated  bool
	err        error
}

// NewLineReader wraps r with a cap of maxLine bytes per line.
// Non-positive maxLine selects DefaultMaxLine.
func NewLineReader(r io.Reader, maxLine int) *LineReader {
	if maxLine <= 0 {
		maxLine = DefaultMaxLine
	}
	return &LineReader{
		r:       bufio.NewReader(r),
		maxLine: maxLine,
	}
}

// Scan advances to the next line. It returns false at end of input or on a
// read error; Err distinguishes the two.
func (lr *LineReader) Scan() bool {
	lr.truncated = false
	lr.line = lr.line[:0]
	if lr.err != nil {
		return false
	}

	for {
		chunk, err := lr.r.ReadSlice('\n')
		if err == nil {
			chunk = trimEOL(chunk)
		}

		if len(lr.line)+len(chunk) > lr.maxLine {
			keep := lr.maxLine - len(lr.line)
			lr.line = append(lr.line, chunk[:keep]...)
			lr.truncated = true
			if err == bufio.ErrBufferFull {
				if derr := lr.drain(); derr != nil {
					lr.err = derr
				}
			}
			lr.lineNumber++
			return true
		}

		lr.line = append(lr.line, chunk...)

		switch err {
		case nil:
			lr.lineNumber++
			return true
		case bufio.ErrBufferFull:
			continue
		case io.EOF:
			if len(lr.line) == 0 {
				return false
			}
			lr.lineNumber++
			return true
		default:
			lr.err = err
			if len(lr.line) > 0 {
				lr.lineNumber++
				return true
			}
			return false
		}
	}
}

// Line returns the current line without its end-of-line marker. The slice is
// only valid until the next Scan.
func (lr *LineReader) Line() []byte {
	return lr.line
}

// LineNumber returns the 1-based number of the current line.
func (lr *LineReader) LineNumber() int {
	return lr.lineNumber
}

// Truncated reports whether the current line was cut at the length cap.
func (lr *LineReader) Truncated() bool {
	return lr.truncated
}

// Err returns the first read error other than end of input.
func (lr *LineReader) Err() error {
	return lr.err
}

// drain discards input up to and including the next newline.
func (lr *LineReader) drain() error {
	for {
		_, err := lr.r.ReadSlice('\n')
		switch err {
		case nil, io.EOF:
			return nil
		case bufio.ErrBufferFull:
			continue
		default:
			return err
		}
	}
}

func trimEOL(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
	}
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	return b
}
