package main

import (
	"bufio"
	"io"
	"strings"
)

// Longest prefix isPanic looks at, plus slack.
const maxHead = 32

// drain copies the stream byte for byte to w until r is exhausted and
// reports whether a panic report was seen. The wire carries no framing, so
// w receives exactly what the device wrote. Only the head of each line is
// kept for matching, a device stuck writing without newlines can't exhaust
// memory or abort the drain.
func drain(r io.Reader, w io.Writer) (panicked bool, err error) {
	br := bufio.NewReader(io.TeeReader(r, w))
	head := make([]byte, 0, maxHead)
	for {
		chunk, err := br.ReadSlice('\n')
		if n := maxHead - len(head); n > 0 {
			head = append(head, chunk[:min(len(chunk), n)]...)
		}
		if err == bufio.ErrBufferFull {
			// Overlong line, keep reading up to the newline.
			continue
		}
		if isPanic(string(head)) {
			panicked = true
		}
		head = head[:0]
		if err == io.EOF {
			return panicked, nil
		}
		if err != nil {
			return panicked, err
		}
	}
}

// isPanic matches the device-side fault reporter as well as Go runtime
// panics and fatal errors.
func isPanic(line string) bool {
	return strings.HasPrefix(line, "panicked at '") ||
		strings.HasPrefix(line, "panic:") ||
		strings.HasPrefix(line, "fatal error:")
}
