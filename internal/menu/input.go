package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// tokenReader yields whitespace-delimited tokens, one input line at a time.
type tokenReader struct {
	sc      *bufio.Scanner
	pending []string
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{sc: bufio.NewScanner(r)}
}

// next returns the next token, or io.EOF once input is exhausted.
func (t *tokenReader) next() (string, error) {
	for len(t.pending) == 0 {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			return "", io.EOF
		}
		t.pending = strings.Fields(t.sc.Text())
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, nil
}

// discardLine drops whatever is left of the current line.
func (t *tokenReader) discardLine() {
	t.pending = nil
}
