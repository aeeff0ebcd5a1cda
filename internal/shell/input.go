package shell

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"parking-system/internal/pkg/errs"
)

var (
	ErrInvalidSelection  = errs.New("invalid selection")
	ErrEmptyRegistration = errs.New("vehicle registration number cannot be empty")
)

// InputReader reads one answer per line.
type InputReader struct {
	scanner *bufio.Scanner
}

func NewInputReader(r io.Reader) *InputReader {
	return &InputReader{scanner: bufio.NewScanner(r)}
}

// ReadSelection returns io.EOF once the input is exhausted.
func (r *InputReader) ReadSelection() (int, error) {
	line, err := r.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, errs.Mark(errs.Wrapf(err, "selection %q is not a number", line), ErrInvalidSelection)
	}
	return n, nil
}

func (r *InputReader) ReadRegistration() (string, error) {
	line, err := r.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", ErrEmptyRegistration
	}
	return line, nil
}

func (r *InputReader) readLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", errs.Wrap(err, "failed to read input")
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}
