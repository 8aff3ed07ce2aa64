package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single answer.
const maxLineSize = 1 << 20

// errReadInput marks a failure of the input stream other than its end.
// The stream cannot be read after it.
var errReadInput = errors.New("failed to read input")

func newPrompter(in io.Reader, out io.Writer, reject func(err error)) *prompter {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &prompter{scanner: scanner, out: out, reject: reject}
}

// prompter reads operator answers one line at a time.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	reject  func(err error)
}

// ask prints label and returns the next input line with surrounding
// whitespace removed. It returns io.EOF once input is exhausted and an
// errReadInput error when the input cannot be read.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", errReadInput, err)
		}
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// askUntil repeats the question until check accepts the answer, printing
// each rejection.
func (p *prompter) askUntil(label string, check func(string) error) (string, error) {
	for {
		answer, err := p.ask(label)
		if err != nil {
			return "", err
		}
		if err := check(answer); err != nil {
			fmt.Fprintf(p.out, "Error: %v. Try again.\n", err)
			if p.reject != nil {
				p.reject(err)
			}
			continue
		}
		return answer, nil
	}
}
