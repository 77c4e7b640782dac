package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed reports that the input stream reached EOF. Callers end the
// session instead of re-prompting; a closed stream never produces input again.
var ErrInputClosed = errors.New("girdi akışı kapandı")

// Prompter reads operator input line by line. One command is read and fully
// handled before the next prompt appears.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	closed bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine returns the next trimmed input line, or "" once the stream is
// closed. A final line without a trailing newline is still delivered.
func (p *Prompter) ReadLine(prompt string) string {
	if p.closed {
		return ""
	}

	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		p.closed = true
	}
	return strings.TrimSpace(line)
}

// Closed reports whether the input stream has reached EOF.
func (p *Prompter) Closed() bool {
	return p.closed
}

// ReadInt keeps an invalid number from crashing the loop; the caller
// decides what a failed parse means. A closed stream is a distinct error.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	line := p.ReadLine(prompt)
	if line == "" && p.closed {
		return 0, ErrInputClosed
	}
	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("geçersiz sayı: %q", line)
	}
	return value, nil
}

func (p *Prompter) ReadInt64(prompt string) (int64, error) {
	line := p.ReadLine(prompt)
	if line == "" && p.closed {
		return 0, ErrInputClosed
	}
	value, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("geçersiz sayı: %q", line)
	}
	return value, nil
}

func (p *Prompter) Confirm(prompt string) bool {
	answer := strings.ToLower(p.ReadLine(prompt + " (e/h): "))
	return answer == "e" || answer == "evet"
}
