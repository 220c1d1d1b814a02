package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrInputClosed is returned when the input source is exhausted.
	ErrInputClosed = errors.New("input closed")

	// ErrTooManyAttempts is returned when a field was rejected more often
	// than the retry limit allows.
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

// Prompter reads whitespace-delimited tokens from a console and validates
// them. A rejected token discards the rest of its line before the field is
// asked for again.
type Prompter struct {
	in         *bufio.Reader
	out        io.Writer
	maxRetries int
}

// NewPrompter returns a Prompter reading from in and writing prompts to out.
// maxRetries bounds the re-prompts per field; 0 means unbounded.
func NewPrompter(in io.Reader, out io.Writer, maxRetries int) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, maxRetries: maxRetries}
}

// token returns the next whitespace-delimited token. The delimiter is left
// unread so that a following discardLine stops at the end of the same line.
// Bytes that are not valid UTF-8 (a CP1251 console, say) are kept as typed.
func (p *Prompter) token() (string, error) {
	var sb strings.Builder
	for {
		r, size, err := p.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if sb.Len() > 0 {
					return sb.String(), nil
				}
				return "", ErrInputClosed
			}
			return "", err
		}
		if r == utf8.RuneError && size == 1 {
			_ = p.in.UnreadRune()
			b, _ := p.in.ReadByte()
			sb.WriteByte(b)
			continue
		}
		if unicode.IsSpace(r) {
			if sb.Len() == 0 {
				continue
			}
			_ = p.in.UnreadRune()
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}

// discardLine drops pending input up to and including the next newline.
func (p *Prompter) discardLine() {
	for {
		r, _, err := p.in.ReadRune()
		if err != nil || r == '\n' {
			return
		}
	}
}

// ask writes prompt and reads tokens until accept returns nil, writing retry
// before every further attempt.
func (p *Prompter) ask(prompt, retry string, accept func(tok string) error) error {
	fmt.Fprint(p.out, prompt)
	for attempt := 1; ; attempt++ {
		tok, err := p.token()
		if err != nil {
			return err
		}
		if err := accept(tok); err == nil {
			return nil
		}
		p.discardLine()
		if p.maxRetries > 0 && attempt > p.maxRetries {
			return fmt.Errorf("%w: %d attempts", ErrTooManyAttempts, attempt)
		}
		fmt.Fprint(p.out, retry)
	}
}

// ReadToken asks for a free-text token. validate may be nil.
func (p *Prompter) ReadToken(prompt, retry string, validate func(string) error) (string, error) {
	var value string
	err := p.ask(prompt, retry, func(tok string) error {
		if validate != nil {
			if err := validate(tok); err != nil {
				return err
			}
		}
		value = tok
		return nil
	})
	return value, err
}

// ReadInt asks for an integer accepted by validate.
func (p *Prompter) ReadInt(prompt, retry string, validate func(int) error) (int, error) {
	var value int
	err := p.ask(prompt, retry, func(tok string) error {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return err
		}
		if err := validate(n); err != nil {
			return err
		}
		value = n
		return nil
	})
	return value, err
}

// ReadFloat asks for a real number accepted by validate.
func (p *Prompter) ReadFloat(prompt, retry string, validate func(float64) error) (float64, error) {
	var value float64
	err := p.ask(prompt, retry, func(tok string) error {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return err
		}
		if err := validate(f); err != nil {
			return err
		}
		value = f
		return nil
	})
	return value, err
}

// ReadChoice reads one menu selection. A token that is not an integer
// yields 0 with a nil error, and the rest of its line is discarded.
func (p *Prompter) ReadChoice() (int, error) {
	tok, err := p.token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		p.discardLine()
		return 0, nil
	}
	return n, nil
}
