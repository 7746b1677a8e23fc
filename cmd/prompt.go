package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/teller"
	"github.com/shopspring/decimal"
)

// prompter reads interactive input line by line, re-prompting until the
// input is valid. Every reader returns ok=false once the input source is
// exhausted, so a closed stdin ends the session instead of spinning.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(r), out: w}
}

func (p *prompter) say(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// next reads one raw line.
func (p *prompter) next() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}

// Line prompts and reads a non-blank line, trimmed of surrounding spaces.
func (p *prompter) Line(prompt string) (string, bool) {
	p.say("%s\n> ", prompt)
	for {
		line, ok := p.next()
		if !ok {
			return "", false
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, true
		}
		p.say("> ")
	}
}

// Int prompts and reads an integer, re-prompting on anything else.
func (p *prompter) Int(prompt string) (int, bool) {
	p.say("%s\n> ", prompt)
	for {
		line, ok := p.next()
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return v, true
		}
		p.say("> ")
	}
}

// Amount prompts and reads a decimal amount in the given currency,
// re-prompting on anything that does not parse as a number.
func (p *prompter) Amount(prompt, currency string) (teller.Money, bool) {
	p.say("%s\n> ", prompt)
	for {
		line, ok := p.next()
		if !ok {
			return teller.Money{}, false
		}
		v, err := decimal.NewFromString(strings.TrimSpace(line))
		if err == nil {
			return teller.M(v, currency), true
		}
		p.say("> ")
	}
}
