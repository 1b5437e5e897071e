package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ebrandao/mercadinho"
	"github.com/ebrandao/mercadinho/date"
)

// cancelWord is the sentinel input that abandons the in-progress operation
// and returns to the previous menu.
const cancelWord = "back"

// confirmWord is the literal input required to confirm a deletion.
const confirmWord = "yes"

// errCanceled reports that the user typed the cancel sentinel or that the
// input ended.
var errCanceled = errors.New("canceled")

// prompter reads whitespace-separated input tokens and writes prompts.
//
// Reading tokens rather than whole lines matches the store files: no stored
// value may contain whitespace, so no prompt needs to accept it.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer

	// show renders a markdown listing; plain write to out when nil.
	show func(md string)
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &prompter{in: s, out: w}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) display(md string) {
	if p.show != nil {
		p.show(md)
		return
	}
	fmt.Fprint(p.out, md)
}

// word prompts and reads the next input token. Input exhaustion is reported
// as errCanceled so scripted and piped sessions unwind cleanly.
func (p *prompter) word(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errCanceled
	}
	return p.in.Text(), nil
}

// name reads a token, treating the cancel sentinel as errCanceled.
func (p *prompter) name(prompt string) (string, error) {
	w, err := p.word(prompt)
	if err != nil {
		return "", err
	}
	if w == cancelWord {
		return "", errCanceled
	}
	return w, nil
}

// flag01 reprompts until 0 or 1 is typed.
func (p *prompter) flag01(prompt string) (bool, error) {
	for {
		w, err := p.word(prompt)
		if err != nil {
			return false, err
		}
		switch w {
		case "0":
			return false, nil
		case "1":
			return true, nil
		}
		p.printf("Invalid input. Type 1 for weight or 0 for unit.\n")
	}
}

// money reprompts until the token parses as a decimal amount. Both '.' and
// ',' work as the fractional separator.
func (p *prompter) money(prompt string) (mercadinho.Money, error) {
	for {
		w, err := p.word(prompt)
		if err != nil {
			return mercadinho.Money{}, err
		}
		if m, err := mercadinho.ParseMoney(w); err == nil {
			return m, nil
		}
		p.printf("Invalid input. Enter a numeric value.\n")
	}
}

// quantity reprompts until the token parses as a decimal quantity.
func (p *prompter) quantity(prompt string) (mercadinho.Quantity, error) {
	for {
		w, err := p.word(prompt)
		if err != nil {
			return mercadinho.Quantity{}, err
		}
		if q, err := mercadinho.ParseQuantity(w); err == nil {
			return q, nil
		}
		p.printf("Invalid input. Enter a numeric value.\n")
	}
}

// id reprompts until the token parses as an integer; the cancel sentinel
// aborts with errCanceled. A token that is not a number is a validation
// error, not a "not found": the caller decides what an unknown id means.
func (p *prompter) id(prompt string) (int, error) {
	for {
		w, err := p.word(prompt)
		if err != nil {
			return 0, err
		}
		if w == cancelWord {
			return 0, errCanceled
		}
		if n, err := strconv.Atoi(w); err == nil {
			return n, nil
		}
		p.printf("Invalid input. Enter a number or '%s'.\n", cancelWord)
	}
}

// oneShotID reads a single id attempt: the sentinel or a parse failure gives
// up without retrying, the way the point-of-sale cart prompts behave.
func (p *prompter) oneShotID(prompt string) (int, bool) {
	w, err := p.word(prompt)
	if err != nil || w == cancelWord {
		return 0, false
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		p.printf("Invalid input. Enter a number or '%s'.\n", cancelWord)
		return 0, false
	}
	return n, true
}

// day reprompts until the token parses as a date.
func (p *prompter) day(prompt string) (date.Date, error) {
	for {
		w, err := p.word(prompt)
		if err != nil {
			return date.Date{}, err
		}
		if w == cancelWord {
			return date.Date{}, errCanceled
		}
		if d, err := date.Parse(w); err == nil {
			return d, nil
		}
		p.printf("Invalid date. Use the YYYY-MM-DD format.\n")
	}
}

func idPrompt() string { return fmt.Sprintf("Product id (or '%s'): ", cancelWord) }
