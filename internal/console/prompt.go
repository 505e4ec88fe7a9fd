package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

// prompter reads operator input line by line. Every read returns io.EOF
// once the input is exhausted, which ends the shell.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	styles  styles
}

func newPrompter(in io.Reader, out io.Writer, st styles) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out, styles: st}
}

func (p *prompter) invalid(msg string) {
	fmt.Fprintln(p.out, p.styles.failure.Render("[ERROR]")+" "+msg)
}

// ReadString returns the trimmed line, possibly empty.
func (p *prompter) ReadString(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompter) ReadNonEmpty(prompt string) (string, error) {
	for {
		value, err := p.ReadString(prompt)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		p.invalid("The field cannot be empty.")
	}
}

// ReadOptionalString maps empty input to an invalid Null.
func (p *prompter) ReadOptionalString(prompt string) (datatypes.Null[string], error) {
	value, err := p.ReadString(prompt)
	if err != nil || value == "" {
		return datatypes.Null[string]{}, err
	}
	return datatypes.NewNull(value), nil
}

// ReadInt re-prompts until it gets a whole number within [min, max].
func (p *prompter) ReadInt(prompt string, min, max int64) (int64, error) {
	for {
		value, err := p.ReadString(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			p.invalid("Invalid input. Enter a whole number.")
			continue
		}
		if n < min || n > max {
			p.invalid(fmt.Sprintf("Value must be between %d and %d.", min, max))
			continue
		}
		return n, nil
	}
}

// ReadID reads a positive identifier.
func (p *prompter) ReadID(prompt string) (int64, error) {
	for {
		value, err := p.ReadString(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n <= 0 {
			p.invalid("Invalid input. Enter a positive ID.")
			continue
		}
		return n, nil
	}
}

// ReadOptionalInt accepts empty input as "no value" and otherwise a whole
// number within [min, max].
func (p *prompter) ReadOptionalInt(prompt string, min, max int64) (datatypes.Null[int64], error) {
	for {
		value, err := p.ReadString(prompt)
		if err != nil || value == "" {
			return datatypes.Null[int64]{}, err
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			p.invalid("Invalid input.")
			continue
		}
		if n < min || n > max {
			p.invalid(fmt.Sprintf("Value must be between %d and %d.", min, max))
			continue
		}
		return datatypes.NewNull(n), nil
	}
}

func (p *prompter) ReadOptionalFloat(prompt string) (datatypes.Null[float64], error) {
	for {
		value, err := p.ReadString(prompt)
		if err != nil || value == "" {
			return datatypes.Null[float64]{}, err
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			p.invalid("Invalid input. Enter a number.")
			continue
		}
		return datatypes.NewNull(f), nil
	}
}

func (p *prompter) ReadYesNo(prompt string) (bool, error) {
	for {
		value, err := p.ReadString(prompt + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(value) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.invalid("Enter y (yes) or n (no).")
	}
}

// ReadIDList parses comma separated ids. Entries that are not positive
// integers are skipped with a warning; duplicates are kept for the store
// to collapse.
func (p *prompter) ReadIDList(prompt string) ([]int64, error) {
	value, err := p.ReadString(prompt)
	if err != nil || value == "" {
		return nil, err
	}

	return parseIDList(value, func(bad string) {
		fmt.Fprintln(p.out, p.styles.warning.Render("[WARNING]")+" Skipped invalid ID: "+bad)
	}), nil
}

func parseIDList(value string, skipped func(string)) []int64 {
	var ids []int64
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil || n <= 0 {
			skipped(part)
			continue
		}
		ids = append(ids, n)
	}
	return ids
}
