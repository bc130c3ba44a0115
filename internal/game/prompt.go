package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Choice is the player's decision on their turn
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceHit
	ChoiceStand
)

const promptText = "Do you want to hit(h) or stand(s): "

// Prompter asks the player for a decision. ChoiceNone means the answer was
// not understood and the question should be asked again.
type Prompter interface {
	Choose() (Choice, error)
}

// ConsolePrompter reads hit/stand answers line by line
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{in: bufio.NewReader(in), out: out}
}

// Choose prints the prompt and reads one line. Only the first non-blank
// character counts, and only a lowercase 'h' or 's' is accepted.
func (p *ConsolePrompter) Choose() (Choice, error) {
	fmt.Fprint(p.out, promptText)

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return ChoiceNone, err
	}

	return ParseChoice(line), nil
}

// ParseChoice maps an input line to a Choice
func ParseChoice(line string) Choice {
	line = strings.TrimSpace(line)
	if line == "" {
		return ChoiceNone
	}
	switch line[0] {
	case 'h':
		return ChoiceHit
	case 's':
		return ChoiceStand
	default:
		return ChoiceNone
	}
}
