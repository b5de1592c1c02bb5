package cli

import (
	"bufio"
	"fmt"
	"io"

	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

// Prompter collects player input token by token. Reads block until a
// value arrives; running out of input surfaces as io.EOF and the
// caller treats it like any other failed read.
type Prompter struct {
	scanner *bufio.Scanner
	w       io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &Prompter{scanner: scanner, w: w}
}

func (p *Prompter) readToken() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// PromptCoordinates asks for one board position in LetterDigit form.
func (p *Prompter) PromptCoordinates(label string) (mb.Coordinates, error) {
	fmt.Fprintf(p.w, "%s (format LetterRow, e.g. A5, B3, J9): ", label)

	token, err := p.readToken()
	if err != nil {
		return mb.Coordinates{}, err
	}

	coord, err := mb.ParseCoordinates(token)
	if err != nil {
		return mb.Coordinates{}, err
	}

	fmt.Fprintf(p.w, "Coordinates read: %s (row %d, col %d)\n", coord, coord.Row, coord.Col)
	return coord, nil
}

// PromptOrientation asks for the ship direction letter.
func (p *Prompter) PromptOrientation() (mb.Orientation, error) {
	fmt.Fprintln(p.w, "Ship orientation:")
	fmt.Fprintln(p.w, "  H - horizontal (right)")
	fmt.Fprintln(p.w, "  V - vertical (down)")
	fmt.Fprintln(p.w, "  D - diagonal (down-right)")
	fmt.Fprint(p.w, "Choose (H/V/D): ")

	token, err := p.readToken()
	if err != nil {
		return mb.OrientationHorizontal, err
	}

	o, err := mb.ParseOrientation(token)
	if err != nil {
		return mb.OrientationHorizontal, err
	}

	fmt.Fprintf(p.w, "Orientation selected: %s\n", o)
	return o, nil
}
