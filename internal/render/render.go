// Package render draws boards as text, one column per stack.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/patience/internal/board"
	"github.com/arcanaland/patience/internal/card"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

const gap = 2

// Style colours a card label.
type Style interface {
	Sprint(a ...any) string
}

// Palette assigns a style to each suit. Suits without an entry are drawn plain.
type Palette[S card.Suit] map[S]Style

// Options control how a board is drawn.
type Options struct {
	Color bool
	Width int // columns available; zero means DefaultWidth
}

var namedColors = map[string]colorize.Attribute{
	"black":     colorize.FgBlack,
	"red":       colorize.FgRed,
	"green":     colorize.FgGreen,
	"yellow":    colorize.FgYellow,
	"blue":      colorize.FgBlue,
	"magenta":   colorize.FgMagenta,
	"cyan":      colorize.FgCyan,
	"white":     colorize.FgWhite,
	"hiblack":   colorize.FgHiBlack,
	"hired":     colorize.FgHiRed,
	"higreen":   colorize.FgHiGreen,
	"hiyellow":  colorize.FgHiYellow,
	"hiblue":    colorize.FgHiBlue,
	"himagenta": colorize.FgHiMagenta,
	"hicyan":    colorize.FgHiCyan,
	"hiwhite":   colorize.FgHiWhite,
}

// trueColor emits a 24-bit foreground escape.
type trueColor struct {
	r, g, b uint8
}

func (c trueColor) Sprint(a ...any) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", c.r, c.g, c.b, fmt.Sprint(a...))
}

// ParseStyle turns a colour name such as "red" or "hiblue", or a hex colour
// such as "#2e8b57", into a Style.
func ParseStyle(spec string) (Style, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if strings.HasPrefix(spec, "#") {
		c, err := colorful.Hex(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid hex colour %q: %w", spec, err)
		}
		r, g, b := c.RGB255()
		return trueColor{r: r, g: g, b: b}, nil
	}
	attr, ok := namedColors[spec]
	if !ok {
		return nil, fmt.Errorf("unknown colour %q", spec)
	}
	c := colorize.New(attr)
	c.EnableColor()
	return c, nil
}

// TerminalWidth returns the width of the terminal on fd, or DefaultWidth.
func TerminalWidth(fd int) int {
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// Label returns the card's label, coloured by its suit when a style exists.
func Label[R card.Rank, S card.Suit](c card.Card[R, S], palette Palette[S], colour bool) string {
	label := c.String()
	if !colour {
		return label
	}
	if style, ok := palette[c.Suit]; ok && style != nil {
		return style.Sprint(label)
	}
	return label
}

// Board writes b to w. Columns that do not fit in the width wrap into
// further bands below.
func Board[R card.Rank, S card.Suit](w io.Writer, b *board.Board[R, S], palette Palette[S], opts Options) error {
	stacks := b.Stacks()
	if len(stacks) == 0 {
		return nil
	}

	cell := utf8.RuneCountInString(strconv.Itoa(len(stacks) - 1))
	for _, s := range stacks {
		for _, c := range s {
			cell = max(cell, utf8.RuneCountInString(c.String()))
		}
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	perBand := max(1, (width+gap)/(cell+gap))

	var sb strings.Builder
	for start := 0; start < len(stacks); start += perBand {
		end := min(start+perBand, len(stacks))
		if start > 0 {
			sb.WriteString("\n")
		}

		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, pad(strconv.Itoa(i), strconv.Itoa(i), cell))
		}
		writeLine(&sb, cells)

		depth := 0
		for _, s := range stacks[start:end] {
			depth = max(depth, len(s))
		}
		for row := 0; row < depth; row++ {
			cells = cells[:0]
			for _, s := range stacks[start:end] {
				if row >= len(s) {
					cells = append(cells, strings.Repeat(" ", cell))
					continue
				}
				c := s[row]
				cells = append(cells, pad(Label(c, palette, opts.Color), c.String(), cell))
			}
			writeLine(&sb, cells)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func pad(text, plain string, width int) string {
	return text + strings.Repeat(" ", width-utf8.RuneCountInString(plain))
}

func writeLine(sb *strings.Builder, cells []string) {
	line := strings.Join(cells, strings.Repeat(" ", gap))
	sb.WriteString(strings.TrimRight(line, " "))
	sb.WriteString("\n")
}
