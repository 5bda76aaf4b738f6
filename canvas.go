package main

import (
	"math"
	"strings"

	"cardboard/internal/board"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellConnector
	cellCard
	cellSelected
	cellConnecting
	cellRect
)

var (
	connectorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cardStyle       = lipgloss.NewStyle()
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	connectingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	rectStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

func styleFor(kind cellKind) (lipgloss.Style, bool) {
	switch kind {
	case cellConnector:
		return connectorStyle, true
	case cellCard:
		return cardStyle, false
	case cellSelected:
		return selectedStyle, true
	case cellConnecting:
		return connectingStyle, true
	case cellRect:
		return rectStyle, true
	}
	return cardStyle, false
}

// Canvas rasterises an engine view onto terminal cells.
type Canvas struct {
	width  int
	height int
	panX   int
	panY   int
	runes  [][]rune
	kinds  [][]cellKind
}

func NewCanvas(width, height, panX, panY int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{width: width, height: height, panX: panX, panY: panY}
	c.runes = make([][]rune, height)
	c.kinds = make([][]cellKind, height)
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", width))
		c.kinds[y] = make([]cellKind, width)
	}
	return c
}

// Draw paints connectors first so cards occlude them, then cards in list
// order, then the selection rectangle.
func (c *Canvas) Draw(v board.View) {
	for _, p := range v.Connectors {
		c.drawConnector(p)
	}
	for _, card := range v.Cards {
		c.drawCard(card)
	}
	if v.SelectionRect != nil {
		c.drawSelectionRect(*v.SelectionRect)
	}
}

// Lines returns the raster without styling.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y, row := range c.runes {
		lines[y] = string(row)
	}
	return lines
}

// Render returns the raster with runs of equal kind styled.
func (c *Canvas) Render() []string {
	lines := make([]string, c.height)
	for y := range c.runes {
		var b strings.Builder
		start := 0
		for x := 1; x <= c.width; x++ {
			if x < c.width && c.kinds[y][x] == c.kinds[y][start] {
				continue
			}
			run := string(c.runes[y][start:x])
			if style, ok := styleFor(c.kinds[y][start]); ok {
				run = style.Render(run)
			}
			b.WriteString(run)
			start = x
		}
		lines[y] = b.String()
	}
	return lines
}

func (c *Canvas) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x/cellWidth)) - c.panX, int(math.Floor(y/cellHeight)) - c.panY
}

func (c *Canvas) isValidPos(x, y int) bool {
	return y >= 0 && y < c.height && x >= 0 && x < c.width
}

func (c *Canvas) set(x, y int, r rune, kind cellKind) {
	if !c.isValidPos(x, y) {
		return
	}
	c.runes[y][x] = r
	c.kinds[y][x] = kind
}

func (c *Canvas) drawConnector(p board.Path) {
	length := distance(p.Start, p.Control1) + distance(p.Control1, p.Control2) + distance(p.Control2, p.End)
	steps := int(length/(cellWidth/2)) + 2
	for i := 0; i <= steps; i++ {
		pt := p.At(float64(i) / float64(steps))
		x, y := c.cellOf(pt.X, pt.Y)
		c.set(x, y, '·', cellConnector)
	}
}

func distance(a, b board.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// cardCells returns the inclusive cell box covering a screen rect.
func (c *Canvas) cardCells(r board.Rect) (left, top, right, bottom int) {
	left, top = c.cellOf(r.X, r.Y)
	right = int(math.Ceil(r.Right()/cellWidth)) - 1 - c.panX
	bottom = int(math.Ceil(r.Bottom()/cellHeight)) - 1 - c.panY
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	return left, top, right, bottom
}

func (c *Canvas) drawCard(card board.CardView) {
	left, top, right, bottom := c.cardCells(card.Bounds)

	kind := cellCard
	corner, horizontal, vertical := '+', '-', '|'
	switch {
	case card.Connecting:
		kind = cellConnecting
		corner, horizontal, vertical = '*', '*', '*'
	case card.Selected:
		kind = cellSelected
		corner, horizontal, vertical = '#', '#', '#'
	}

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			switch {
			case (y == top || y == bottom) && (x == left || x == right):
				c.set(x, y, corner, kind)
			case y == top || y == bottom:
				c.set(x, y, horizontal, kind)
			case x == left || x == right:
				c.set(x, y, vertical, kind)
			default:
				c.set(x, y, ' ', cellCard)
			}
		}
	}

	inner := right - left - 1
	if inner <= 2 {
		return
	}
	if card.Title != "" && inner > 3 {
		title := " " + truncate.String(card.Title, uint(inner-3)) + " "
		for i, r := range []rune(title) {
			c.set(left+2+i, top, r, kind)
		}
	}

	maxLines := bottom - top - 1
	if maxLines <= 0 || card.Text == "" {
		return
	}
	lines := strings.Split(wordwrap.String(card.Text, inner), "\n")
	for i, line := range lines {
		if i >= maxLines {
			break
		}
		for j, r := range []rune(truncate.String(line, uint(inner))) {
			c.set(left+1+j, top+1+i, r, cellCard)
		}
	}
}

func (c *Canvas) drawSelectionRect(r board.Rect) {
	left, top, right, bottom := c.cardCells(r)
	for x := left; x <= right; x++ {
		c.set(x, top, '.', cellRect)
		c.set(x, bottom, '.', cellRect)
	}
	for y := top + 1; y < bottom; y++ {
		c.set(left, y, ':', cellRect)
		c.set(right, y, ':', cellRect)
	}
}
