package core

import "unicode/utf8"

// Sprite is a block of text drawn with a single color.
type Sprite struct {
	Rows  []string
	Color Color
}

// Width returns the widest row in runes.
func (s Sprite) Width() int {
	w := 0
	for _, r := range s.Rows {
		w = Max(w, utf8.RuneCountInString(r))
	}
	return w
}

// Height returns the number of rows.
func (s Sprite) Height() int {
	return len(s.Rows)
}

// Empty reports whether the sprite has nothing to draw.
func (s Sprite) Empty() bool {
	return s.Width() == 0
}

var mirrored = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
	'/': '\\', '\\': '/',
	'▌': '▐', '▐': '▌',
	'◀': '▶', '▶': '◀',
	'╭': '╮', '╮': '╭',
	'╰': '╯', '╯': '╰',
}

// Mirror returns the sprite flipped horizontally. Rows are padded to the
// sprite width first so the flip keeps columns aligned.
func (s Sprite) Mirror() Sprite {
	w := s.Width()
	out := Sprite{Rows: make([]string, len(s.Rows)), Color: s.Color}
	for i, row := range s.Rows {
		runes := []rune(row)
		for len(runes) < w {
			runes = append(runes, ' ')
		}
		flipped := make([]rune, w)
		for j, r := range runes {
			if m, ok := mirrored[r]; ok {
				r = m
			}
			flipped[w-1-j] = r
		}
		out.Rows[i] = string(flipped)
	}
	return out
}

// Draw copies the sprite onto the screen with (x, y) as its top-left corner.
func (s Sprite) Draw(dst *Screen, x, y int) {
	dst.DrawSprite(x, y, s.Rows, s.Color)
}
