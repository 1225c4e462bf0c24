package model

import "strings"

// Tile is one step of a path through the grid
type Tile struct {
	Row    int  `json:"row"`
	Col    int  `json:"col"`
	Letter rune `json:"letter"`
}

// Position returns the grid coordinates of the tile
func (t Tile) Position() Position {
	return Position{Row: t.Row, Col: t.Col}
}

// Path is an ordered sequence of tiles. During a search it is used as a
// stack: tiles are pushed on descent and popped on backtrack.
type Path struct {
	tiles []Tile
}

// NewPath creates an empty path with room for capacity tiles
func NewPath(capacity int) *Path {
	return &Path{tiles: make([]Tile, 0, capacity)}
}

// Push appends a tile to the end of the path
func (p *Path) Push(t Tile) {
	p.tiles = append(p.tiles, t)
}

// Pop removes and returns the last tile. Popping an empty path returns the zero Tile.
func (p *Path) Pop() Tile {
	if len(p.tiles) == 0 {
		return Tile{}
	}
	last := p.tiles[len(p.tiles)-1]
	p.tiles = p.tiles[:len(p.tiles)-1]
	return last
}

// Len returns the number of tiles on the path
func (p *Path) Len() int {
	return len(p.tiles)
}



// Contains reports whether pos is already on the path
func (p *Path) Contains(pos Position) bool {
	for _, t := range p.tiles {
		if t.Row == pos.Row && t.Col == pos.Col {
			return true
		}
	}
	return false
}

// Word concatenates the letters along the path
func (p *Path) Word() string {
	var sb strings.Builder
	sb.Grow(len(p.tiles))
	for _, t := range p.tiles {
		sb.WriteRune(t.Letter)
	}
	return sb.String()
}

// Tiles returns an independent copy of the tiles on the path
func (p *Path) Tiles() []Tile {
	out := make([]Tile, len(p.tiles))
	copy(out, p.tiles)
	return out
}
