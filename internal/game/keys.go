package game

import "strings"

// Dir is a logical movement direction. Input is tracked against this closed
// set only, so unrecognized keys can never grow hidden state.
type Dir int

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight

	dirCount
)

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "?"
}

// keyAliases maps lowercase logical key names to directions. Each direction
// has an arrow-key alias and a WASD alias.
var keyAliases = map[string]Dir{
	"arrowup":    DirUp,
	"up":         DirUp,
	"w":          DirUp,
	"arrowdown":  DirDown,
	"down":       DirDown,
	"s":          DirDown,
	"arrowleft":  DirLeft,
	"left":       DirLeft,
	"a":          DirLeft,
	"arrowright": DirRight,
	"right":      DirRight,
	"d":          DirRight,
}

// ParseKey resolves a key name to a direction, matching case-insensitively.
// ok is false for any key outside the alias table.
func ParseKey(name string) (Dir, bool) {
	d, ok := keyAliases[strings.ToLower(name)]
	return d, ok
}

// Keys holds the live pressed state of the four movement directions. It is
// mutated by key events between ticks and only read during a tick.
type Keys struct {
	held [dirCount]bool
}

// KeyDown records a logical key press. Unrecognized keys are ignored.
func (k *Keys) KeyDown(name string) {
	if d, ok := ParseKey(name); ok {
		k.held[d] = true
	}
}

// KeyUp records a logical key release. Unrecognized keys are ignored.
func (k *Keys) KeyUp(name string) {
	if d, ok := ParseKey(name); ok {
		k.held[d] = false
	}
}

func (k *Keys) Press(d Dir) {
	if d >= 0 && d < dirCount {
		k.held[d] = true
	}
}

func (k *Keys) Release(d Dir) {
	if d >= 0 && d < dirCount {
		k.held[d] = false
	}
}

func (k *Keys) Held(d Dir) bool {
	return d >= 0 && d < dirCount && k.held[d]
}

// Reset releases every direction. Called at run start.
func (k *Keys) Reset() {
	k.held = [dirCount]bool{}
}

// Axes folds held directions into a raw direction vector. Contributions are
// additive, so opposing keys cancel to zero on that axis.
func (k *Keys) Axes() (dx, dy float64) {
	if k.held[DirUp] {
		dy--
	}
	if k.held[DirDown] {
		dy++
	}
	if k.held[DirLeft] {
		dx--
	}
	if k.held[DirRight] {
		dx++
	}
	return dx, dy
}
