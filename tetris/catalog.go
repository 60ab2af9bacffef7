package tetris

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// NumKinds is the number of piece kinds in the catalog.
const NumKinds = 7

var kindNames = [NumKinds]string{"I", "J", "L", "O", "S", "T", "Z"}

func (k Kind) String() string {
	if int(k) >= NumKinds {
		return "?"
	}
	return kindNames[k]
}

// Color returns the cell value a locked piece of this kind leaves on the board.
func (k Kind) Color() Cell {
	return Cell(k) + 1
}

// Offset is a signed displacement on the board grid.
type Offset struct {
	X, Y int
}

// KickMode tags which shape of wall-kick table a piece uses.
type KickMode uint8

const (
	// KickStandard tests five candidate offsets per rotation.
	KickStandard KickMode = iota
	// KickSimple tests a single offset and only keeps the piece centered.
	KickSimple
)

const maxKickTests = 5

// KickTable holds per-rotation-state offsets for the Super Rotation System.
// Offsets are stored with X inverted to match the board's mirrored x axis.
type KickTable struct {
	mode    KickMode
	offsets [4][maxKickTests]Offset
}

// StandardKicks builds a five-test table, one row per rotation state.
func StandardKicks(rows [4][maxKickTests]Offset) KickTable {
	return KickTable{mode: KickStandard, offsets: rows}
}

// SimpleKicks builds a single-test table, one offset per rotation state.
func SimpleKicks(rows [4]Offset) KickTable {
	t := KickTable{mode: KickSimple}
	for state, off := range rows {
		t.offsets[state][0] = off
	}
	return t
}

// Mode reports which variant the table is.
func (t KickTable) Mode() KickMode {
	return t.mode
}

// Tests returns how many candidate positions a rotation tries.
func (t KickTable) Tests() int {
	if t.mode == KickSimple {
		return 1
	}
	return maxKickTests
}

// Offset returns the raw offset for a rotation state and test index.
func (t KickTable) Offset(state Rotation, test int) Offset {
	return t.offsets[state&3][test]
}

// Candidate returns the translation applied when rotating from one state to
// another on the given test.
func (t KickTable) Candidate(from, to Rotation, test int) Offset {
	a := t.Offset(from, test)
	b := t.Offset(to, test)
	return Offset{X: a.X - b.X, Y: a.Y - b.Y}
}

// Template is the static definition of a piece kind.
type Template struct {
	Kind  Kind
	Side  int
	Shape []Cell
	// Spawn is added to the board's spawn origin.
	Spawn Offset
	Kicks KickTable
}

var jlstzKicks = StandardKicks([4][maxKickTests]Offset{
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
})

var iKicks = StandardKicks([4][maxKickTests]Offset{
	{{0, 0}, {1, 0}, {-2, 0}, {1, 0}, {-2, 0}},
	{{1, 0}, {0, 0}, {0, 0}, {0, 1}, {0, -2}},
	{{1, 1}, {-1, 1}, {2, 1}, {-1, 0}, {2, 0}},
	{{0, 1}, {0, 1}, {0, 1}, {0, -1}, {0, 2}},
})

var oKicks = SimpleKicks([4]Offset{
	{0, 0},
	{0, -1},
	{1, -1},
	{1, 0},
})

var catalog = [NumKinds]Template{
	KindI: {
		Kind: KindI,
		Side: 5,
		Shape: []Cell{
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
			0, 1, 1, 1, 1,
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
		},
		Spawn: Offset{1, 2},
		Kicks: iKicks,
	},
	KindJ: {
		Kind: KindJ,
		Side: 3,
		Shape: []Cell{
			2, 0, 0,
			2, 2, 2,
			0, 0, 0,
		},
		Kicks: jlstzKicks,
	},
	KindL: {
		Kind: KindL,
		Side: 3,
		Shape: []Cell{
			0, 0, 3,
			3, 3, 3,
			0, 0, 0,
		},
		Kicks: jlstzKicks,
	},
	KindO: {
		Kind: KindO,
		Side: 3,
		Shape: []Cell{
			0, 4, 4,
			0, 4, 4,
			0, 0, 0,
		},
		Kicks: oKicks,
	},
	KindS: {
		Kind: KindS,
		Side: 3,
		Shape: []Cell{
			0, 5, 5,
			5, 5, 0,
			0, 0, 0,
		},
		Kicks: jlstzKicks,
	},
	KindT: {
		Kind: KindT,
		Side: 3,
		Shape: []Cell{
			0, 6, 0,
			6, 6, 6,
			0, 0, 0,
		},
		Kicks: jlstzKicks,
	},
	KindZ: {
		Kind: KindZ,
		Side: 3,
		Shape: []Cell{
			7, 7, 0,
			0, 7, 7,
			0, 0, 0,
		},
		Kicks: jlstzKicks,
	},
}

// Lookup returns the template for a kind. The shape slice is shared and must
// not be modified.
func Lookup(k Kind) Template {
	return catalog[int(k)%NumKinds]
}

// SpawnOrigin is the anchor a 3-wide piece spawns at on a board of the
// given size.
func SpawnOrigin(width, height int) Offset {
	return Offset{X: width/2 + 1, Y: height - 2}
}

// SpawnPoint returns where a freshly spawned piece of kind k is anchored.
func SpawnPoint(k Kind, width, height int) (x, y int) {
	origin := SpawnOrigin(width, height)
	spawn := Lookup(k).Spawn
	return origin.X + spawn.X, origin.Y + spawn.Y
}
