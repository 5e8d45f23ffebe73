package chess

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type Kind uint8

// NoKind is the kind of an empty square.
const (
	NoKind Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

var kindLetters = [...]byte{
	NoKind: '-',
	Pawn:   'P',
	Rook:   'R',
	Knight: 'N',
	Bishop: 'B',
	Queen:  'Q',
	King:   'K',
}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// Piece is a colored chess man. The zero value is Empty.
type Piece struct {
	Color Color
	Kind  Kind
}

var Empty = Piece{}

func W(k Kind) Piece { return Piece{Color: White, Kind: k} }
func B(k Kind) Piece { return Piece{Color: Black, Kind: k} }

func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Code returns the two character sprite code, "wP", "bK", or "--" for Empty.
func (p Piece) Code() string {
	if p.IsEmpty() {
		return "--"
	}
	side := byte('w')
	if p.Color == Black {
		side = 'b'
	}
	return string([]byte{side, kindLetters[p.Kind]})
}

// FEN returns the piece letter used in FEN placement fields.
func (p Piece) FEN() byte {
	if p.IsEmpty() {
		return '1'
	}
	letter := kindLetters[p.Kind]
	if p.Color == Black {
		letter += 'a' - 'A'
	}
	return letter
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Color.String() + " " + p.Kind.String()
}

func pieceFromFEN(c byte) (Piece, bool) {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}
	for k := Pawn; k <= King; k++ {
		if kindLetters[k] == c {
			return Piece{Color: color, Kind: k}, true
		}
	}
	return Empty, false
}
