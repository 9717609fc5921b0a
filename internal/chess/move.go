package chess

// Move is one of the six move kinds below. The set is closed: only types in
// this package implement it.
type Move interface {
	isMove()
}

// RegularMove moves a non-pawn piece to an empty square.
type RegularMove struct {
	From  Coordinate
	To    Coordinate
	Piece PieceType
}

// AttackMove moves a non-pawn piece onto an opposing piece, capturing it.
type AttackMove struct {
	From  Coordinate
	To    Coordinate
	Piece PieceType
}

// PawnMove advances a pawn one or two squares along its file.
type PawnMove struct {
	From   Coordinate
	ToRank Rank
}

// PawnAttackMove captures diagonally with the pawn on FromFile.
// The origin rank is the rank behind To from the mover's point of view.
type PawnAttackMove struct {
	FromFile File
	To       Coordinate
}

// PawnPromotion advances the mover's pawn on File from its seventh rank to
// its last rank, replacing it with Promotion.
type PawnPromotion struct {
	File      File
	Promotion PieceType
}

// Castle moves the king two squares towards a rook and the rook over it.
type Castle struct {
	Kingside bool
}

func (RegularMove) isMove()    {}
func (AttackMove) isMove()     {}
func (PawnMove) isMove()       {}
func (PawnAttackMove) isMove() {}
func (PawnPromotion) isMove()  {}
func (Castle) isMove()         {}
