package model

// indexer interface is design to give a unique SAT variable to a (letter, board) placement and vice versa
type indexer interface {
	// Returns a unique index (starting at 1) for the placement of the letter on the board
	Index(letter, board uint64) uint64
	// Returns the placement represented by a unique index
	Attributes(index uint64) (letter uint64, board uint64)
	// Number of indices handed out
	Variables() uint64
}

func newIndexer(letters, boards uint64) indexer {
	return &indexerImplementation{
		letters: letters,
		boards:  boards,
	}
}
