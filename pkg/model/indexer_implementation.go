package model

type indexerImplementation struct {
	letters uint64
	boards  uint64
}

func (indexer *indexerImplementation) Index(letter, board uint64) uint64 {
	return letter + indexer.letters*board + 1
}

func (indexer *indexerImplementation) Attributes(index uint64) (letter, board uint64) {
	index = index - 1
	letter = index % indexer.letters
	index = index / indexer.letters

	board = index % indexer.boards

	return letter, board
}

func (indexer *indexerImplementation) Variables() uint64 {
	return indexer.letters * indexer.boards
}
