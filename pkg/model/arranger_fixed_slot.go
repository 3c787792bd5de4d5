package model

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

type fixedSlotArranger struct {
	grouper LetterGrouper
	logger  *zap.Logger
}

// NewFixedSlotArranger treats every class label as its own (year, letter) slot, hence it only detects conflicts.
// The grouper is consulted only when the roster's alphabet has more letters than a board has columns.
func NewFixedSlotArranger(grouper LetterGrouper, logger *zap.Logger) Arranger {
	if grouper == nil {
		grouper = NewGreedyGrouper()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &fixedSlotArranger{
		grouper: grouper,
		logger:  logger,
	}
}

func (arranger *fixedSlotArranger) Arrange(ctx context.Context, roster Roster) (Arrangement, error) {
	if err := ctx.Err(); err != nil {
		return Arrangement{}, err
	}

	//** Decide the letters of each board
	var groups [][]Letter
	if letters := alphabet(roster.Letters); len(letters) <= Columns {
		groups = [][]Letter{letters}
	} else {
		var err error
		groups, err = arranger.grouper.Group(roster.PresentLetters(), LetterConflicts(roster))
		if err != nil {
			return Arrangement{}, fmt.Errorf("cannot group letters into boards: %w", err)
		}
		arranger.logger.Debug("letters grouped into boards", zap.Int("boards", len(groups)), zap.Any("groups", groups))
	}

	//** Place every section into its letter's column
	boards := make([]Board, 0, len(groups))
	for i, group := range groups {
		if len(group) > Columns {
			return Arrangement{}, fmt.Errorf("board %d holds %d letters, at most %d are allowed", i+1, len(group), Columns)
		}
		boards = append(boards, newBoard(i+1, group))
	}

	for _, section := range roster.Sections {
		placed := false
		for i := range boards {
			if column := slices.Index(boards[i].Letters[:], section.Letter); column >= 0 {
				boards[i].place(section, column)
				placed = true
				break
			}
		}
		if !placed {
			return Arrangement{}, fmt.Errorf("letter %v of section %v is not assigned to any board", section.Letter, section)
		}
	}

	//** Detect row conflicts
	conflicts := make([]ConflictEdge, 0)
	for _, board := range boards {
		conflicts = append(conflicts, boardConflicts(roster, board)...)
	}
	sortConflicts(conflicts)

	arranger.logger.Debug("fixed-slot arrangement built",
		zap.Int("sections", len(roster.Sections)),
		zap.Int("conflicts", len(conflicts)),
	)

	return Arrangement{
		Mode:         FixedSlot,
		Boards:       boards,
		Conflicts:    conflicts,
		Unplaced:     []Section{},
		HasConflicts: len(conflicts) > 0,
	}, nil
}

func (arranger *fixedSlotArranger) Verify(arrangement Arrangement, roster Roster) bool {
	return verify(arrangement, roster)
}
