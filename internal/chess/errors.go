package chess

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrNoMatchingPiece   = errors.New("no matching piece")
	ErrIllegalMove       = errors.New("illegal move")
	ErrInvalidMove       = errors.New("invalid move notation")
	ErrInvalidPlacement  = errors.New("invalid placement")

	// ErrConsistencyViolation 棋盘自身不变量被破坏，属于引擎缺陷，不是用户错误。
	ErrConsistencyViolation = errors.New("consistency violation")
)

// ConsistencyError 某格上有不止一个在场棋子
type ConsistencyError struct {
	Square Square
	Count  int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%v: square %s occupied %d times", ErrConsistencyViolation, e.Square, e.Count)
}

func (e *ConsistencyError) Unwrap() error { return ErrConsistencyViolation }
