package game

import (
	"errors"
	"fmt"
)

// sentinel errors returned to the acting player. None of them mutate game state
var (
	ErrNotPlayersTurn   = errors.New("not your turn")
	ErrCardNotInHand    = errors.New("card not found in your hand")
	ErrMustFollowSuit   = errors.New("you must follow the led suit")
	ErrNotAuctionWinner = errors.New("only the auction winner can do that")
	ErrInvalidSuit      = errors.New("invalid suit")
	ErrBidTooHigh       = errors.New("a bid cannot exceed 250")
	ErrNoCard           = errors.New("no card provided")
	ErrNoPartnerCards   = errors.New("you must name at least one partner card")
	ErrPlayerNotFound   = errors.New("player is not in this game")
)

// PlayerCountError is an error when a game is started with too few players
type PlayerCountError struct {
	Min int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected at least %d players, got %d", p.Min, p.Got)
}

// WrongStageError is an error when an action arrives in the wrong stage
type WrongStageError struct {
	Want Stage
	Got  Stage
}

func (w WrongStageError) Error() string {
	return fmt.Sprintf("expected stage %s, the game is in stage %s", w.Want, w.Got)
}
