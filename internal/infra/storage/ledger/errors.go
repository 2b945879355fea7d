package ledger

import "errors"

var (
	// ErrSlotAlreadyTaken возвращается, когда слот уже закреплен за другим бронированием
	ErrSlotAlreadyTaken = errors.New("booking.ledger: slot already taken")
)
