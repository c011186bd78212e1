package state

import (
	"time"

	"github.com/google/uuid"
)

func newSelection(hex string, seq uint64) Selection {
	return Selection{
		ID:   uuid.New(),
		Seq:  seq,
		Hex:  hex,
		Time: time.Now(),
	}
}
