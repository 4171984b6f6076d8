package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBatchName(t *testing.T) {
	batch := &Batch{
		Receiver:   "COOPERATIVA EJEMPLO",
		CardNumber: "0000123456",
		DateFrom:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DateTo:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "COOPERATIVA EJEMPLO-0000123456@(2024-03-01/2024-03-31)", batch.Name())
}

func TestMoveDescription(t *testing.T) {
	move := Move{Description1: "ABC", Description2: "DEF"}
	assert.Equal(t, "ABC - DEF", move.Description())

	move = Move{Description1: "", Description2: "DEF"}
	assert.Equal(t, "DEF", move.Description())
}
