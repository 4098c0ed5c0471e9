package service

import (
	"time"

	"github.com/google/uuid"
)

// newRecordStamp assigns the identity of a new record: a random uuid4 in
// canonical form and the current UTC instant. Called exactly once per create,
// before persistence.
func newRecordStamp() (string, time.Time) {
	return uuid.NewString(), time.Now().UTC()
}
