package callq

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the settled result of one stage: either the values the
// stage's completion signal carried, or the error that rejected it.
type Outcome struct {
	id        uuid.UUID
	createdAt time.Time
	values    []any
	err       error
	isSuccess bool
}

func Settle(values ...any) Outcome {
	return Outcome{
		values:    values,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Reject(err error) Outcome {
	return Outcome{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Values returns the completion values in argument-list form.
func (o Outcome) Values() []any {
	return o.values
}

// First returns the first completion value, or nil when the signal
// carried none.
func (o Outcome) First() any {
	if len(o.values) == 0 {
		return nil
	}
	return o.values[0]
}

func (o Outcome) Err() error {
	return o.err
}

func (o Outcome) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome) IsEmpty() bool {
	return o.err == nil && !o.isSuccess
}

func (o Outcome) Id() uuid.UUID {
	return o.id
}
