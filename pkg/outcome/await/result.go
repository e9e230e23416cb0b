package await

import (
	json "github.com/goccy/go-json"

	"github.com/311ecode/await-me-go/pkg/outcome"
)

// Result folds a settlement into one value: Success tells which of Data
// and Err is meaningful. Data keeps its type, so a successful false or
// zero value never collapses into the failure shape.
type Result[T any] struct {
	Success bool
	Data    T
	Err     error
}

// ResultFrom converts an already-settled outcome without re-running the
// operation.
func ResultFrom[T any](o outcome.Settled[T]) Result[T] {
	if o.IsSuccess() {
		return Result[T]{Success: true, Data: o.Value()}
	}
	return Result[T]{Success: false, Err: o.Reason()}
}

// MarshalJSON encodes as {"success":..,"data":..,"error":..} with data
// null on failure and error null on success.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	type payload struct {
		Success bool `json:"success"`
		Data    any  `json:"data"`
		Error   any  `json:"error"`
	}
	p := payload{Success: r.Success}
	if r.Success {
		p.Data = r.Data
	}
	if r.Err != nil {
		p.Error = r.Err.Error()
	}
	return json.Marshal(p)
}

func (r Result[T]) String() string {
	b, err := r.MarshalJSON()
	if err != nil {
		return "result: unencodable"
	}
	return string(b)
}
