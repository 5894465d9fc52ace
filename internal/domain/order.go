package domain

// Mode tells how an order is fulfilled.
type Mode int

const (
	FixedQuantity Mode = iota
	CommentList
)

func (m Mode) String() string {
	if m == CommentList {
		return "comments"
	}
	return "quantity"
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ServiceOrderSpec is one orderable catalog entry.
// Quantity is set only for FixedQuantity entries.
type ServiceOrderSpec struct {
	Key         string `json:"key"`
	DisplayName string `json:"name"`
	ServiceID   int64  `json:"service_id"`
	Panel       Panel  `json:"panel"`
	Mode        Mode   `json:"mode"`
	Quantity    int    `json:"quantity,omitempty"`
}

// Result is the classified panel response: either Success or Failure.
type Result interface {
	isResult()
}

type Success struct {
	OrderID any
}

type Failure struct {
	Detail any
}

func (Success) isResult() {}
func (Failure) isResult() {}

// OrderOutcome is the result of one request/response cycle.
type OrderOutcome struct {
	Spec   ServiceOrderSpec
	Raw    any
	Result Result
}

func (o OrderOutcome) Succeeded() bool {
	_, ok := o.Result.(Success)
	return ok
}

// OrderOrError returns the order id on success, the raw response otherwise.
func (o OrderOutcome) OrderOrError() any {
	switch r := o.Result.(type) {
	case Success:
		return r.OrderID
	case Failure:
		return r.Detail
	}
	return o.Raw
}
