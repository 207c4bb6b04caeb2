package crud

// Op names a store-changing operation.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Outcome is how an operation attempt ended.
type Outcome string

const (
	OutcomeCommitted Outcome = "committed" // store changed
	OutcomeRejected  Outcome = "rejected"  // failed validation
	OutcomeCancelled Outcome = "cancelled" // user backed out
	OutcomeFailed    Outcome = "failed"    // backend error
)

// Observer is told about every create, update, and delete attempt a Page
// handles. internal/metrics counts them.
type Observer interface {
	Observe(entity string, op Op, outcome Outcome)
}

type nopObserver struct{}

func (nopObserver) Observe(string, Op, Outcome) {}
