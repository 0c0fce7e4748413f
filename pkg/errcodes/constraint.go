package errcodes

import "fmt"

// ConstraintKind distinguishes the store constraints that can reject a write.
type ConstraintKind int

const (
	UniqueViolation ConstraintKind = iota + 1
	ForeignKeyViolation
)

func (k ConstraintKind) String() string {
	switch k {
	case UniqueViolation:
		return "unique"
	case ForeignKeyViolation:
		return "foreign key"
	default:
		return "unknown"
	}
}

// ConstraintError is returned by the store when the database itself rejected
// a write. Constraint is the schema name of the violated constraint when the
// driver reports it, empty otherwise.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("%s constraint violated: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s constraint %q violated: %v", e.Kind, e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}
