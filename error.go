package employee

import "fmt"

type ErrorCode int

const (
	Unknown ErrorCode = iota
	// ConnectionFailure means the cluster session could not be created.
	ConnectionFailure
	// SchemaFailure covers keyspace, type and table DDL.
	SchemaFailure
	// WriteFailure covers insert, update and delete.
	WriteFailure
	// ReadFailure covers select.
	ReadFailure
)

var errorCodeNames = map[ErrorCode]string{
	Unknown:           "unknown",
	ConnectionFailure: "connection failure",
	SchemaFailure:     "schema failure",
	WriteFailure:      "write failure",
	ReadFailure:       "read failure",
}

func (c ErrorCode) String() string {
	if n, ok := errorCodeNames[c]; ok {
		return n
	}
	return fmt.Sprintf("error code %d", int(c))
}

// Employee CRUD custom error.
type Error struct {
	Code     ErrorCode
	Err      error
	UserData any
}

func (e Error) Error() string {
	return fmt.Errorf("error code: %d (%v), user data: %v, details: %w", int(e.Code), e.Code, e.UserData, e.Err).Error()
}

func (e Error) Unwrap() error {
	return e.Err
}
