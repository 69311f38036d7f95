package employee

import "fmt"

// User is the value stored in the frozen "user" column. It is never a row of its own.
// Age maps to CQL int, a 32-bit value.
type User struct {
	Name string `json:"name"`
	Age  int32  `json:"age"`
}

// Row is a record of the employee table, keyed by ID (CQL int).
type Row struct {
	ID   int32 `json:"id"`
	User User  `json:"user"`
}

func (r Row) String() string {
	return fmt.Sprintf("Row{ID: %d, User: {Name: %q, Age: %d}}", r.ID, r.User.Name, r.User.Age)
}
