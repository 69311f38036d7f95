package cassandra

import (
	"github.com/gocql/gocql"

	"github.com/sharedcode/employee"
)

// user is employee.User as marshaled into the frozen "emp" UDT column.
type user employee.User

// MarshalUDT implements gocql.UDTMarshaler. Fields the type does not know about are written as null.
func (u user) MarshalUDT(name string, info gocql.TypeInfo) ([]byte, error) {
	switch name {
	case "name":
		return gocql.Marshal(info, u.Name)
	case "age":
		return gocql.Marshal(info, u.Age)
	}
	return nil, nil
}

// UnmarshalUDT implements gocql.UDTUnmarshaler. Unknown fields are ignored.
func (u *user) UnmarshalUDT(name string, info gocql.TypeInfo, data []byte) error {
	switch name {
	case "name":
		return gocql.Unmarshal(info, data, &u.Name)
	case "age":
		return gocql.Unmarshal(info, data, &u.Age)
	}
	return nil
}
