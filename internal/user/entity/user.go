// Package entity defines the user directory's domain values.
package entity

// User is one directory entry. Username is the lookup key, unique within a
// single collection build. Instances are immutable value carriers.
type User struct {
	Username string
	Email    string
}
