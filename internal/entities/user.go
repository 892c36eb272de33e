// Package entities contains core business entities.
package entities

// User is a domain representation of an account.
// PasswordHash is an opaque credential and must never be logged or serialized.
type User struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string
	Token        string
}
