package domain

// User is a read-only projection of an account.
// Account management itself is owned by a separate service; the scheduler
// only resolves names for day views and addresses for notifications.
type User struct {
	ID    int64
	Name  string
	Email string
	Role  Role
}
