package user

// User is a directory entry as fetched from the remote source.
// Values are never edited locally.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Avatar    string
}
