package entity

// TodoList belongs to exactly one user; (Title, UserID) is unique.
type TodoList struct {
	ID     int
	Title  string
	UserID int
}

// Task belongs to exactly one list. Deleting the list deletes its tasks.
type Task struct {
	ID     int
	Text   string
	Done   bool
	ListID int
}
