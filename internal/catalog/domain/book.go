package domain

// Review is a single user's opinion on a book. A book holds at most one
// review per username.
type Review struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// Book is a catalog record. ISBN is the immutable primary key; Reviews
// preserves insertion order.
type Book struct {
	ISBN    string   `json:"ISBN"`
	Title   string   `json:"title"`
	Author  string   `json:"author"`
	Reviews []Review `json:"reviews"`
}
