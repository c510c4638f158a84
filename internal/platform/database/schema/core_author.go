package schema

import "strings"

// AuthorTable represents the 'core.author' table
type AuthorTable struct {
	Table     string
	ID        string
	Name      string
	NameAlt   string
	Bio       string
	ImageURL  string
	UserID    string
	CreatedAt string
	UpdatedAt string
}

// Author is the schema definition for core.author
var Author = AuthorTable{
	Table:     "core.author",
	ID:        "id",
	Name:      "name",
	NameAlt:   "namealt",
	Bio:       "bio",
	ImageURL:  "imageurl",
	UserID:    "userid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns lists every column in scan order.
func (t AuthorTable) Columns() []string {
	return []string{t.ID, t.Name, t.NameAlt, t.Bio, t.ImageURL, t.UserID, t.CreatedAt, t.UpdatedAt}
}

// SelectList renders Columns as a comma-separated SELECT list.
func (t AuthorTable) SelectList() string {
	return strings.Join(t.Columns(), ", ")
}
