package author

import (
	"strconv"
	"time"
)

// EntityName tags authors in alert headers.
const EntityName = "author"

// ResourcePath is the public collection path; Location headers append the id.
const ResourcePath = "/api/authors"

// Author is the only resource of the service.
//
// ID is nil until the store assigns one on first save and never changes
// afterwards. UserID links the author to its owning user and is passed
// through untouched.
type Author struct {
	ID        *int64    `json:"id,omitempty"`
	Name      string    `json:"name"`
	NameAlt   []string  `json:"name_alt"`
	Bio       *string   `json:"bio"`
	ImageURL  *string   `json:"image_url"`
	UserID    *string   `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasID reports whether the author has been persisted.
func (a Author) HasID() bool {
	return a.ID != nil
}

// IDString renders the id for headers and URLs, or "" when unset.
func (a Author) IDString() string {
	if a.ID == nil {
		return ""
	}
	return strconv.FormatInt(*a.ID, 10)
}

// Field names used in validation details.
const (
	FieldName     = "name"
	FieldNameAlt  = "name_alt"
	FieldBio      = "bio"
	FieldImageURL = "image_url"
)
