package models

import "time"

// Generation is one generated pre-production package owned by the user whose
// email was authenticated when it was created. OwnerEmail is a weak
// reference: no foreign key is enforced.
type Generation struct {
	ID         int64
	OwnerEmail string
	Title      string
	Language   string
	Content    string
	CreatedAt  time.Time
}
