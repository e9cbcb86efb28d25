package sanitizer

import "regexp"

var reObjectID = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)

// IsValidObjectID reports whether id looks like a MongoDB ObjectId
// (exactly 24 hex characters). This is a format check only - it says nothing
// about whether the referenced document exists.
func IsValidObjectID(id string) bool {
	return reObjectID.MatchString(id)
}
