package domain

import "strings"

// Product is immutable reference data: a product name and the count a
// freezer is restocked to by the recompute procedure.
type Product struct {
	Name    string `json:"name" bson:"_id"`
	Default int64  `json:"default" bson:"default"`
}

// ValidProductName reports whether name can be stored as a products map
// key. "." and a leading "$" are structural characters in document field
// paths, so such names cannot round-trip as literal keys.
func ValidProductName(name string) bool {
	return name != "" && !strings.Contains(name, ".") && !strings.HasPrefix(name, "$")
}
