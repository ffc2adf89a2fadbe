package domain

// FreezerModel identifies the hardware model of a freezer.
type FreezerModel struct {
	Name string `json:"name" bson:"name"`
	Year int    `json:"year" bson:"year"`
}

// Freezer is the core aggregate: a named inventory container holding a
// mapping of product name to count. The name doubles as the document key.
type Freezer struct {
	Name     string           `json:"name" bson:"_id"`
	Model    FreezerModel     `json:"model" bson:"model"`
	Owner    *string          `json:"owner,omitempty" bson:"owner,omitempty"`
	Products map[string]int64 `json:"products" bson:"products"`
}
