package models

// University represents a university in the static reference list
type University struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}
