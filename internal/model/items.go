package model

// listItems is the fixed payload served by the list endpoint.
// This is pure domain data with no database or framework dependencies.
// The sequence is fixed for the life of the process and its order is
// part of the contract.
var listItems = [3]string{"apples", "bananas", "cherries"}

// ListItems returns the canonical ordered item sequence.
// Callers receive a fresh copy so the underlying sequence cannot be mutated.
func ListItems() []string {
	items := make([]string, len(listItems))
	copy(items, listItems[:])
	return items
}
