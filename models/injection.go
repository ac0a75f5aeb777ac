// models/injection.go
package models

// InjectionLog holds the row indices selected by each defect pass, in selection order.
// Indices may repeat for passes that sample with replacement.
type InjectionLog struct {
	// Duplicate[0] received the key of Duplicate[1]; the rest were selected but left untouched.
	Duplicate          []int `json:"duplicate"`
	NegativePassengers []int `json:"negative_passengers"`
	Unprofitable       []int `json:"unprofitable"`
	Overcapacity       []int `json:"overcapacity"`
	ExtremeDelay       []int `json:"extreme_delay"`
}
