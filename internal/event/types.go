// internal/event/types.go
package event

const (
	Resized           EventType = "Resized"           // container box changed
	AppearanceChanged EventType = "AppearanceChanged" // container style or class changed
	PointerMoved      EventType = "PointerMoved"      // cursor or touch moved, Data is PointerData
)

// PointerData is the payload of PointerMoved in host window coordinates.
type PointerData struct {
	X, Y float64
}
