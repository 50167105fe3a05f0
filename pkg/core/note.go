// Package core holds the domain of notekeeper: the Note entity, the error
// kinds surfaced to callers, the Storage port and the Store that runs every
// load -> (mutate) -> write transaction against it.
package core

import "fmt"

// Note is the central entity of the domain.
// It is a small record identified by an ID that is unique within a store.
type Note struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// String renders the note the way the CLI prints it.
func (n Note) String() string {
	return fmt.Sprintf("Note ID: %s, Note Name: %s", n.ID, n.Name)
}

// EventType represents the type of change observed on a store file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of a store file on disk.
type Event struct {
	Type      EventType
	Store     string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Store)
}
