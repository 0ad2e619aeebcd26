package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of championship event
type EventType string

const (
	EventTypeTeamRegistered   EventType = "TeamRegistered"
	EventTypePlayerRegistered EventType = "PlayerRegistered"
	EventTypeMatchCreated     EventType = "MatchCreated"
	EventTypeGoalScored       EventType = "GoalScored"
	EventTypeCardIssued       EventType = "CardIssued"
	EventTypeFoulCommitted    EventType = "FoulCommitted"
)

// Event is the envelope every published championship event travels in.
// MatchID is empty for events not scoped to a match.
type Event struct {
	ID        string          `json:"id"`
	MatchID   string          `json:"match_id,omitempty"`
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// New builds an event envelope around the given payload.
func New(eventType EventType, matchID string, payload interface{}) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:        uuid.New().String(),
		MatchID:   matchID,
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}, nil
}
