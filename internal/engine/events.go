package engine

// EventKind classifies a journal event.
type EventKind string

const (
	EventReward       EventKind = "reward"
	EventConversation EventKind = "conversation"
	EventLevel        EventKind = "level"
	EventFinish       EventKind = "finish"
)

// Event is a notable thing that happened during a tick. Events are handed to
// the Journal hook after the tick completes; the engine never reads them back.
type Event struct {
	Tick    uint64
	Kind    EventKind
	Subject string
}
