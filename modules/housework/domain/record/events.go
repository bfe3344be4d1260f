package record

// CreatedEvent is published after a manual submission completes the full
// staging pipeline.
type CreatedEvent struct {
	Record Record
}

// BatchIngestedEvent is published after a CSV batch completes the full
// staging pipeline.
type BatchIngestedEvent struct {
	Inserted int
	Skipped  int
}
