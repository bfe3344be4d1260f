package task

import "strings"

// Task is the reference catalogue of known chores, mirrored from
// dim_task. Read-only from the application's perspective.
type Task struct {
	id   int
	name string
}

func Hydrate(id int, name string) Task {
	return Task{
		id:   id,
		name: strings.TrimSpace(name),
	}
}

func (t Task) ID() int      { return t.id }
func (t Task) Name() string { return t.name }
