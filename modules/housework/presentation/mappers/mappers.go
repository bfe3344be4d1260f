package mappers

import (
	"github.com/houseworklog/houseworklog/modules/housework/domain/person"
	"github.com/houseworklog/houseworklog/modules/housework/domain/task"
	"github.com/houseworklog/houseworklog/modules/housework/presentation/viewmodels"
)

func PersonToOption(p person.Person) viewmodels.SelectOption {
	return viewmodels.SelectOption{ID: p.ID(), Name: p.Name()}
}

func TaskToOption(t task.Task) viewmodels.SelectOption {
	return viewmodels.SelectOption{ID: t.ID(), Name: t.Name()}
}

func PersonsToOptions(persons []person.Person) []viewmodels.SelectOption {
	out := make([]viewmodels.SelectOption, 0, len(persons))
	for _, p := range persons {
		out = append(out, PersonToOption(p))
	}
	return out
}

func TasksToOptions(tasks []task.Task) []viewmodels.SelectOption {
	out := make([]viewmodels.SelectOption, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskToOption(t))
	}
	return out
}
