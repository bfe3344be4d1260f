package person

import "strings"

// Person is reference data maintained outside this system; the
// application only ever reads it.
type Person struct {
	id   int
	name string
}

func Hydrate(id int, name string) Person {
	return Person{
		id:   id,
		name: strings.TrimSpace(name),
	}
}

func (p Person) ID() int      { return p.id }
func (p Person) Name() string { return p.name }
