// Copyright 2026 The heredctl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pedigree

import (
	"fmt"
	"sort"
)

// Parents holds the names of a person's mother and father. A person either
// has both parents recorded or none, so the optional case is carried by a
// nil *Parents on the Person, never by half-empty fields here.
type Parents struct {
	Mother string
	Father string
}

// Person is one member of the population. Parents is nil for founders.
// Trait is nil when the trait was not observed.
type Person struct {
	Name    string
	Parents *Parents
	Trait   *bool
}

// Founder reports whether the person has no recorded parents.
func (p Person) Founder() bool {
	return p.Parents == nil
}

// Population is an immutable set of people keyed by name. Iteration via
// Names is in sorted order so that downstream results are deterministic.
type Population struct {
	people map[string]Person
	names  []string
}

// New builds a Population from the given people and validates its
// structure: names must be unique and non-empty, parents must be recorded
// either both or not at all, parent references must resolve within the
// population, and no person may be their own ancestor.
func New(people []Person) (*Population, error) {
	byName := make(map[string]Person, len(people))
	names := make([]string, 0, len(people))
	for _, person := range people {
		if person.Name == "" {
			return nil, fmt.Errorf("person without a name")
		}
		if _, ok := byName[person.Name]; ok {
			return nil, fmt.Errorf("duplicate person `%s`", person.Name)
		}
		byName[person.Name] = person
		names = append(names, person.Name)
	}
	sort.Strings(names)

	for _, person := range byName {
		if person.Parents == nil {
			continue
		}
		if person.Parents.Mother == "" || person.Parents.Father == "" {
			return nil, fmt.Errorf("person `%s` has only one recorded parent", person.Name)
		}
		for _, parent := range []string{person.Parents.Mother, person.Parents.Father} {
			if _, ok := byName[parent]; !ok {
				return nil, fmt.Errorf("person `%s` references unknown parent `%s`", person.Name, parent)
			}
		}
	}

	pop := &Population{people: byName, names: names}
	for _, name := range names {
		if err := pop.checkAncestry(name); err != nil {
			return nil, err
		}
	}
	return pop, nil
}

// checkAncestry walks the parent links upwards from name and fails if the
// walk ever returns to name, which would make the relation graph cyclic.
func (p *Population) checkAncestry(name string) error {
	seen := map[string]bool{}
	frontier := []string{name}
	for len(frontier) > 0 {
		current := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		person := p.people[current]
		if person.Parents == nil {
			continue
		}
		for _, parent := range []string{person.Parents.Mother, person.Parents.Father} {
			if parent == name {
				return fmt.Errorf("person `%s` is their own ancestor", name)
			}
			if !seen[parent] {
				seen[parent] = true
				frontier = append(frontier, parent)
			}
		}
	}
	return nil
}

// Get returns the person with the given name.
func (p *Population) Get(name string) (Person, bool) {
	person, ok := p.people[name]
	return person, ok
}

// Names returns all person names in sorted order. The returned slice must
// not be modified.
func (p *Population) Names() []string {
	return p.names
}

// Len returns the number of people in the population.
func (p *Population) Len() int {
	return len(p.names)
}
