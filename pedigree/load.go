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
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// expected header of a pedigree file, in order.
var csvHeader = []string{"name", "mother", "father", "trait"}

// Load reads a pedigree from the CSV file at the given path. The file must
// carry a `name,mother,father,trait` header. Empty mother and father
// columns mark a founder, the trait column is `1`, `0` or empty for an
// unobserved trait. The resulting population is fully validated, see New.
func Load(filename string) (*Population, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open pedigree file: %w", err)
	}
	defer file.Close()

	population, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("could not read pedigree file `%s`: %w", filename, err)
	}
	return population, nil
}

// Read reads a pedigree in CSV form from r. See Load for the format.
func Read(r io.Reader) (*Population, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty pedigree file")
	}
	if err != nil {
		return nil, err
	}
	for i, column := range csvHeader {
		if header[i] != column {
			return nil, fmt.Errorf("unexpected header column `%s`, expected `%s`", header[i], column)
		}
	}

	var people []Person
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		person, err := personFromRecord(record)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}

	return New(people)
}

func personFromRecord(record []string) (Person, error) {
	person := Person{Name: record[0]}

	mother, father := record[1], record[2]
	if mother != "" || father != "" {
		person.Parents = &Parents{Mother: mother, Father: father}
	}

	switch record[3] {
	case "":
	case "1":
		observed := true
		person.Trait = &observed
	case "0":
		observed := false
		person.Trait = &observed
	default:
		return Person{}, fmt.Errorf("person `%s` has invalid trait value `%s`, expected 1, 0 or empty", person.Name, record[3])
	}

	return person, nil
}
