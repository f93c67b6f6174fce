package models

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the layout used to read and print dates in the application
const DateFormat = "2006-01-02"

// Identifiable is implemented by every persisted entity
type Identifiable interface {
	GetID() int64
}

// Degree represents the academic degree of a lecturer
type Degree int

// Degree constants
const (
	DegreeBachelor  Degree = iota // 0
	DegreeMaster                  // 1
	DegreePhD                     // 2
	DegreeProfessor               // 3
)

// Degrees lists all degrees in menu order
var Degrees = []Degree{DegreeBachelor, DegreeMaster, DegreePhD, DegreeProfessor}

var degreeNames = map[Degree]string{
	DegreeBachelor:  "Bachelor",
	DegreeMaster:    "Master",
	DegreePhD:       "PhD",
	DegreeProfessor: "Professor",
}

// String returns the display name of the degree
func (d Degree) String() string {
	if name, ok := degreeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Degree(%d)", int(d))
}

// IsValid reports whether d is one of the known degrees
func (d Degree) IsValid() bool {
	_, ok := degreeNames[d]
	return ok
}

// ParseDegree parses a degree name case-insensitively
func ParseDegree(s string) (Degree, error) {
	for d, name := range degreeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return d, nil
		}
	}
	return DegreeBachelor, fmt.Errorf("unknown degree %q", s)
}

// MarshalText encodes the degree by name
func (d Degree) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid degree %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a degree name
func (d *Degree) UnmarshalText(text []byte) error {
	parsed, err := ParseDegree(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// formatDate renders an optional date, empty when unset
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateFormat)
}

// IDs collects the IDs of the given entities
func IDs[T Identifiable](items []T) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.GetID())
	}
	return ids
}
