package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneHasIndependentMemberships(t *testing.T) {
	course := &Course{ID: 1, Name: "Datenbanken", Students: []*Student{{ID: 1}, {ID: 2}}}

	clone := course.Clone()
	clone.Name = "Software Engineering"
	clone.Students = clone.Students[:1]
	clone.Students[0] = &Student{ID: 9}

	assert.Equal(t, "Datenbanken", course.Name)
	assert.Equal(t, []int64{1, 2}, IDs(course.Students))
	assert.Equal(t, []int64{9}, IDs(clone.Students))
	assert.Equal(t, course.ID, clone.ID)
}

func TestStrings(t *testing.T) {
	birthdate := time.Date(1970, 3, 12, 0, 0, 0, 0, time.UTC)
	lecturer := &Lecturer{ID: 2, Surname: "Schmidt", Name: "Hans", Birthdate: &birthdate, Degree: DegreeProfessor}
	course := &Course{ID: 1, Name: "SE", Description: "Grundlagen", Lecturer: lecturer}

	assert.Equal(t, "Course: Id=1, Name=SE", course.ShortString())
	assert.Contains(t, course.String(), "Lecturer=Lecturer: Id=2, Surname=Schmidt, Name=Hans")
	assert.Contains(t, lecturer.String(), "Birthdate=1970-03-12, Degree=Professor")

	student := &Student{ID: 3, Surname: "Mustermann", Name: "Max"}
	assert.Contains(t, student.String(), "Birthdate=, N/A")
}

func TestDegree(t *testing.T) {
	d, err := ParseDegree(" phd ")
	require.NoError(t, err)
	assert.Equal(t, DegreePhD, d)

	_, err = ParseDegree("Dean")
	assert.Error(t, err)
	assert.False(t, Degree(7).IsValid())
	assert.Equal(t, "Degree(7)", Degree(7).String())

	raw, err := json.Marshal(struct{ D Degree }{DegreeMaster})
	require.NoError(t, err)
	assert.JSONEq(t, `{"D":"Master"}`, string(raw))

	var decoded struct{ D Degree }
	require.NoError(t, json.Unmarshal([]byte(`{"D":"Bachelor"}`), &decoded))
	assert.Equal(t, DegreeBachelor, decoded.D)
}
