package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/hochschule/internal/app/models"
)

func courses(ids ...int64) []*models.Course {
	out := make([]*models.Course, 0, len(ids))
	for _, id := range ids {
		out = append(out, &models.Course{ID: id})
	}
	return out
}

func TestDiffByID(t *testing.T) {
	toAdd, toRemove := diffByID(courses(1, 2, 3), courses(2, 4, 4, 5))

	assert.Equal(t, []int64{4, 5}, models.IDs(toAdd))
	assert.Equal(t, []int64{1, 3}, models.IDs(toRemove))
}

func TestDiffByIDUnchanged(t *testing.T) {
	toAdd, toRemove := diffByID(courses(1, 2), courses(2, 1))
	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)

	toAdd, toRemove = diffByID[*models.Course](nil, nil)
	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
}
