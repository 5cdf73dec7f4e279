package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhone_IsPersisted(t *testing.T) {
	assert.False(t, (&Phone{Name: "P1"}).IsPersisted())
	assert.True(t, (&Phone{ID: 1, Name: "P1"}).IsPersisted())
}
