package faults

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelsMatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("fetching file: %w", NotFound("file %q missing", "x.csv"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `file "x.csv" missing`)
}

func TestClassifiers(t *testing.T) {
	assert.True(t, IsTransient(Transient("server busy")))
	assert.True(t, IsAuth(Auth("bad credentials")))
	assert.False(t, IsTransient(Validation("bad row")))
	assert.False(t, IsAuth(errors.New("plain")))
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.NotErrorIs(t, Validation("x"), ErrOutOfRange)
	assert.NotErrorIs(t, UpstreamRejected("x"), ErrTransient)
}
