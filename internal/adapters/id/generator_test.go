package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID(t *testing.T) {
	g := New()

	a := g.GenerateRequestID()
	b := g.GenerateRequestID()

	assert.True(t, strings.HasPrefix(a, "req_"), a)
	assert.Len(t, a, len("req_")+21)
	assert.NotEqual(t, a, b)
}
