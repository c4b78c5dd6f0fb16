package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPairKeyOrderIndependent(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	assert.Equal(t, PairKey(a, b), PairKey(b, a), "pair key should not depend on argument order")
	assert.NotEqual(t, PairKey(a, b), PairKey(a, c), "distinct pairs should have distinct keys")
}
