package protocols

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDFormat(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 9, 5, 2, 7*int(time.Millisecond), time.UTC)
	id := GenerateID(ts)

	require.Len(t, id, 17)
	assert.Equal(t, "20250307090502007", id)
	for _, r := range id {
		assert.True(t, r >= '0' && r <= '9', "id must be decimal digits, got %q", id)
	}
}

func TestGenerateIDZeroPadding(t *testing.T) {
	ts := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "20240102030405000", GenerateID(ts))
}

func TestGenerateIDOrdering(t *testing.T) {
	base := time.Date(2025, time.June, 30, 23, 59, 59, 998*int(time.Millisecond), time.UTC)
	first := GenerateID(base)
	second := GenerateID(base.Add(time.Millisecond))
	third := GenerateID(base.Add(2 * time.Millisecond)) // rolls over to the next day

	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestGenerateIDSameMillisecondCollides(t *testing.T) {
	ts := time.Date(2025, time.June, 1, 12, 0, 0, 500*int(time.Millisecond), time.UTC)
	assert.Equal(t, GenerateID(ts), GenerateID(ts.Add(200*time.Microsecond)))
}
