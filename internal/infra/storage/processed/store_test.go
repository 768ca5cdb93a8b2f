package processed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	store := NewStore()

	assert.False(t, store.Contains("tr_abc"))

	store.Mark("tr_abc")
	assert.True(t, store.Contains("tr_abc"))
	assert.Equal(t, 1, store.Len())

	// Повторная пометка не меняет состояние
	store.Mark("tr_abc")
	assert.Equal(t, 1, store.Len())
}
