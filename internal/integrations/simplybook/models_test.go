package simplybook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordList(t *testing.T) {
	t.Run("array of records", func(t *testing.T) {
		records := RecordList(json.RawMessage(`[{"id":"1","name":"Cut"},{"id":"2","name":"Color"}]`))
		require.Len(t, records, 2)
		assert.Equal(t, "Cut", records[0]["name"])
	})

	t.Run("object keyed by id", func(t *testing.T) {
		records := RecordList(json.RawMessage(`{"1":{"name":"Cut"},"2":{"id":"2","name":"Color"}}`))
		require.Len(t, records, 2)

		// Ключ объекта становится id записи, существующий id не затирается
		ids := []string{AsString(records[0]["id"]), AsString(records[1]["id"])}
		assert.ElementsMatch(t, []string{"1", "2"}, ids)
	})

	t.Run("empty and unrecognized", func(t *testing.T) {
		assert.Nil(t, RecordList(nil))
		assert.Nil(t, RecordList(json.RawMessage(`"surprise"`)))
	})
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "17", AsString(float64(17)))
	assert.Equal(t, "17.5", AsString(17.5))
	assert.Equal(t, "abc", AsString("abc"))
	assert.Equal(t, "true", AsString(true))
	assert.Equal(t, "", AsString(nil))
	assert.Equal(t, "", AsString([]interface{}{}))
}

func TestAsBool(t *testing.T) {
	assert.True(t, AsBool(true))
	assert.True(t, AsBool(float64(1)))
	assert.True(t, AsBool("1"))
	assert.True(t, AsBool("true"))
	assert.False(t, AsBool("0"))
	assert.False(t, AsBool(float64(0)))
	assert.False(t, AsBool(nil))
}
