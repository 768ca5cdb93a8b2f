package pending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
)

func TestStore(t *testing.T) {
	store := NewStore()
	booking := &domain.PendingBooking{ServiceID: "7"}

	t.Run("put and get", func(t *testing.T) {
		require.NoError(t, store.Put("tr_abc", booking))
		got, err := store.Get("tr_abc")
		require.NoError(t, err)
		assert.Equal(t, booking, got)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("duplicate put", func(t *testing.T) {
		assert.ErrorIs(t, store.Put("tr_abc", booking), ErrAlreadyExists)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get("tr_nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store.Delete("tr_abc")
		store.Delete("tr_abc")
		assert.Zero(t, store.Len())
	})
}
