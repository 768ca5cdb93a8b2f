package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
)

func TestNormalizeItem(t *testing.T) {
	t.Run("full admin record", func(t *testing.T) {
		raw := map[string]interface{}{
			"id":          float64(7),
			"name":        "Haircut",
			"description": "Classic haircut",
			"price":       "35.00",
			"duration":    "60",
			"category_id": float64(2),
			"picture":     "/img/haircut.png",
			"is_active":   "1",
			"address":     "Main st 1",
			"city":        "Riga",
		}

		item := NormalizeItem(raw)
		assert.Equal(t, "7", item.ID)
		assert.Equal(t, "Haircut", item.Name)
		assert.Equal(t, "35.00", item.Price)
		require.NotNil(t, item.DurationMinutes)
		assert.Equal(t, 60, *item.DurationMinutes)
		assert.Equal(t, "2", item.CategoryID)
		require.NotNil(t, item.ImageURL)
		assert.Equal(t, "/img/haircut.png", *item.ImageURL)
		assert.Equal(t, domain.StatusOnline, item.Status)
		assert.Equal(t, domain.KindService, item.Kind)
		require.NotNil(t, item.Location)
		assert.Equal(t, "Riga", item.Location.City)
	})

	t.Run("alternate field names", func(t *testing.T) {
		raw := map[string]interface{}{
			"event_id":    "12",
			"title":       "Morning routine",
			"event_price": float64(15),
		}

		item := NormalizeItem(raw)
		assert.Equal(t, "12", item.ID)
		assert.Equal(t, "Morning routine", item.Name)
		assert.Equal(t, "15", item.Price)
	})

	t.Run("no location fields", func(t *testing.T) {
		item := NormalizeItem(map[string]interface{}{"id": "1", "name": "X"})
		assert.Nil(t, item.Location)
	})
}

func TestInferKind(t *testing.T) {
	t.Run("explicit flag wins", func(t *testing.T) {
		item := NormalizeItem(map[string]interface{}{
			"id": "1", "name": "Yoga class", "is_event": "0",
		})
		assert.Equal(t, domain.KindService, item.Kind)
	})

	t.Run("keyword in name", func(t *testing.T) {
		item := NormalizeItem(map[string]interface{}{
			"id": "1", "name": "Pottery Workshop",
		})
		assert.Equal(t, domain.KindEvent, item.Kind)
	})

	t.Run("keyword only as whole word", func(t *testing.T) {
		// "class" внутри "Classic" не делает услугу событием
		item := NormalizeItem(map[string]interface{}{
			"id": "1", "name": "Haircut", "description": "Classic haircut",
		})
		assert.Equal(t, domain.KindService, item.Kind)

		item = NormalizeItem(map[string]interface{}{
			"id": "2", "name": "Pilates", "description": "Group class, 60 min",
		})
		assert.Equal(t, domain.KindEvent, item.Kind)
	})

	t.Run("occurrence dates imply event", func(t *testing.T) {
		item := NormalizeItem(map[string]interface{}{
			"id": "1", "name": "Session", "dates": []interface{}{"2026-09-15"},
		})
		assert.Equal(t, domain.KindEvent, item.Kind)
	})

	t.Run("service by default", func(t *testing.T) {
		item := NormalizeItem(map[string]interface{}{
			"id": "1", "name": "Massage",
		})
		assert.Equal(t, domain.KindService, item.Kind)
	})
}

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string]interface{}
		want domain.ItemStatus
	}{
		{"active flag set", map[string]interface{}{"id": "1", "is_active": "1"}, domain.StatusOnline},
		{"active flag cleared", map[string]interface{}{"id": "1", "is_active": "0"}, domain.StatusOffline},
		{"visible bool", map[string]interface{}{"id": "1", "is_visible": false}, domain.StatusOffline},
		{"status string", map[string]interface{}{"id": "1", "status": "hidden"}, domain.StatusOffline},
		{"no markers means online", map[string]interface{}{"id": "1"}, domain.StatusOnline},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeItem(tc.raw).Status)
		})
	}
}

func TestNormalizePerformer(t *testing.T) {
	t.Run("service list as array", func(t *testing.T) {
		p := NormalizePerformer(map[string]interface{}{
			"id": float64(5), "name": "Anna", "email": "anna@example.com",
			"service_ids": []interface{}{float64(7), "8"},
		})
		assert.Equal(t, "5", p.ID)
		assert.ElementsMatch(t, []string{"7", "8"}, p.ServiceIDs)
		assert.True(t, p.CanPerform("7"))
		assert.False(t, p.CanPerform("9"))
	})

	t.Run("empty list means all services", func(t *testing.T) {
		p := NormalizePerformer(map[string]interface{}{"id": "5", "name": "Anna"})
		assert.True(t, p.CanPerform("anything"))
	})
}
