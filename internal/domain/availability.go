package domain

import "github.com/m04kA/SMC-ScheduleGateway/pkg/types"

// AvailabilityWindow доступные времена на одну календарную дату
// Времена упорядочены по возрастанию и не содержат дубликатов
type AvailabilityWindow struct {
	Date  string // YYYY-MM-DD
	Times []types.TimeString
}

// SlotCount количество доступных слотов в окне
func (w *AvailabilityWindow) SlotCount() int {
	return len(w.Times)
}
