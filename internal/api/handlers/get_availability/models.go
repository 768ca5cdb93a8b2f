package get_availability

import (
	"net/http"
	"strconv"

	getAvailability "github.com/m04kA/SMC-ScheduleGateway/internal/usecase/get_availability"
)

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(r *http.Request) *getAvailability.Request {
	q := r.URL.Query()

	req := &getAvailability.Request{
		ItemID:     q.Get("itemId"),
		CategoryID: q.Get("categoryId"),
		DateFrom:   q.Get("dateFrom"),
		DateTo:     q.Get("dateTo"),
		KindHint:   q.Get("kind"),
	}

	if id := q.Get("performerId"); id != "" {
		req.PerformerID = &id
	}
	if raw := q.Get("partySize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			req.PartySize = n
		}
	}

	return req
}
