package simplybook

import (
	"encoding/json"
	"strconv"
)

// rpcRequest конверт запроса JSON-RPC
type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int64         `json:"id"`
}

// rpcResponse конверт ответа JSON-RPC
type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// BookRequest параметры процедуры book
type BookRequest struct {
	ServiceID        string
	PerformerID      string
	Date             string // YYYY-MM-DD
	Time             string // HH:MM
	Client           map[string]interface{}
	AdditionalFields map[string]string
	Count            int
}

// BookingInfo созданное под-бронирование
type BookingInfo struct {
	ID   string
	Hash string
}

// BookResult результат процедуры book
type BookResult struct {
	RequireConfirm bool
	Bookings       []BookingInfo
}

// RecordList приводит результат списочной процедуры к списку записей.
// Провайдер в зависимости от конфигурации тенанта возвращает либо массив
// записей, либо объект, где ключи — идентификаторы
func RecordList(raw json.RawMessage) []map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}

	var asArray []map[string]interface{}
	if err := json.Unmarshal(raw, &asArray); err == nil {
		return asArray
	}

	var asObject map[string]map[string]interface{}
	if err := json.Unmarshal(raw, &asObject); err == nil {
		records := make([]map[string]interface{}, 0, len(asObject))
		for key, rec := range asObject {
			if rec == nil {
				continue
			}
			// Ключ объекта — идентификатор записи; сохраняем, если записи его не хватает
			if _, ok := rec["id"]; !ok {
				rec["id"] = key
			}
			records = append(records, rec)
		}
		return records
	}

	return nil
}

// AsString приводит динамическое значение провайдера к строке.
// Числовые идентификаторы форматируются без дробной части
func AsString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// AsBool приводит динамическое значение провайдера к bool
// Провайдер использует true/false, 0/1 и строковые "0"/"1"
func AsBool(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val == "1" || val == "true"
	default:
		return false
	}
}
