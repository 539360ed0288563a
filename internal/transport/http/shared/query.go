package shared

import (
	"net/http"
	"strconv"
)

// QueryInt returns the integer query parameter name, or 0 when it is absent
// or malformed.
func QueryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
