package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Error is returned when the API answered with a status outside 200-299.
type Error struct {
	Status     int
	StatusText string
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode возвращает HTTP-статус ответа, если err - ошибка API
func StatusCode(err error) (int, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status, true
	}
	return 0, false
}

// newError builds the failure from a non-2xx response. A top-level "message"
// in a JSON object body wins; anything else falls back to the status line.
// With duplicate keys the last one counts, as with encoding/json.
func newError(resp *http.Response, body []byte) *Error {
	statusText := reasonPhrase(resp)
	e := &Error{
		Status:     resp.StatusCode,
		StatusText: statusText,
		Message:    fmt.Sprintf("API Error: %d %s", resp.StatusCode, statusText),
	}

	if !gjson.ValidBytes(body) {
		return e
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return e
	}
	if msg := lastMember(parsed, "message"); msg.Exists() && msg.Type != gjson.Null {
		e.Message = msg.String()
	}
	return e
}

func lastMember(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
		}
		return true
	})
	return found
}

// reasonPhrase takes the text after the code in the status line, e.g.
// "Internal Server Error" from "500 Internal Server Error".
func reasonPhrase(resp *http.Response) string {
	if text, ok := strings.CutPrefix(resp.Status, strconv.Itoa(resp.StatusCode)); ok {
		if text = strings.TrimSpace(text); text != "" {
			return text
		}
	}
	return http.StatusText(resp.StatusCode)
}
