// Package requests binds and decodes inbound JSON request bodies for the
// HTTP controllers, distinguishing "field omitted" from "field present as
// null" where PATCH semantics require it.
package requests

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// RawBody parses c's JSON body into a field-presence map so callers can
// tell an omitted field apart from one explicitly set to null.
func RawBody(c *gin.Context) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Decode unmarshals raw[key] into dst if key is present, reporting whether
// it was present.
func Decode(raw map[string]json.RawMessage, key string, dst any) (present bool, err error) {
	v, ok := raw[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return true, err
	}
	return true, nil
}
