package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// FlexibleID id numérico que acepta tanto 7 como "7" en el JSON de entrada.
// Se serializa siempre como número.
type FlexibleID int

// UnmarshalJSON normaliza números y textos numéricos; null deja el valor en cero.
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("id must be an integer, got %s", string(data))
	}
	*id = FlexibleID(n)
	return nil
}

// Int valor como int.
func (id FlexibleID) Int() int { return int(id) }
