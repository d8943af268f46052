package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooseInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "number", input: `{"duration":30}`, want: 30},
		{name: "numeric string", input: `{"duration":"30"}`, want: 30},
		{name: "null", input: `{"duration":null}`, want: 0},
		{name: "empty string", input: `{"duration":""}`, want: 0},
		{name: "absent", input: `{}`, want: 0},
		{name: "text", input: `{"duration":"half an hour"}`, wantErr: true},
		{name: "fractional number", input: `{"duration":30.5}`, wantErr: true},
		{name: "fractional string", input: `{"duration":"30.5"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Duration LooseInt `json:"duration"`
			}
			err := json.Unmarshal([]byte(tt.input), &payload)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, int(payload.Duration))
		})
	}
}
