package valueobjects

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIDJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"uuid-like", "0e8c2c1a-1b2d-4e5f-8a9b-0c1d2e3f4a5b"},
		{"plain word", "alice"},
		{"embedded quote", `ali"ce`},
		{"embedded backslash", `ali\ce`},
		{"unicode", "анна"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewUserIDFromString(tt.id)
			require.NoError(t, err)

			data, err := json.Marshal(id)
			require.NoError(t, err)
			assert.True(t, json.Valid(data))

			var decoded UserID
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.True(t, id.Equals(decoded))
		})
	}
}

func TestUserIDUnmarshalRejectsNonString(t *testing.T) {
	var id UserID
	assert.Error(t, json.Unmarshal([]byte(`42`), &id))
	assert.Error(t, json.Unmarshal([]byte(`{"v":1}`), &id))

	// null leaves the zero value untouched.
	require.NoError(t, json.Unmarshal([]byte(`null`), &id))
	assert.True(t, id.IsZero())
}
