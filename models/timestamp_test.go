package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_AcceptedLayouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339 utc", "2023-01-01T00:00:00Z", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"rfc3339 fraction", "2023-01-01T10:20:30.123456Z", time.Date(2023, 1, 1, 10, 20, 30, 123456000, time.UTC)},
		{"rfc3339 offset", "2023-01-01T02:00:00+02:00", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"naive iso", "2023-05-06T07:08:09", time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)},
		{"naive iso fraction", "2023-05-06T07:08:09.5", time.Date(2023, 5, 6, 7, 8, 9, 500000000, time.UTC)},
		{"space separator", "2023-05-06 07:08:09", time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)},
		{"date only", "2023-05-06", time.Date(2023, 5, 6, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "want %s, got %s", tt.want, got.Time)
		})
	}
}

func TestParseTimestamp_Empty(t *testing.T) {
	got, err := ParseTimestamp("  ")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestParseTimestamp_Invalid(t *testing.T) {
	_, err := ParseTimestamp("yesterday")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestAccount_UnmarshalJSON(t *testing.T) {
	body := `{"username":"alice","created_at":"2023-01-01T00:00:00Z","modified_at":null}`

	var a Account
	require.NoError(t, json.Unmarshal([]byte(body), &a))

	assert.Equal(t, "alice", a.Username)
	assert.Equal(t, 2023, a.CreatedAt.Year())
	assert.True(t, a.ModifiedAt.IsZero())
}

func TestAccount_UnmarshalJSON_KeepsUndecodableValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantRaw string
	}{
		{"number", `{"username":"alice","created_at":42}`, "42"},
		{"garbage", `{"username":"alice","created_at":"garbage"}`, "garbage"},
		{"http date", `{"username":"alice","created_at":"Sun, 01 Jan 2023 00:00:00 GMT"}`, "Sun, 01 Jan 2023 00:00:00 GMT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Account
			require.NoError(t, json.Unmarshal([]byte(tt.body), &a))

			assert.Equal(t, "alice", a.Username)
			assert.True(t, a.CreatedAt.Invalid())
			assert.True(t, a.CreatedAt.IsZero())
			assert.Equal(t, tt.wantRaw, a.CreatedAt.Raw)
			assert.False(t, a.ModifiedAt.Invalid())
		})
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 2, 3, 4, 5, 6, 0, time.FixedZone("X", 3600)))

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-02-03T03:05:06Z"`, string(b))

	b, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	b, err = json.Marshal(Timestamp{Raw: "garbage"})
	require.NoError(t, err)
	assert.Equal(t, `"garbage"`, string(b))
}
