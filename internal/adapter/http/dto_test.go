package httpadapter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: `"2026-03-04"`, want: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
		{in: `"2026-03-04T23:00:00-05:00"`, want: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
		{in: `"2026-03-04T01:30:00+09:00"`, want: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
		{in: `"2026-03-04T12:00:00Z"`, want: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
		{in: `""`},
		{in: `null`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.True(t, tt.want.Equal(d.Time), "got %s", d.Time)
		})
	}
}

func TestDateUnmarshalJSONRejectsGarbage(t *testing.T) {
	for _, in := range []string{`"04/03/2026"`, `"2026-13-01"`, `20260304`} {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(in), &d), in)
	}
}
