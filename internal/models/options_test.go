package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_ValueScan(t *testing.T) {
	tests := []struct {
		name string
		in   Options
		want Options
	}{
		{"ordered", Options{"A", "B", "C"}, Options{"A", "B", "C"}},
		{"delimiters in text", Options{"a;b", "c,d", `"quoted"`}, Options{"a;b", "c,d", `"quoted"`}},
		{"nil becomes empty", nil, Options{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.in.Value()
			require.NoError(t, err)

			var got Options
			require.NoError(t, got.Scan(v))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptions_ScanSources(t *testing.T) {
	var o Options

	assert.NoError(t, o.Scan([]byte(`["x","y"]`)))
	assert.Equal(t, Options{"x", "y"}, o)

	assert.NoError(t, o.Scan(nil))
	assert.Equal(t, Options{}, o)

	assert.NoError(t, o.Scan("null"))
	assert.Equal(t, Options{}, o)

	assert.Error(t, o.Scan(42))
	assert.Error(t, o.Scan("not json"))
}
