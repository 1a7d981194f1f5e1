package idgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Format(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"unit", PrefixUnit},
		{"incident", PrefixIncident},
		{"alert", PrefixAlert},
		{"camera", PrefixCamera},
		{"signal", PrefixSignal},
		{"traffic data", PrefixTrafficData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := New(tt.prefix)
			require.NotEmpty(t, id)
			assert.True(t, strings.HasPrefix(id, tt.prefix))
			assert.Len(t, id, len(tt.prefix)+suffixLength)

			suffix := id[len(tt.prefix):]
			for _, r := range suffix {
				assert.Contains(t, alphabet, string(r))
			}
		})
	}
}

func TestNew_UniqueAcrossRun(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		id := New(PrefixIncident)
		_, dup := seen[id]
		require.False(t, dup, "generated duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
