package articles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_Order(t *testing.T) {
	assert.Equal(t, []Article{A, An, The}, All())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Article
		wantErr bool
	}{
		{"a", A, false},
		{"an", An, false},
		{"the", The, false},
		{" The ", The, false},
		{"AN", An, false},
		{"", "", true},
		{"these", "", true},
		{"a an", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValid(t *testing.T) {
	for _, a := range All() {
		if !a.Valid() {
			t.Errorf("%q should be valid", a)
		}
	}
	if Article("The").Valid() {
		t.Error("comparison is exact; upper-case form must not be valid")
	}
}

func TestLabelAndShortcut(t *testing.T) {
	assert.Equal(t, "THE", The.Label())
	assert.Equal(t, "n", An.Shortcut())
	assert.Equal(t, "", Article("x").Shortcut())
}
