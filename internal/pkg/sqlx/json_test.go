package sqlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manifest struct {
	Phone string `json:"phone"`
}

func TestJSONColumn_Value(t *testing.T) {
	t.Parallel()

	val, err := NewJSONColumn([]manifest{{Phone: "01012345678"}}).Value()
	require.NoError(t, err)
	assert.Equal(t, `[{"phone":"01012345678"}]`, val)

	val, err = JSONColumn[[]manifest]{}.Value()
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestJSONColumn_Scan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       any
		wantVal   []manifest
		wantValid bool
		wantErr   bool
	}{
		{
			name:      "bytes",
			src:       []byte(`[{"phone":"010"}]`),
			wantVal:   []manifest{{Phone: "010"}},
			wantValid: true,
		},
		{
			name:      "string",
			src:       `[]`,
			wantVal:   []manifest{},
			wantValid: true,
		},
		{
			name: "NULL",
			src:  nil,
		},
		{
			name:    "不支持的类型",
			src:     12,
			wantErr: true,
		},
		{
			name:    "非法 JSON",
			src:     "{",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var col JSONColumn[[]manifest]
			err := col.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, col.Valid)
			assert.Equal(t, tt.wantVal, col.Val)
		})
	}
}
