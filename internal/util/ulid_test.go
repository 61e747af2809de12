package util

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	first := NewULID()
	second := NewULID()

	assert.Len(t, first, 26)
	assert.True(t, IsULID(first))
	assert.NotEqual(t, first, second)
	assert.Less(t, first, second, "ULIDs generated in sequence should sort in order")
}

func TestIsULID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid", "01HZX3K4J5N6P7Q8R9S0T1V2W3", true},
		{"too short", "01HZX3K4J5", false},
		{"invalid character", "01HZX3K4J5N6P7Q8R9S0T1V2WU", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsULID(tt.in))
		})
	}
}

func TestNullString(t *testing.T) {
	assert.Equal(t, sql.NullString{}, NullString(""))
	assert.Equal(t, sql.NullString{String: "Trivia", Valid: true}, NullString("Trivia"))
	assert.Equal(t, "", StringOrEmpty(sql.NullString{}))
	assert.Equal(t, "Trivia", StringOrEmpty(sql.NullString{String: "Trivia", Valid: true}))
}
