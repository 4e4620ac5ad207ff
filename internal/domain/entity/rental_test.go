package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rentacar-api/internal/domain/entity"
)

func day(s string) time.Time {
	t, _ := time.Parse(entity.DateLayout, s)
	return t
}

// El conteo es inclusivo en ambos extremos: del 01 al 03 son 3 días.
func TestDaysInclusive(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		want       int64
	}{
		{"mismo día", "2026-09-01", "2026-09-01", 1},
		{"tres días", "2026-09-01", "2026-09-03", 3},
		{"una semana", "2026-09-01", "2026-09-07", 7},
		{"cruce de mes", "2026-08-30", "2026-09-02", 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.DaysInclusive(day(tc.start), day(tc.end)))
		})
	}
}
