package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMinutesSeconds(t *testing.T) {
	assert.Equal(t, "0:00", MinutesSeconds(0))
	assert.Equal(t, "0:07", MinutesSeconds(7*time.Second))
	assert.Equal(t, "1:00", MinutesSeconds(time.Minute))
	assert.Equal(t, "3:05", MinutesSeconds(3*time.Minute+5*time.Second))
	assert.Equal(t, "61:09", MinutesSeconds(61*time.Minute+9*time.Second))
	assert.Equal(t, "0:00", MinutesSeconds(-time.Second))
}
