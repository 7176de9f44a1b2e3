package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlots(t *testing.T) {
	want := []string{"10:00", "11:00", "12:00", "13:00", "16:00", "17:00"}
	assert.Equal(t, want, Slots())
}

func TestSlotsReturnsCopy(t *testing.T) {
	got := Slots()
	got[0] = "00:00"

	assert.Equal(t, "10:00", Slots()[0])
}
