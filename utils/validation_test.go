package utils_test

import (
	"testing"

	"trimz-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, utils.ValidatePhone("+1234567890"))
	assert.True(t, utils.ValidatePhone("+1 (234) 567-890"))
	assert.False(t, utils.ValidatePhone("not-a-phone"))
	assert.False(t, utils.ValidatePhone("+0123"))
}

func TestValidateTimeOfDay(t *testing.T) {
	assert.True(t, utils.ValidateTimeOfDay("09:00"))
	assert.True(t, utils.ValidateTimeOfDay("23:59"))
	assert.False(t, utils.ValidateTimeOfDay("24:00"))
	assert.False(t, utils.ValidateTimeOfDay("9:00"))
	assert.False(t, utils.ValidateTimeOfDay("09:60"))
	assert.False(t, utils.ValidateTimeOfDay("morning"))
}
