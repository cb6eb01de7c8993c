package utils_test

import (
	"testing"

	"github.com/BrickByte/lms_service/internal/helper/utils"
	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, utils.ValidEmail("jane@x.com"))
	assert.True(t, utils.ValidEmail("first.last@sub.example.co"))

	assert.False(t, utils.ValidEmail("jane"))
	assert.False(t, utils.ValidEmail("jane@"))
	assert.False(t, utils.ValidEmail("jane@x"))
	assert.False(t, utils.ValidEmail("jane doe@x.com"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, utils.ValidPhone("1234567890"))
	assert.True(t, utils.ValidPhone("+919876543210"))

	assert.False(t, utils.ValidPhone("12345"))
	assert.False(t, utils.ValidPhone("abcdefghij"))
	assert.False(t, utils.ValidPhone("123456789012345678"))
}

func TestValidFullName(t *testing.T) {
	assert.True(t, utils.ValidFullName("jane doe"))

	assert.False(t, utils.ValidFullName("jd"))
	assert.False(t, utils.ValidFullName(string(make([]byte, 51))))
}
