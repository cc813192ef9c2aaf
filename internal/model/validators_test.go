package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBloodPressurePattern(t *testing.T) {
	valid := []string{"120/80", "90/60", "145/95", "100/100"}
	for _, v := range valid {
		assert.True(t, BloodPressurePattern.MatchString(v), v)
	}

	invalid := []string{"", "120", "120-80", "1/80", "120/8", "1200/80", "abc/def", " 120/80"}
	for _, v := range invalid {
		assert.False(t, BloodPressurePattern.MatchString(v), v)
	}
}

func TestRegisterValidations(t *testing.T) {
	assert.NoError(t, RegisterValidations())
}
