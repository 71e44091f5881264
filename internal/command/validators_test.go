// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputValidator(t *testing.T) {
	assert.NoError(t, OutputValidator("text"))
	assert.NoError(t, OutputValidator("json"))
	assert.NoError(t, OutputValidator("yaml"))
	assert.Error(t, OutputValidator("csv"))
	assert.Error(t, OutputValidator(""))
}

func TestNonNegativeValidator(t *testing.T) {
	assert.NoError(t, NonNegativeValidator(0))
	assert.NoError(t, NonNegativeValidator(300))
	assert.Error(t, NonNegativeValidator(-1))
}

func TestFlagValidators_StopsAtFirstError(t *testing.T) {
	called := false
	fail := func(any) error { return assert.AnError }
	spy := func(any) error {
		called = true
		return nil
	}

	assert.Error(t, FlagValidators("x", fail, spy))
	assert.False(t, called)
}

func TestRecordKeys(t *testing.T) {
	keys := RecordKeys([]string{
		"templates.home.json",
		"notes.txt",
		"api-users.json",
		"json",
	})
	assert.Equal(t, []string{"templates.home", "api-users"}, keys)
}
