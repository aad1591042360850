package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGormConfig_TranslatesDriverErrors(t *testing.T) {
	cfg := gormConfig()
	assert.True(t, cfg.TranslateError)
	assert.NotNil(t, cfg.Logger)
}
