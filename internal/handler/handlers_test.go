package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhd-assistant/api/internal/config"
	"github.com/adhd-assistant/api/internal/logger"
	"github.com/adhd-assistant/api/internal/service"
)

func TestNewHandlers(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	_, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
