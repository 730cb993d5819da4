package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBookingApp_Initializers(t *testing.T) {
	app := NewBookingApp()
	require.NotNil(t, app, "NewBookingApp should not return nil")
}
