package serverutils

import (
	"errors"
	"testing"

	"catalog-chat-be/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Message string `json:"message" validate:"required,max=10"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Message: "hi"}))

	err := ValidateRequest(sampleRequest{})
	require.Error(t, err)
	var validationErr *apperror.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Reason, "Message")

	err = ValidateRequest(sampleRequest{Message: "this is far too long"})
	require.Error(t, err)
}
