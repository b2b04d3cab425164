package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"displayName" validate:"required"`
	Age   int    `json:"age" validate:"omitempty,gte=18"`
}

func TestValidateStructPasses(t *testing.T) {
	fields := ValidateStruct(&sampleRequest{Email: "a@b.com", Name: "Ada", Age: 30})
	assert.Nil(t, fields)
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	fields := ValidateStruct(&sampleRequest{Email: "nope", Age: 12})
	require.NotNil(t, fields)

	// Wire names, not Go names.
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "displayName")
	assert.Contains(t, fields, "age")
	assert.NotContains(t, fields, "Name")

	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "is required", fields["displayName"])
}
