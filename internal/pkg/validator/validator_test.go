package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmail("producer@epitome.productions"))
	assert.True(t, IsValidEmail("first.last+tag@example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUUID("4e8bd3c1-98f2-4f9a-8b31-0b2f8a4c9d11"))
	assert.True(t, IsValidUUID("4E8BD3C1-98F2-4F9A-8B31-0B2F8A4C9D11"))
	assert.False(t, IsValidUUID("4e8bd3c198f24f9a8b310b2f8a4c9d11"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2026-03-14")
	assert.True(t, ok)
	_, ok = IsValidDate("03/14/2026")
	assert.False(t, ok)
	_, ok = IsValidDate("TBD")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	t.Parallel()

	statuses := []string{"DRAFT", "SENT", "FINAL"}
	assert.True(t, IsInSlice("SENT", statuses))
	assert.False(t, IsInSlice("sent", statuses))
	assert.False(t, IsInSlice("ARCHIVED", statuses))
}

func TestValidationErrors_ToMap(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "job_name", Message: "job_name is required"},
		{Field: "email", Message: "email must be a valid email address"},
	}

	m := errs.ToMap()
	assert.Equal(t, "job_name is required", m["job_name"])
	assert.Equal(t, "email must be a valid email address", m["email"])
	assert.Contains(t, errs.Error(), "job_name")
}
