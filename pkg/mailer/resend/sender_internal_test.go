package resend

import (
	"testing"

	"github.com/resend/resend-go/v3"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/resignly/pkg/mailer"
)

func TestConvertTags(t *testing.T) {
	t.Parallel()

	assert.Nil(t, convertTags(nil))

	got := convertTags(mailer.Tags{
		"type":     "contact",
		"flagged":  struct{}{},
		"priority": 2,
		"urgent":   false,
	})
	assert.Equal(t, []resend.Tag{
		{Name: "flagged", Value: "true"},
		{Name: "priority", Value: "2"},
		{Name: "type", Value: "contact"},
		{Name: "urgent", Value: "false"},
	}, got)
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{APIKey: "re_123"}.Enabled())
	assert.NotNil(t, New(Config{APIKey: "re_123"}))
}
