package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// fakeTwilio implements twilioAPI for tests.
type fakeTwilio struct {
	params *openapi.CreateMessageParams
}

func (f *fakeTwilio) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f.params = params
	sid := "SM123"
	return &openapi.ApiV2010Message{Sid: &sid}, nil
}

func TestTwilioTexter_Send(t *testing.T) {
	api := &fakeTwilio{}
	texter := &twilioTexter{api: api, from: "+15550000000", logger: testLogger()}

	require.NoError(t, texter.Send(context.Background(), "+1 (555) 123-4567", "hello"))

	require.NotNil(t, api.params)
	assert.Equal(t, "+15551234567", *api.params.To)
	assert.Equal(t, "+15550000000", *api.params.From)
	assert.Equal(t, "hello", *api.params.Body)

	assert.Error(t, texter.Send(context.Background(), "", "hello"))
}

func TestNewTexter(t *testing.T) {
	_, err := NewTexter(TexterConfig{Provider: "twilio"}, testLogger())
	assert.Error(t, err)

	texter, err := NewTexter(TexterConfig{Provider: "noop"}, testLogger())
	require.NoError(t, err)
	assert.NoError(t, texter.Send(context.Background(), "+1555", "hi"))
}
