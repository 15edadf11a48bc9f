package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/go-pkgz/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitwall-app/pitwall/app/notify/mocks"
)

func TestService_EmptyDestinations(t *testing.T) {
	svc := NewService(Params{}, SendersParams{})
	require.Nil(t, svc)
	assert.False(t, svc.IsOnFailure(), "nil service is disabled")
	assert.NoError(t, svc.Send(context.Background(), "subj", "text"), "nil service drops messages")
}

func TestMakeSaveFailureHTMLDefault(t *testing.T) {
	svc := NewService(Params{}, SendersParams{ToEmails: []string{"test@example.com"}})
	require.NotNil(t, svc)
	res, err := svc.MakeSaveFailureHTML("setting", "race.json", "some log")
	require.NoError(t, err)
	assert.Contains(t, res, "<li>File: <span class=\"bold\">race.json</span></li>")
	assert.Contains(t, res, "<li>Category: <span class=\"bold\">setting</span></li>")
	assert.Contains(t, res, "Pitwall failed to save")
	assert.Contains(t, res, "some log")
}

func TestMakeSaveFailureHTMLCustom(t *testing.T) {
	svc := NewService(Params{FailureTemplate: "testfiles/failure.tmpl"}, SendersParams{ToEmails: []string{"test@example.com"}})
	require.NotNil(t, svc)
	res, err := svc.MakeSaveFailureHTML("setting", "race.json", "some log")
	require.NoError(t, err)
	assert.Contains(t, res, "Save failed: race.json (setting)")
	assert.Contains(t, res, "some log")

	svc = NewService(Params{FailureTemplate: "testfiles/failure-bad.tmpl"}, SendersParams{ToEmails: []string{"test@example.com"}})
	require.NotNil(t, svc)
	res, err = svc.MakeSaveFailureHTML("setting", "race.json", "some log")
	require.NoError(t, err)
	assert.Contains(t, res, "<li>File: <span class=\"bold\">race.json</span></li>", "broken template falls back to default")

	svc = NewService(Params{FailureTemplate: "testfiles/does-not-exist.tmpl"}, SendersParams{ToEmails: []string{"test@example.com"}})
	require.NotNil(t, svc)
	res, err = svc.MakeSaveFailureHTML("setting", "race.json", "some log")
	require.NoError(t, err)
	assert.Contains(t, res, "Pitwall failed to save", "missing template falls back to default")
}

func TestService_IsOnFailure(t *testing.T) {
	svc := NewService(Params{EnabledFailure: true}, SendersParams{ToEmails: []string{"test@example.com"}})
	require.NotNil(t, svc)
	assert.True(t, svc.IsOnFailure())

	svc = NewService(Params{EnabledFailure: false}, SendersParams{ToEmails: []string{"test@example.com"}})
	require.NotNil(t, svc)
	assert.False(t, svc.IsOnFailure())
}

func TestService_Send(t *testing.T) {
	tests := []struct {
		name           string
		subj           string
		text           string
		destination    string
		mockSendErr    error
		expectedErrMsg string
	}{
		{
			name:        "Successful Send",
			subj:        "Test Subject",
			text:        "Test Text",
			destination: "mailto:to@example.com,to2@example.com?from=from@example.com&subject=Test+Subject",
			mockSendErr: nil,
		},
		{
			name:           "Send Error",
			subj:           "Problem Subject",
			text:           "Problem Text",
			destination:    "mailto:to@example.com,to2@example.com?from=from@example.com&subject=Problem+Subject",
			mockSendErr:    errors.New("mock error"),
			expectedErrMsg: "mock error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailtoNotifier := &mocks.NotifierMock{
				SendFunc: func(_ context.Context, dest string, text string) error {
					assert.Equal(t, tt.text, text)
					assert.Equal(t, tt.destination, dest)
					return tt.mockSendErr
				},
				SchemaFunc: func() string {
					return "mailto"
				},
			}

			s := Service{
				destinations: []notify.Notifier{mailtoNotifier},
				fromEmail:    "from@example.com",
				toEmail:      []string{"to@example.com", "to2@example.com"},
			}

			err := s.Send(context.Background(), tt.subj, tt.text)
			assert.Len(t, mailtoNotifier.SendCalls(), 1)
			if tt.expectedErrMsg == "" {
				require.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.expectedErrMsg)
			}
		})
	}
}

func TestService_SendRouting(t *testing.T) {
	slackNotifier := &mocks.NotifierMock{
		SendFunc:   func(context.Context, string, string) error { return nil },
		SchemaFunc: func() string { return "slack" },
	}
	hookNotifier := &mocks.NotifierMock{
		SendFunc:   func(context.Context, string, string) error { return nil },
		SchemaFunc: func() string { return "http" },
	}
	oddNotifier := &mocks.NotifierMock{
		SendFunc:   func(context.Context, string, string) error { return errors.New("should not be called") },
		SchemaFunc: func() string { return "carrier-pigeon" },
	}

	s := Service{
		destinations:  []notify.Notifier{slackNotifier, hookNotifier, oddNotifier},
		slackChannels: []string{"pit-alerts", "ops"},
		webhookURLs:   []string{"https://example.com/hook"},
	}

	require.NoError(t, s.Send(context.Background(), "save failed", "text"))

	require.Len(t, slackNotifier.SendCalls(), 2, "one send per channel")
	assert.Equal(t, "slack:pit-alerts?title=save+failed", slackNotifier.SendCalls()[0].Destination)
	assert.Equal(t, "slack:ops?title=save+failed", slackNotifier.SendCalls()[1].Destination)

	require.Len(t, hookNotifier.SendCalls(), 1)
	assert.Equal(t, "https://example.com/hook", hookNotifier.SendCalls()[0].Destination)

	assert.Empty(t, oddNotifier.SendCalls(), "unknown schema gets nothing")
}

func TestService_SendCollectsErrors(t *testing.T) {
	failing := &mocks.NotifierMock{
		SendFunc:   func(context.Context, string, string) error { return errors.New("boom") },
		SchemaFunc: func() string { return "telegram" },
	}
	working := &mocks.NotifierMock{
		SendFunc:   func(context.Context, string, string) error { return nil },
		SchemaFunc: func() string { return "http" },
	}

	s := Service{
		destinations:  []notify.Notifier{failing, working},
		telegramDests: []string{"12345"},
		webhookURLs:   []string{"https://example.com/hook"},
	}

	err := s.Send(context.Background(), "subj", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Len(t, working.SendCalls(), 1, "later destinations still attempted")
	assert.Equal(t, "telegram:12345", failing.SendCalls()[0].Destination)
}
