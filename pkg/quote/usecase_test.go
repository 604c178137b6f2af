package quote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/swiftstream/site/pkg/llm"
)

type MockCompletionModel struct {
	mock.Mock
}

func (m *MockCompletionModel) Complete(ctx context.Context, prompt string, schema llm.Schema) (string, error) {
	args := m.Called(ctx, prompt, schema)
	return args.String(0), args.Error(1)
}

func validRequest() Request {
	return Request{Origin: "Shanghai, CN", Destination: "Los Angeles, USA", Weight: 10, Dimensions: "1x1x1 m", Type: TransportOcean}
}

const validDoc = `{"estimatedCost":1850,"currency":"USD","transitTimeDays":"18-24 days","routeSummary":"Trans-Pacific","recommendation":"Consolidate with LCL."}`

func TestGenerateReturnsParsedQuote(t *testing.T) {
	m := new(MockCompletionModel)
	req := validRequest()
	m.On("Complete", mock.Anything, BuildPrompt(req), ResponseSchema()).Return(validDoc, nil).Once()

	svc := NewService(m, "google/gemini-2.5-flash")
	got, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1850.0, got.EstimatedCost)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "Consolidate with LCL.", got.Recommendation)
	assert.Equal(t, "google/gemini-2.5-flash", svc.Model())
	m.AssertExpectations(t)
}

func TestGenerateMissingPlacesNeverCallsModel(t *testing.T) {
	m := new(MockCompletionModel)
	svc := NewService(m, "model")

	for _, req := range []Request{
		{Destination: "Berlin", Weight: 1, Type: TransportAir},
		{Origin: "Paris", Weight: 1, Type: TransportAir},
		{Origin: "   ", Destination: "\t", Weight: 1, Type: TransportAir},
	} {
		_, err := svc.Generate(context.Background(), req)
		var verr ErrValidation
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, MsgRequiredFields, verr.Error())
	}
	m.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateRejectsBadWeightAndType(t *testing.T) {
	m := new(MockCompletionModel)
	svc := NewService(m, "model")

	req := validRequest()
	req.Weight = 0
	_, err := svc.Generate(context.Background(), req)
	assert.EqualError(t, err, "weight must be greater than 0 kg")

	req = validRequest()
	req.Type = "teleport"
	_, err = svc.Generate(context.Background(), req)
	assert.EqualError(t, err, "transport type must be one of air, ocean, road, rail")

	m.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateMapsProviderFailures(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		err     error
		wantErr error
	}{
		{"network", "", errors.New("dial tcp: connection refused"), ErrServiceUnavailable},
		{"no text", "", llm.ErrEmptyCompletion, ErrEmptyResponse},
		{"malformed", "{not json", nil, ErrMalformedResponse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := new(MockCompletionModel)
			m.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(tc.raw, tc.err).Once()

			got, err := NewService(m, "model").Generate(context.Background(), validRequest())
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, IsUpstream(err))
			assert.Equal(t, Response{}, got)
			m.AssertNumberOfCalls(t, "Complete", 1)
		})
	}
}
