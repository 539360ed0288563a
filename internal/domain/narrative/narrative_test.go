package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() Request {
	return Request{
		Scores: []CriterionScore{
			{Criterion: "Technical Skills", Score: 4},
			{Criterion: "Communication", Score: 3.5},
		},
		EngineerName: "Ada Lovelace",
		Role:         "Software Engineer",
		Department:   "Platform",
	}
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) *OpenAIGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAIGateway(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Timeout: 5 * time.Second})
}

func TestPromptListsScoresInOrder(t *testing.T) {
	prompt := Prompt(sampleRequest())

	assert.Contains(t, prompt, "Ada Lovelace, a Software Engineer in the Platform department")
	tech := strings.Index(prompt, "Technical Skills: 4/5")
	comm := strings.Index(prompt, "Communication: 3.5/5")
	require.NotEqual(t, -1, tech)
	require.NotEqual(t, -1, comm)
	assert.Less(t, tech, comm)
	assert.Contains(t, prompt, "6. Includes specific recommendations for growth")
}

func TestGenerateSuccess(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body struct {
			Model       string  `json:"model"`
			Temperature float64 `json:"temperature"`
			MaxTokens   int     `json:"max_tokens"`
			Messages    []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4-turbo-preview", body.Model)
		assert.InDelta(t, 0.7, body.Temperature, 0.001)
		assert.Equal(t, 1000, body.MaxTokens)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "user", body.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Ada is doing great."},"finish_reason":"stop"}]}`))
	})

	out, err := gw.Generate(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "Ada is doing great.", out)
}

func TestGenerateClassifiesUpstreamFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   Kind
	}{
		{name: "quota", status: http.StatusTooManyRequests, want: KindQuota},
		{name: "unauthorized", status: http.StatusUnauthorized, want: KindUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: KindUnauthorized},
		{name: "server error", status: http.StatusInternalServerError, want: KindUnavailable},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"error":{"message":"upstream says no","type":"test_error"}}`))
			})

			_, err := gw.Generate(context.Background(), sampleRequest())
			require.Error(t, err)
			assert.Equal(t, tc.want, Classify(err))
		})
	}
}

func TestGenerateEmptyChoices(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","choices":[]}`))
	})

	_, err := gw.Generate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGenerateUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gw := NewOpenAIGateway(OpenAIConfig{APIKey: "sk-test", BaseURL: url, Timeout: time.Second})
	_, err := gw.Generate(context.Background(), sampleRequest())
	assert.Equal(t, KindUnavailable, Classify(err))
}

func TestDisabledGateway(t *testing.T) {
	_, err := Disabled{}.Generate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, KindUnauthorized, Classify(err))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindNone, Classify(nil))
	assert.Equal(t, KindUnavailable, Classify(errors.New("boom")))
	assert.Equal(t, "quota", KindQuota.String())
}
