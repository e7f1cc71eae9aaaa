package opentdb

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(rt http.RoundTripper, opts ...Option) *Client {
	return NewClient(&http.Client{Transport: rt}, opts...)
}

func jsonResponse(status int, body []byte) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchQuestionsUsesDefaultAmountWhenNonPositive(t *testing.T) {
	var seenAmount string

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seenAmount = r.URL.Query().Get("amount")
		return jsonResponse(http.StatusOK, []byte(`{"response_code":0,"results":[]}`)), nil
	}))

	questions, err := client.FetchQuestions(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, questions)
	assert.Equal(t, "10", seenAmount)
}

func TestFetchQuestionsCapsAmount(t *testing.T) {
	var seenAmount string

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seenAmount = r.URL.Query().Get("amount")
		return jsonResponse(http.StatusOK, []byte(`{"response_code":0,"results":[]}`)), nil
	}))

	_, err := client.FetchQuestions(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, "50", seenAmount)
}

func TestFetchQuestionsUsesConfiguredBaseURL(t *testing.T) {
	var seenURL string

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seenURL = r.URL.String()
		return jsonResponse(http.StatusOK, []byte(`{"response_code":0,"results":[]}`)), nil
	}), WithBaseURL("http://trivia.local/api.php?category=9"))

	_, err := client.FetchQuestions(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "http://trivia.local/api.php?amount=3&category=9", seenURL)
}

func TestFetchQuestionsDecodesResults(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		body := `{"response_code":0,"results":[{"type":"multiple","difficulty":"hard",` +
			`"category":"Art","question":"Who painted &quot;Guernica&quot;?",` +
			`"correct_answer":"Pablo Picasso","incorrect_answers":["Dali","Miro","Goya"]}]}`
		return jsonResponse(http.StatusOK, []byte(body)), nil
	}))

	questions, err := client.FetchQuestions(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Art", questions[0].Category)
	assert.Equal(t, "hard", questions[0].Difficulty)
	assert.Equal(t, "Who painted &quot;Guernica&quot;?", questions[0].Question)
	assert.Equal(t, "Pablo Picasso", questions[0].CorrectAnswer)
	assert.Len(t, questions[0].IncorrectAnswers, 3)
}

func TestFetchQuestionsPropagatesNonOKStatus(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, nil), nil
	}))

	_, err := client.FetchQuestions(context.Background(), 5)
	assert.ErrorContains(t, err, "status 502")
}

func TestFetchQuestionsJSONDecodeError(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, []byte("not-json")), nil
	}))

	_, err := client.FetchQuestions(context.Background(), 3)
	assert.Error(t, err)
}

func TestFetchQuestionsNonZeroResponseCode(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		encoded, err := json.Marshal(apiResponse{
			ResponseCode: 1,
			Results:      []RawQuestion{{Question: "ignored"}},
		})
		require.NoError(t, err)
		return jsonResponse(http.StatusOK, encoded), nil
	}))

	_, err := client.FetchQuestions(context.Background(), 3)
	assert.ErrorContains(t, err, "response_code=1")
}
