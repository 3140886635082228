package infrastructure

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

	"connect-skills/domain"
)

func scoringServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req scoringRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func score(t *testing.T, body string) ([]domain.CompatibilityResult, error) {
	t.Helper()
	srv := scoringServer(t, http.StatusOK, body)
	client := NewScoringClientWith(srv.URL, 5*time.Second)
	return client.ScoreCompatibility(context.Background(),
		[]string{"Q1"},
		[]domain.AnswerItem{{Item: "Q1", Resposta: "resposta"}},
	)
}

func TestScoreCompatibilityTextualRating(t *testing.T) {
	results, err := score(t, `{"results": [{"Item":"Q1","rating":"4.7 pts"}]}`)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Q1", results[0].Item)
	require.NotNil(t, results[0].Rating)
	assert.Equal(t, 5, *results[0].Rating)
}

func TestScoreCompatibilityStringWrappedBody(t *testing.T) {
	inner := `{"items": [{"item":"Q1","score":3.2}]}`
	wrapped, err := json.Marshal(inner)
	require.NoError(t, err)

	results, err := score(t, string(wrapped))
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Q1", results[0].Item)
	require.NotNil(t, results[0].Rating)
	assert.Equal(t, 3, *results[0].Rating)
}

func TestScoreCompatibilityAlternateShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"result field", `{"result": [{"titulo":"Q1","nota":4}]}`},
		{"nested data.results", `{"data": {"results": [{"item":"Q1","rating":4}]}}`},
		{"nested data.items", `{"data": {"items": [{"item":"Q1","rating":4}]}}`},
		{"top-level array", `[{"item":"Q1","rating":4}]`},
		{"string-encoded results field", `{"results": "[{\"item\":\"Q1\",\"rating\":4}]"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := score(t, tc.body)
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, "Q1", results[0].Item)
			require.NotNil(t, results[0].Rating)
			assert.Equal(t, 4, *results[0].Rating)
		})
	}
}

func TestScoreCompatibilityDropsEntriesWithoutItem(t *testing.T) {
	results, err := score(t, `{"results": [{"rating": 5}, {"item":"", "rating": 4}, {"item":"Q2","rating":2}]}`)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Q2", results[0].Item)
}

func TestScoreCompatibilityNilRatings(t *testing.T) {
	results, err := score(t, `{"results": [{"item":"Q1","rating":"sem nota"}, {"item":"Q2"}, {"item":"Q3","rating":true}]}`)
	require.NoError(t, err)

	require.Len(t, results, 3)
	for _, r := range results {
		assert.Nil(t, r.Rating)
	}
}

func TestScoreCompatibilityNegativeAndRounding(t *testing.T) {
	results, err := score(t, `{"results": [{"item":"Q1","rating":"-2.6"}, {"item":"Q2","rating":2.5}]}`)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, -3, *results[0].Rating)
	assert.Equal(t, 3, *results[1].Rating)
}

func TestScoreCompatibilityUnrecognizableShape(t *testing.T) {
	_, err := score(t, `{"mensagem": "tudo certo"}`)
	require.Error(t, err)

	var remoteErr *RemoteScoringError
	require.ErrorAs(t, err, &remoteErr)
	assert.Contains(t, remoteErr.Preview, "tudo certo")
}

func TestScoreCompatibilityPreviewIsTruncated(t *testing.T) {
	huge := `{"mensagem": "` + strings.Repeat("x", 2000) + `"}`
	_, err := score(t, huge)

	var remoteErr *RemoteScoringError
	require.ErrorAs(t, err, &remoteErr)
	assert.LessOrEqual(t, len([]rune(remoteErr.Preview)), previewLimit+3)
}

func TestScoreCompatibilityNonJSONBody(t *testing.T) {
	_, err := score(t, `<html>erro interno</html>`)

	var remoteErr *RemoteScoringError
	require.ErrorAs(t, err, &remoteErr)
	assert.Contains(t, remoteErr.Preview, "erro interno")
}

func TestScoreCompatibilityNon2xx(t *testing.T) {
	srv := scoringServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
	client := NewScoringClientWith(srv.URL, 5*time.Second)

	_, err := client.ScoreCompatibility(context.Background(), []string{"Q1"}, nil)
	var remoteErr *RemoteScoringError
	require.ErrorAs(t, err, &remoteErr)
	assert.Contains(t, remoteErr.Error(), "status 500")
}

func TestScoreCompatibilityNetworkFailure(t *testing.T) {
	srv := scoringServer(t, http.StatusOK, `{}`)
	srv.Close()

	client := NewScoringClientWith(srv.URL, time.Second)
	_, err := client.ScoreCompatibility(context.Background(), []string{"Q1"}, nil)

	var remoteErr *RemoteScoringError
	require.True(t, errors.As(err, &remoteErr))
}
