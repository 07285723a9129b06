package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/radix-trie/internal/api"
	"github.com/kumarlokesh/radix-trie/internal/dictionary"
)

func TestAPI(t *testing.T) {
	dict := dictionary.NewService()
	server := api.NewServer(":0", dict)
	testServer := httptest.NewServer(server.Handler())
	defer testServer.Close()

	client := testServer.Client()

	t.Run("Add single word", func(t *testing.T) {
		req, err := http.NewRequest("PUT", fmt.Sprintf("%s/words/cat", testServer.URL), nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, dict.IsWord("cat"))
	})

	t.Run("Add many words", func(t *testing.T) {
		body := strings.NewReader(`["a", "ab", "b"]`)
		resp, err := client.Post(fmt.Sprintf("%s/words", testServer.URL), "application/json", body)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Added int `json:"added"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, 3, result.Added)
	})

	t.Run("Add many rejects malformed body", func(t *testing.T) {
		body := strings.NewReader(`{"not": "a list"}`)
		resp, err := client.Post(fmt.Sprintf("%s/words", testServer.URL), "application/json", body)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Lookup word", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/words/cat", testServer.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Word  string `json:"word"`
			Found bool   `json:"found"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "cat", result.Word)
		assert.True(t, result.Found)
	})

	t.Run("Lookup missing word", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/words/dog", testServer.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Word  string `json:"word"`
			Found bool   `json:"found"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.False(t, result.Found)
	})

	t.Run("Sentence query", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/sentences/ab", testServer.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Text     string `json:"text"`
			Sentence bool   `json:"sentence"`
			Count    int    `json:"count"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "ab", result.Text)
		assert.True(t, result.Sentence)
		assert.Equal(t, 2, result.Count) // "ab" and "a"+"b"
	})

	t.Run("Non-segmentable sentence", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/sentences/abc", testServer.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		var result struct {
			Sentence bool `json:"sentence"`
			Count    int  `json:"count"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.False(t, result.Sentence)
		assert.Equal(t, 0, result.Count)
	})

	t.Run("Stats", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/stats", testServer.URL))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			WordsAdded int `json:"words_added"`
			Nodes      int `json:"nodes"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, 4, result.WordsAdded)
		// root, "cat", "a", the "b" under "a", and the top-level "b"
		assert.Equal(t, 5, result.Nodes)
	})
}
