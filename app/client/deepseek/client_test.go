package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"legalmind/app/config"
	"legalmind/app/domain"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, token, baseURL string) *Client {
	t.Helper()

	di := do.New()
	t.Cleanup(func() { _ = di.Shutdown() })

	do.ProvideValue(di, &config.Config{
		DeepSeek: config.DeepSeek{
			BaseURL: baseURL,
			Token:   token,
			Model:   "deepseek-chat",
		},
	})

	client, err := New(di)
	require.NoError(t, err)

	return client
}

func completionServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int64) {
	t.Helper()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return server, &calls
}

func respondWithContent(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	require.NoError(t, err)
}

func TestAnalyze_NoCredentialShortCircuits(t *testing.T) {
	server, calls := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondWithContent(t, w, `{}`)
	})

	client := newTestClient(t, "", server.URL)

	analysis := client.Analyze(context.Background(), "בעיה כלשהי", nil)

	assert.Equal(t, domain.CategoryOther, analysis.Category)
	assert.Zero(t, analysis.Confidence)
	assert.Len(t, analysis.MissingInfo, 3)
	assert.Equal(t, int64(0), calls.Load(), "no network call may be attempted")
}

func TestAnalyze_Success(t *testing.T) {
	server, calls := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondWithContent(t, w, "```json\n{\"category\":\"שכירות\",\"complexity\":\"נמוכה\",\"summary\":\"בעיית פיקדון\",\"missing_info\":[],\"confidence\":0.9}\n```")
	})

	client := newTestClient(t, "test-token", server.URL)

	analysis := client.Analyze(context.Background(), "בעל הדירה לא מחזיר פיקדון", nil)

	assert.Equal(t, domain.CategoryRental, analysis.Category)
	assert.Equal(t, domain.ComplexityLow, analysis.Complexity)
	assert.Equal(t, "בעיית פיקדון", analysis.Summary)
	assert.InDelta(t, 0.9, analysis.Confidence, 0.0001)
	assert.Equal(t, int64(1), calls.Load())
}

func TestAnalyze_SlotsAppendedToPrompt(t *testing.T) {
	var gotBody struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
		TopP        float64 `json:"top_p"`
	}

	server, _ := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		respondWithContent(t, w, `{"category":"אחר","complexity":"בינונית","summary":"x"}`)
	})

	client := newTestClient(t, "test-token", server.URL)

	client.Analyze(context.Background(), "תיאור הבעיה", []Slot{
		{Name: "monthly_rent", Value: "4500"},
		{Name: "custom_slot", Value: "ערך"},
	})

	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)

	user := gotBody.Messages[1].Content
	assert.Contains(t, user, "תיאור הבעיה")
	assert.Contains(t, user, "מידע נוסף שנאסף")
	assert.Contains(t, user, "- שכר דירה חודשי: 4500")
	// unknown slot names pass through unchanged
	assert.Contains(t, user, "- custom_slot: ערך")

	assert.InDelta(t, 0.15, gotBody.Temperature, 0.0001)
	assert.Equal(t, 600, gotBody.MaxTokens)
	assert.InDelta(t, 0.9, gotBody.TopP, 0.0001)
}

func TestAnalyze_StatusErrorFallsBack(t *testing.T) {
	server, _ := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	})

	client := newTestClient(t, "test-token", server.URL)

	analysis := client.Analyze(context.Background(), "בעיה", nil)

	assert.Equal(t, domain.CategoryOther, analysis.Category)
	assert.Equal(t, domain.ComplexityMedium, analysis.Complexity)
	assert.Equal(t, summaryConnectionError, analysis.Summary)
	assert.InDelta(t, 0.2, analysis.Confidence, 0.0001)
}

func TestAnalyze_TimeoutFallsBack(t *testing.T) {
	server, _ := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		respondWithContent(t, w, `{}`)
	})

	client := newTestClient(t, "test-token", server.URL)
	client.timeout = 50 * time.Millisecond

	analysis := client.Analyze(context.Background(), "בעיה", nil)

	assert.Equal(t, summaryTimeout, analysis.Summary)
	assert.InDelta(t, 0.2, analysis.Confidence, 0.0001)
}

func TestAnalyze_UnparsableContentFallsBack(t *testing.T) {
	server, _ := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondWithContent(t, w, "תשובה חופשית בלי שום JSON")
	})

	client := newTestClient(t, "test-token", server.URL)

	analysis := client.Analyze(context.Background(), "בעיה", nil)

	assert.Equal(t, summaryParseError, analysis.Summary)
	assert.InDelta(t, 0.2, analysis.Confidence, 0.0001)
}

func TestAnalyze_NoChoicesFallsBack(t *testing.T) {
	server, _ := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	client := newTestClient(t, "test-token", server.URL)

	analysis := client.Analyze(context.Background(), "בעיה", nil)

	assert.Equal(t, summaryUnexpected, analysis.Summary)
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "תאריך הרכישה", SlotLabel("purchase_date"))
	assert.Equal(t, "unknown_name", SlotLabel("unknown_name"))
}
