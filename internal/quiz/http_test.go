package quiz

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func playRequest(t *testing.T, pool *stubPool, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	handler := NewHTTPHandler(seededSelector(pool, 42), zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandlePlay(rec, req)

	payload := map[string]interface{}{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func TestPlayReturnsQuestion(t *testing.T) {
	rec, payload := playRequest(t, poolOf(12),
		`{"quiz_category":{"id":0,"type":"All"},"previous_questions":[]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	question, ok := payload["question"].(map[string]interface{})
	assert.True(t, ok)
	assert.NotZero(t, question["id"])
}

func TestPlayAllAskedIsExhausted(t *testing.T) {
	rec, payload := playRequest(t, poolOf(12),
		`{"quiz_category":{"id":0,"type":"All"},"previous_questions":[1,2,3,4,5,6,7,8,9,10,11,12]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Nil(t, payload["question"])
	assert.Equal(t, true, payload["exhausted"])
}

func TestPlayCategoryScoped(t *testing.T) {
	rec, payload := playRequest(t, poolOf(6),
		`{"quiz_category":{"id":2,"type":"Art"},"previous_questions":[]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	question := payload["question"].(map[string]interface{})
	assert.EqualValues(t, 2, question["category"])
}

func TestPlayInvalidJSONIsBadRequest(t *testing.T) {
	rec, payload := playRequest(t, poolOf(6), `{"quiz_category":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
}

func TestPlayWrongMethod(t *testing.T) {
	handler := NewHTTPHandler(seededSelector(poolOf(6), 42), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/quizzes", nil)
	rec := httptest.NewRecorder()
	handler.HandlePlay(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
