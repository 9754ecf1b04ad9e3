package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionJWT(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateSessionJWT("s-1", "secret", time.Minute)
		require.NoError(t, err)

		sessionID, err := ParseSessionJWT(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, "s-1", sessionID)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := GenerateSessionJWT("s-1", "secret", -time.Minute)
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, "secret")
		assert.Error(t, err)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateSessionJWT("s-1", "secret", time.Minute)
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, "another")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}

func TestBearerToken(t *testing.T) {
	token, ok := BearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = BearerToken("Bearer ")
	assert.False(t, ok, "empty token")
	_, ok = BearerToken("Basic abc")
	assert.False(t, ok, "other scheme")
}

func TestGenerateRequestID(t *testing.T) {
	first, second := GenerateRequestID(), GenerateRequestID()
	assert.True(t, strings.HasPrefix(first, constvars.REQUEST_ID_PREFIX))
	assert.NotEqual(t, first, second)
}

func TestValidateAnswerShape(t *testing.T) {
	text := "42"
	for _, tc := range []struct {
		name    string
		request requests.AnswerQuestion
		valid   bool
	}{
		{"Text Only", requests.AnswerQuestion{Text: &text}, true},
		{"Selection Only", requests.AnswerQuestion{Selected: []string{"Fitbit"}}, true},
		{"Empty Selection", requests.AnswerQuestion{Selected: []string{}}, true},
		{"Neither", requests.AnswerQuestion{}, false},
		{"Both", requests.AnswerQuestion{Text: &text, Selected: []string{"Fitbit"}}, false},
		{"Blank Label", requests.AnswerQuestion{Selected: []string{""}}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(&tc.request)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAnswerShapeMessage(t *testing.T) {
	err := ValidateStruct(&requests.AnswerQuestion{})
	require.Error(t, err)
	assert.Equal(t,
		constvars.CustomValidationErrorMessages[constvars.ValidationTagAnswerShape],
		exceptions.FormatFirstValidationError(err),
		"the shape rule has no field prefix",
	)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("INTAKE_TEST_INT", "12")
	t.Setenv("INTAKE_TEST_BAD_INT", "twelve")
	t.Setenv("INTAKE_TEST_BOOL", "true")
	t.Setenv("INTAKE_TEST_BLANK", "  ")

	assert.Equal(t, 12, GetEnvInt("INTAKE_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("INTAKE_TEST_BAD_INT", 1), "unparseable values fall back")
	assert.True(t, GetEnvBool("INTAKE_TEST_BOOL", false))
	assert.Equal(t, "fallback", GetEnvString("INTAKE_TEST_BLANK", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("INTAKE_TEST_MISSING", "fallback"))
}

func TestBuildResponses(t *testing.T) {
	t.Run("Success Envelope", func(t *testing.T) {
		rec := httptest.NewRecorder()
		BuildSuccessResponse(rec, constvars.StatusCreated, "created", map[string]string{"id": "1"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, constvars.MIMEApplicationJSON, rec.Header().Get(constvars.HeaderContentType))
		assert.JSONEq(t, `{"success":true,"message":"created","data":{"id":"1"}}`, rec.Body.String())
	})

	t.Run("Custom Error", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.EnvironmentProduction)
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrIntakeSessionNotFound(nil, "s-1"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constvars.ErrClientIntakeSessionNotFound, body["message"])
		assert.NotContains(t, body, "dev_message", "dev message is hidden in production")
	})

	t.Run("Plain Error", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.EnvironmentDevelopment)
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
