package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wishlist/config"
	"wishlist/internal/delivery/http/binder"
	httpmiddleware "wishlist/internal/delivery/http/middleware"
	"wishlist/internal/delivery/http/response"
	"wishlist/internal/delivery/http/validator"
	deliverymiddleware "wishlist/internal/delivery/middleware"
	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/infra/ratelimit"
	mockrepository "wishlist/internal/mocks/repository"
	mockusecase "wishlist/internal/mocks/usecase"
	"wishlist/internal/usecase"
	"wishlist/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pipelineFixtures wires a real Echo instance the way the production server
// does: strict binder, validator, correlation IDs, login throttling and the
// RFC 7807 error handler, with the usecases mocked out.
type pipelineFixtures struct {
	e        *echo.Echo
	authUC   *mockusecase.MockAuthUsecase
	userUC   *mockusecase.MockUserUsecase
	wishRepo *mockrepository.MockWishRepository
}

func createTestPipeline(t *testing.T) *pipelineFixtures {
	t.Helper()

	cfg := &config.Config{
		RateLimit: &config.RateLimitConfig{Enabled: true},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authUC := mockusecase.NewMockAuthUsecase(t)
	userUC := mockusecase.NewMockUserUsecase(t)

	// The wish routes use the real service so sanitization runs end to end.
	wishRepo := mockrepository.NewMockWishRepository(t)
	wishUC := impl.NewWishService(impl.WishServiceParams{WishRepo: wishRepo, Logger: logger})

	limiter := ratelimit.NewLoginLimiter()
	authHandler := NewAuthHandler(authUC, limiter, logger)
	userHandler := NewUserHandler(userUC, logger)
	wishHandler := NewWishHandler(wishUC, logger)

	errorMW := httpmiddleware.NewErrorMiddleware(logger, cfg)
	rateLimitMW := httpmiddleware.NewRateLimitMiddleware(limiter, cfg)
	authMW := httpmiddleware.NewAuthMiddleware(authUC, logger)
	correlationMW := deliverymiddleware.NewCorrelationIDMiddleware(logger)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorMW.HandleHTTPError
	e.Binder = binder.New()
	e.Validator = validator.New()
	e.Use(correlationMW.Process)
	e.Use(rateLimitMW.Throttle)

	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.GET("/auth/me", authHandler.Me, authMW.Authenticate)
	e.GET("/users/me", userHandler.GetProfile, authMW.Authenticate)
	e.PATCH("/users/me", userHandler.UpdateProfile, authMW.Authenticate)
	e.DELETE("/users/me", userHandler.DeleteAccount, authMW.Authenticate)
	e.POST("/wishes", wishHandler.Create, authMW.Authenticate)
	e.GET("/wishes", wishHandler.List, authMW.Authenticate)

	return &pipelineFixtures{e: e, authUC: authUC, userUC: userUC, wishRepo: wishRepo}
}

func (f *pipelineFixtures) do(method, path, body string, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) response.Problem {
	t.Helper()

	var problem response.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))

	return problem
}

func TestPipeline_LoginSuccess(t *testing.T) {
	f := createTestPipeline(t)

	f.authUC.On("Login", mock.Anything, &usecase.LoginInput{
		Identifier: "alice",
		Password:   "AlicePass123!",
	}).Return(&usecase.TokenOutput{
		AccessToken: "some.signed.token",
		TokenType:   "bearer",
		ExpiresIn:   1800,
	}, nil)

	rec := f.do(http.MethodPost, "/auth/login", `{"username":"alice","password":"AlicePass123!"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "some.signed.token")
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-Id"))
}

func TestPipeline_RefreshUsesBodyToken(t *testing.T) {
	f := createTestPipeline(t)

	f.authUC.On("Refresh", mock.Anything, "old.token.value").Return(&usecase.TokenOutput{
		AccessToken: "new.token.value",
		TokenType:   "bearer",
		ExpiresIn:   1800,
	}, nil)

	rec := f.do(http.MethodPost, "/auth/refresh", `{"refresh_token":"old.token.value"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new.token.value")
}

func TestPipeline_ProblemDocumentShape(t *testing.T) {
	f := createTestPipeline(t)

	f.authUC.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := f.do(http.MethodPost, "/auth/login", `{"username":"ghost","password":"whatever1"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, response.MIMEProblemJSON, rec.Header().Get(echo.HeaderContentType))

	problem := decodeProblem(t, rec)
	assert.Equal(t, "https://api.wishlist.com/errors/unauthorized", problem.Type)
	assert.Equal(t, "Unauthorized", problem.Title)
	assert.Equal(t, http.StatusUnauthorized, problem.Status)
	require.NotNil(t, problem.Error)
	assert.Equal(t, "unauthorized", problem.Error.Code)
	assert.Equal(t, "Invalid username or password", problem.Error.Message)
	assert.NotEmpty(t, problem.CorrelationID)
	assert.NotEmpty(t, problem.Timestamp)
	assert.Equal(t, problem.CorrelationID, rec.Header().Get("X-Correlation-Id"))
}

func TestPipeline_LoginFailuresLookIdentical(t *testing.T) {
	f := createTestPipeline(t)

	// Unknown identifier and wrong password surface the same error value, so
	// the two response bodies must match in everything but correlation ID
	// and timestamp.
	f.authUC.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials).Twice()

	unknownUser := f.do(http.MethodPost, "/auth/login", `{"username":"ghost","password":"whatever1"}`, nil)
	wrongPassword := f.do(http.MethodPost, "/auth/login", `{"username":"alice","password":"wrongpass1"}`, nil)

	assert.Equal(t, unknownUser.Code, wrongPassword.Code)

	first := decodeProblem(t, unknownUser)
	second := decodeProblem(t, wrongPassword)
	assert.Equal(t, first.Type, second.Type)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Detail, second.Detail)
	assert.Equal(t, first.Error, second.Error)
}

func TestPipeline_CorrelationIDIsFreshPerRequest(t *testing.T) {
	f := createTestPipeline(t)

	f.authUC.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials).Twice()

	// A client-supplied correlation ID must never be echoed back.
	header := http.Header{"X-Correlation-Id": []string{"attacker-chosen-id"}}
	first := f.do(http.MethodPost, "/auth/login", `{"username":"a-user","password":"whatever1"}`, header)
	second := f.do(http.MethodPost, "/auth/login", `{"username":"a-user","password":"whatever1"}`, nil)

	firstID := first.Header().Get("X-Correlation-Id")
	secondID := second.Header().Get("X-Correlation-Id")
	assert.NotEqual(t, "attacker-chosen-id", firstID)
	assert.NotEmpty(t, firstID)
	assert.NotEqual(t, firstID, secondID)
}

func TestPipeline_LoginRateLimited(t *testing.T) {
	f := createTestPipeline(t)

	// Two attempts reach the handler in a 60 second window; the third
	// fills the window and gets 429 before the handler runs.
	f.authUC.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials).Twice()

	body := `{"username":"alice","password":"wrongpass1"}`
	for range 2 {
		rec := f.do(http.MethodPost, "/auth/login", body, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := f.do(http.MethodPost, "/auth/login", body, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	problem := decodeProblem(t, rec)
	require.NotNil(t, problem.Error)
	assert.Equal(t, "rate_limit_exceeded", problem.Error.Code)
}

func TestPipeline_RateLimiterLeavesOtherRoutesAlone(t *testing.T) {
	f := createTestPipeline(t)

	// Logout-style unauthenticated reads and other routes never hit the
	// throttle, no matter how many login attempts preceded them.
	f.authUC.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials).Twice()
	f.authUC.On("CurrentUser", mock.Anything, "valid-token").
		Return(&entity.User{ID: 42, Username: "alice"}, nil)

	body := `{"username":"alice","password":"wrongpass1"}`
	for range 3 {
		f.do(http.MethodPost, "/auth/login", body, nil)
	}

	header := http.Header{"Authorization": []string{"Bearer valid-token"}}
	rec := f.do(http.MethodGet, "/auth/me", "", header)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPipeline_UnknownFieldRejected(t *testing.T) {
	f := createTestPipeline(t)

	rec := f.do(http.MethodPost, "/auth/login", `{"username":"alice","password":"pw123456","is_admin":true}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	problem := decodeProblem(t, rec)
	require.NotNil(t, problem.Error)
	assert.Equal(t, "validation_error", problem.Error.Code)
}

func TestPipeline_MalformedJSONRejected(t *testing.T) {
	f := createTestPipeline(t)

	rec := f.do(http.MethodPost, "/auth/login", `{"username": "alice",`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	problem := decodeProblem(t, rec)
	require.NotNil(t, problem.Error)
	assert.Equal(t, "validation_error", problem.Error.Code)
}

func TestPipeline_MissingBearerToken(t *testing.T) {
	f := createTestPipeline(t)

	rec := f.do(http.MethodGet, "/auth/me", "", nil)

	// A request with no Authorization header at all is refused before any
	// token handling, as 403 rather than 401.
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, response.MIMEProblemJSON, rec.Header().Get(echo.HeaderContentType))
}

func TestPipeline_InvalidBearerToken(t *testing.T) {
	f := createTestPipeline(t)

	f.authUC.On("CurrentUser", mock.Anything, "garbage").
		Return(nil, domainerrors.ErrTokenInvalid)

	header := http.Header{"Authorization": []string{"Bearer garbage"}}
	rec := f.do(http.MethodGet, "/auth/me", "", header)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPipeline_MarkupInWishRejected(t *testing.T) {
	f := createTestPipeline(t)

	f.authUC.On("CurrentUser", mock.Anything, "valid-token").
		Return(&entity.User{ID: 42, Username: "alice"}, nil)

	header := http.Header{"Authorization": []string{"Bearer valid-token"}}
	rec := f.do(http.MethodPost, "/wishes", `{"title":"<script>alert(1)</script>"}`, header)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	problem := decodeProblem(t, rec)
	require.NotNil(t, problem.Error)
	assert.Equal(t, "validation_error", problem.Error.Code)
	assert.Contains(t, problem.Error.Message, "HTML/JS content is not allowed")
}

func TestPipeline_DeleteAccount(t *testing.T) {
	f := createTestPipeline(t)

	f.authUC.On("CurrentUser", mock.Anything, "valid-token").
		Return(&entity.User{ID: 42, Username: "alice"}, nil)
	f.userUC.On("DeleteAccount", mock.Anything, int64(42)).Return(nil)

	header := http.Header{"Authorization": []string{"Bearer valid-token"}}
	rec := f.do(http.MethodDelete, "/users/me", "", header)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestPipeline_BadPaginationRejected(t *testing.T) {
	f := createTestPipeline(t)

	f.authUC.On("CurrentUser", mock.Anything, "valid-token").
		Return(&entity.User{ID: 42, Username: "alice"}, nil)

	header := http.Header{"Authorization": []string{"Bearer valid-token"}}
	rec := f.do(http.MethodGet, "/wishes?limit=500", "", header)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	problem := decodeProblem(t, rec)
	require.NotNil(t, problem.Error)
	assert.Equal(t, "validation_error", problem.Error.Code)
}
