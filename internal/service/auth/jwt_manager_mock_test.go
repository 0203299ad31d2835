package auth

import (
	"sync"

	"github.com/google/uuid"
)

// Ensure, that jwtManagerMock does implement jwtManager.
// If this is not the case, regenerate this file with moq.
var _ jwtManager = &jwtManagerMock{}

// jwtManagerMock is a mock implementation of jwtManager.
type jwtManagerMock struct {
	// GenerateAccessTokenFunc mocks the GenerateAccessToken method.
	GenerateAccessTokenFunc func(userID uuid.UUID) (string, error)

	// ValidateAccessTokenFunc mocks the ValidateAccessToken method.
	ValidateAccessTokenFunc func(token string) (uuid.UUID, error)

	// calls tracks calls to the methods.
	calls struct {
		// GenerateAccessToken holds details about calls to the GenerateAccessToken method.
		GenerateAccessToken []struct {
			// UserID is the userID argument value.
			UserID uuid.UUID
		}
		// ValidateAccessToken holds details about calls to the ValidateAccessToken method.
		ValidateAccessToken []struct {
			// Token is the token argument value.
			Token string
		}
	}
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
}

// GenerateAccessToken calls GenerateAccessTokenFunc.
func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{
		UserID: userID,
	}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID)
}

// GenerateAccessTokenCalls gets all the calls that were made to GenerateAccessToken.
func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

// ValidateAccessToken calls ValidateAccessTokenFunc.
func (mock *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

// ValidateAccessTokenCalls gets all the calls that were made to ValidateAccessToken.
func (mock *jwtManagerMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	mock.lockValidateAccessToken.RLock()
	calls := mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}
