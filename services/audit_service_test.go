package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/repositories"
	"github.com/NascpHisCommunity/Nascap-website/repositories/mocks"
)

// AuditServiceTestSuite is a test suite for the audit service
type AuditServiceTestSuite struct {
	suite.Suite
	service       AuditService
	mockAuditRepo *mocks.MockAuditRepository
}

// SetupTest sets up the test suite before each test
func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockAuditRepo = mocks.NewMockAuditRepository(suite.T())
	suite.service = NewAuditService(suite.mockAuditRepo)
}

// TestRecord_UnknownAction tests that a bogus action is rejected without touching the store
func (suite *AuditServiceTestSuite) TestRecord_UnknownAction() {
	// Act - no mock expectations set: the repository must not be called
	entry, err := suite.service.Record(context.Background(), "page_deleted", nil, "10.0.0.1", "/", "", nil)

	// Assert
	assert.Nil(suite.T(), entry)
	var validationErr *models.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
	assert.Equal(suite.T(), "action", validationErr.Field)
}

// TestRecord_PathTooLong tests that an over-length path is rejected without touching the store
func (suite *AuditServiceTestSuite) TestRecord_PathTooLong() {
	longPath := "/"
	for len(longPath) <= models.MaxAuditPathLen {
		longPath += "a"
	}

	// Act
	entry, err := suite.service.Record(context.Background(), models.ActionPageView, nil, "10.0.0.1", longPath, "", nil)

	// Assert
	assert.Nil(suite.T(), entry)
	var validationErr *models.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
	assert.Equal(suite.T(), "path", validationErr.Field)
}

// TestRecord_Success tests that a valid entry reaches the store and comes back with store-assigned fields
func (suite *AuditServiceTestSuite) TestRecord_Success() {
	userID := int64(7)

	suite.mockAuditRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(entry *models.AuditLog) bool {
			return entry.Action == models.ActionPageView &&
				entry.UserID != nil && *entry.UserID == userID &&
				entry.IPAddress == "203.0.113.9" &&
				entry.Path == "/news/budget-2026"
		})).
		Run(func(ctx context.Context, entry *models.AuditLog) {
			entry.ID = 42
		}).
		Return(nil)

	// Act
	entry, err := suite.service.Record(context.Background(), models.ActionPageView, &userID, "203.0.113.9", "/news/budget-2026", "Mozilla/5.0", nil)

	// Assert
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), entry)
	assert.Equal(suite.T(), int64(42), entry.ID)
}

// TestRecord_StorageError tests that a storage failure propagates to the caller
func (suite *AuditServiceTestSuite) TestRecord_StorageError() {
	storageErr := &repositories.StorageError{Op: "create audit entry", Err: errors.New("disk full")}
	suite.mockAuditRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*models.AuditLog")).
		Return(storageErr)

	// Act
	entry, err := suite.service.Record(context.Background(), models.ActionLogin, nil, "", "", "", nil)

	// Assert
	assert.Nil(suite.T(), entry)
	var se *repositories.StorageError
	assert.ErrorAs(suite.T(), err, &se)
}

// TestRecordAuthEvent_KindMapping tests that each lifecycle event maps onto its audit action
func (suite *AuditServiceTestSuite) TestRecordAuthEvent_KindMapping() {
	testCases := []struct {
		name           string
		kind           AuthEventKind
		expectedAction models.AuditAction
	}{
		{name: "login succeeded", kind: LoginSucceeded, expectedAction: models.ActionLogin},
		{name: "logged out", kind: LoggedOut, expectedAction: models.ActionLogout},
		{name: "login failed", kind: LoginFailed, expectedAction: models.ActionFailedLogin},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.SetupTest()
			suite.mockAuditRepo.EXPECT().
				Create(mock.Anything, mock.MatchedBy(func(entry *models.AuditLog) bool {
					return entry.Action == tc.expectedAction
				})).
				Return(nil)

			_, err := suite.service.RecordAuthEvent(context.Background(), AuthEvent{Kind: tc.kind})
			assert.NoError(t, err)
		})
	}
}

// TestRecordAuthEvent_UnknownKind tests rejection of an unmapped event kind
func (suite *AuditServiceTestSuite) TestRecordAuthEvent_UnknownKind() {
	entry, err := suite.service.RecordAuthEvent(context.Background(), AuthEvent{Kind: AuthEventKind(99)})

	assert.Nil(suite.T(), entry)
	var validationErr *models.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
	assert.Equal(suite.T(), "kind", validationErr.Field)
}

// TestRecordAuthEvent_FailedLoginRedactsCredentials tests that submitted passwords never
// reach the store verbatim while usernames survive
func (suite *AuditServiceTestSuite) TestRecordAuthEvent_FailedLoginRedactsCredentials() {
	var stored *models.AuditLog
	suite.mockAuditRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*models.AuditLog")).
		Run(func(ctx context.Context, entry *models.AuditLog) {
			stored = entry
		}).
		Return(nil)

	event := AuthEvent{
		Kind: LoginFailed,
		Credentials: map[string]any{
			"username":   "intruder",
			"password":   "hunter2",
			"csrf_token": "abc123",
		},
		IPAddress: "198.51.100.4",
		Path:      "/login",
	}

	// Act
	_, err := suite.service.RecordAuthEvent(context.Background(), event)

	// Assert
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), stored)
	assert.Nil(suite.T(), stored.UserID)

	credentials, ok := stored.AdditionalData["credentials"].(map[string]any)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "intruder", credentials["username"])
	assert.Equal(suite.T(), "[REDACTED]", credentials["password"])
	assert.Equal(suite.T(), "[REDACTED]", credentials["csrf_token"])
}

// TestRecordAuthEvent_SuccessWithoutCredentials tests that successful logins carry no
// additional data even when the caller passed the form along
func (suite *AuditServiceTestSuite) TestRecordAuthEvent_SuccessWithoutCredentials() {
	userID := int64(3)
	suite.mockAuditRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(entry *models.AuditLog) bool {
			return entry.Action == models.ActionLogin && entry.AdditionalData == nil
		})).
		Return(nil)

	_, err := suite.service.RecordAuthEvent(context.Background(), AuthEvent{
		Kind:        LoginSucceeded,
		UserID:      &userID,
		Credentials: map[string]any{"username": "editor", "password": "correct"},
	})

	assert.NoError(suite.T(), err)
}

// TestRecentEntries_LimitClamping tests the default and maximum limits on the log view
func (suite *AuditServiceTestSuite) TestRecentEntries_LimitClamping() {
	testCases := []struct {
		name          string
		requested     int
		expectedLimit int
	}{
		{name: "zero falls back to default", requested: 0, expectedLimit: 100},
		{name: "negative falls back to default", requested: -5, expectedLimit: 100},
		{name: "over maximum falls back to default", requested: 1000, expectedLimit: 100},
		{name: "in-range passes through", requested: 50, expectedLimit: 50},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.SetupTest()
			suite.mockAuditRepo.EXPECT().
				List(mock.Anything, tc.expectedLimit).
				Return([]models.AuditLog{}, nil)

			_, err := suite.service.RecentEntries(context.Background(), tc.requested)
			assert.NoError(t, err)
		})
	}
}

// TestSummarize_CombinesAggregates tests the dashboard summary assembly
func (suite *AuditServiceTestSuite) TestSummarize_CombinesAggregates() {
	pageViews := []models.PathCount{
		{Path: "/news", Count: 12},
		{Path: "/events", Count: 4},
	}
	suite.mockAuditRepo.EXPECT().PerPathCounts(mock.Anything).Return(pageViews, nil)
	suite.mockAuditRepo.EXPECT().DistinctVisitorCount(mock.Anything).Return(9, nil)

	// Act
	summary, err := suite.service.Summarize(context.Background())

	// Assert
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), summary)
	assert.Equal(suite.T(), pageViews, summary.PageViews)
	assert.Equal(suite.T(), 9, summary.TotalVisitors)
}

// TestSummarize_AggregateError tests that an aggregation failure surfaces with context
func (suite *AuditServiceTestSuite) TestSummarize_AggregateError() {
	suite.mockAuditRepo.EXPECT().PerPathCounts(mock.Anything).Return(nil, errors.New("query failed"))

	summary, err := suite.service.Summarize(context.Background())

	assert.Nil(suite.T(), summary)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to aggregate page views")
}

// TestRunAuditServiceTestSuite runs the test suite
func TestRunAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
