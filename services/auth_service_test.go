package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/repositories/mocks"
)

// AuthServiceTestSuite is a test suite for the auth service
type AuthServiceTestSuite struct {
	suite.Suite
	service      AuthService
	mockUserRepo *mocks.MockUserRepository
}

// SetupTest sets up the test suite before each test
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = mocks.NewMockUserRepository(suite.T())
	suite.service = NewAuthService(suite.mockUserRepo)
}

func (suite *AuthServiceTestSuite) hashedUser(username, password, role string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(suite.T(), err)
	return &models.User{ID: 1, Username: username, PasswordHash: string(hash), Role: role}
}

// TestAuthenticate_Success tests a correct username/password pair
func (suite *AuthServiceTestSuite) TestAuthenticate_Success() {
	user := suite.hashedUser("editor", "s3cret", models.RoleEditor)
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "editor").Return(user, nil)

	// Act
	result, err := suite.service.Authenticate(context.Background(), "editor", "s3cret")

	// Assert
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.Username, result.Username)
}

// TestAuthenticate_WrongPassword tests that a wrong password yields the generic error
func (suite *AuthServiceTestSuite) TestAuthenticate_WrongPassword() {
	user := suite.hashedUser("editor", "s3cret", models.RoleEditor)
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "editor").Return(user, nil)

	// Act
	result, err := suite.service.Authenticate(context.Background(), "editor", "wrong")

	// Assert
	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

// TestAuthenticate_UnknownUsername tests that an unknown username yields the same error
func (suite *AuthServiceTestSuite) TestAuthenticate_UnknownUsername() {
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "nobody").Return(nil, sql.ErrNoRows)

	// Act
	result, err := suite.service.Authenticate(context.Background(), "nobody", "whatever")

	// Assert
	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

// TestEnsureAdmin_CreatesBootstrapAccount tests first-run admin creation
func (suite *AuthServiceTestSuite) TestEnsureAdmin_CreatesBootstrapAccount() {
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "admin").Return(nil, sql.ErrNoRows)
	suite.mockUserRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Username == "admin" &&
				user.Role == models.RoleAdmin &&
				user.PasswordHash != "" &&
				user.PasswordHash != "changeme"
		})).
		Return(nil)

	// Act
	err := suite.service.EnsureAdmin(context.Background(), "admin", "changeme")

	// Assert
	assert.NoError(suite.T(), err)
}

// TestEnsureAdmin_NoOpWhenExists tests that an existing account is left alone
func (suite *AuthServiceTestSuite) TestEnsureAdmin_NoOpWhenExists() {
	existing := &models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "admin").Return(existing, nil)

	err := suite.service.EnsureAdmin(context.Background(), "admin", "changeme")

	assert.NoError(suite.T(), err)
}

// TestEnsureAdmin_NoOpWhenUnconfigured tests that empty credentials do nothing
func (suite *AuthServiceTestSuite) TestEnsureAdmin_NoOpWhenUnconfigured() {
	err := suite.service.EnsureAdmin(context.Background(), "", "")
	assert.NoError(suite.T(), err)
}

// TestFindOrCreateSSOUser_CreatesViewer tests first SSO login provisioning
func (suite *AuthServiceTestSuite) TestFindOrCreateSSOUser_CreatesViewer() {
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "jdoe").Return(nil, sql.ErrNoRows)
	suite.mockUserRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Username == "jdoe" &&
				user.Email == "jdoe@example.gov" &&
				user.Role == models.RoleViewer &&
				user.PasswordHash != ""
		})).
		Return(nil)

	// Act
	user, err := suite.service.FindOrCreateSSOUser(context.Background(), "jdoe", "jdoe@example.gov")

	// Assert
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleViewer, user.Role)
}

// TestFindOrCreateSSOUser_ReturnsExisting tests that a known identity maps to its account
func (suite *AuthServiceTestSuite) TestFindOrCreateSSOUser_ReturnsExisting() {
	existing := &models.User{ID: 9, Username: "jdoe", Role: models.RoleEditor}
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "jdoe").Return(existing, nil)

	user, err := suite.service.FindOrCreateSSOUser(context.Background(), "jdoe", "jdoe@example.gov")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(9), user.ID)
	assert.Equal(suite.T(), models.RoleEditor, user.Role)
}

// TestRunAuthServiceTestSuite runs the test suite
func TestRunAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
