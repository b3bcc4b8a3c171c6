package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/traqbank/backoffice/internal/apperrors"
	"github.com/traqbank/backoffice/internal/dto"
	"github.com/traqbank/backoffice/internal/utils"
)

type UserLoginServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserLoginRepository
	service  *UserLoginService
	ctx      context.Context
}

func (suite *UserLoginServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserLoginRepository)
	suite.service = NewUserLoginService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *UserLoginServiceTestSuite) TestSignup_HashesPassword() {
	req := dto.SignupRequest{Username: "teller1", Password: "s3cretpw", ConfirmPassword: "s3cretpw"}

	suite.mockRepo.On("UsernameExists", suite.ctx, "teller1").Return(false, nil).Once()
	suite.mockRepo.On("SaveUserLogin", suite.ctx, mock.AnythingOfType("*domain.UserLogin")).Return(nil).Once()

	login, err := suite.service.Signup(suite.ctx, req)

	suite.NoError(err)
	suite.NotEqual("s3cretpw", login.PasswordHash)
	suite.True(utils.CheckPasswordHash("s3cretpw", login.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserLoginServiceTestSuite) TestSignup_TakenUsernameRejected() {
	req := dto.SignupRequest{Username: "teller1", Password: "s3cretpw", ConfirmPassword: "s3cretpw"}
	suite.mockRepo.On("UsernameExists", suite.ctx, "teller1").Return(true, nil).Once()

	login, err := suite.service.Signup(suite.ctx, req)

	suite.Nil(login)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUserLogin")
}

func (suite *UserLoginServiceTestSuite) TestSignup_StorageRaceSurfacesDuplicate() {
	req := dto.SignupRequest{Username: "teller1", Password: "s3cretpw", ConfirmPassword: "s3cretpw"}
	suite.mockRepo.On("UsernameExists", suite.ctx, "teller1").Return(false, nil).Once()
	suite.mockRepo.On("SaveUserLogin", suite.ctx, mock.AnythingOfType("*domain.UserLogin")).Return(apperrors.ErrDuplicate).Once()

	login, err := suite.service.Signup(suite.ctx, req)

	suite.Nil(login)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func TestUserLoginServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserLoginServiceTestSuite))
}
