package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/traqbank/backoffice/internal/apperrors"
	"github.com/traqbank/backoffice/internal/core/domain"
	"github.com/traqbank/backoffice/internal/dto"
)

type PersonServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPersonRepository
	service  *PersonService
	ctx      context.Context
}

func (suite *PersonServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPersonRepository)
	suite.service = NewPersonService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *PersonServiceTestSuite) TestListPersons_Pagination() {
	persons := []domain.Person{
		{Code: 1, Surname: "Adams", IDNumber: "8001015009087"},
		{Code: 2, Surname: "Brown", IDNumber: "8202025009086"},
	}
	// 25 matches means 3 pages of 10.
	suite.mockRepo.On("ListPersons", suite.ctx, "", 10, 10).Return(persons, int64(25), nil).Once()

	result, totalPages, err := suite.service.ListPersons(suite.ctx, "", 2)

	suite.NoError(err)
	suite.Len(result, 2)
	suite.Equal(3, totalPages)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PersonServiceTestSuite) TestListPersons_EmptyResultStillOnePage() {
	suite.mockRepo.On("ListPersons", suite.ctx, "nobody", 10, 0).Return([]domain.Person{}, int64(0), nil).Once()

	result, totalPages, err := suite.service.ListPersons(suite.ctx, "nobody", 1)

	suite.NoError(err)
	suite.Empty(result)
	suite.Equal(1, totalPages)
}

func (suite *PersonServiceTestSuite) TestListPersons_PageBelowOneClampsToFirst() {
	suite.mockRepo.On("ListPersons", suite.ctx, "", 10, 0).Return([]domain.Person{}, int64(0), nil).Once()

	_, _, err := suite.service.ListPersons(suite.ctx, "", 0)

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PersonServiceTestSuite) TestCreatePerson_Success() {
	req := dto.CreatePersonRequest{Name: "Jane", Surname: "Doe", IDNumber: "9001015009087"}
	suite.mockRepo.On("IDNumberExists", suite.ctx, req.IDNumber, int64(0)).Return(false, nil).Once()
	suite.mockRepo.On("SavePerson", suite.ctx, mock.AnythingOfType("*domain.Person")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Person).Code = 7
	}).Return(nil).Once()

	person, err := suite.service.CreatePerson(suite.ctx, req)

	suite.NoError(err)
	suite.Equal(int64(7), person.Code)
	suite.Equal("Doe", person.Surname)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PersonServiceTestSuite) TestCreatePerson_DuplicateIDNumber() {
	req := dto.CreatePersonRequest{IDNumber: "9001015009087"}
	suite.mockRepo.On("IDNumberExists", suite.ctx, req.IDNumber, int64(0)).Return(true, nil).Once()

	person, err := suite.service.CreatePerson(suite.ctx, req)

	suite.Nil(person)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePerson")
}

func (suite *PersonServiceTestSuite) TestUpdatePerson_DuplicateCheckExcludesSelf() {
	existing := &domain.Person{Code: 5, Name: "Jane", Surname: "Doe", IDNumber: "9001015009087"}
	req := dto.UpdatePersonRequest{Name: "Jane", Surname: "Smith", IDNumber: "9001015009087"}

	suite.mockRepo.On("FindPersonByCode", suite.ctx, int64(5)).Return(existing, nil).Once()
	// Keeping the same ID number must not trip the duplicate check.
	suite.mockRepo.On("IDNumberExists", suite.ctx, req.IDNumber, int64(5)).Return(false, nil).Once()
	suite.mockRepo.On("UpdatePerson", suite.ctx, mock.MatchedBy(func(p domain.Person) bool {
		return p.Code == 5 && p.Surname == "Smith"
	})).Return(nil).Once()

	person, err := suite.service.UpdatePerson(suite.ctx, 5, req)

	suite.NoError(err)
	suite.Equal("Smith", person.Surname)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PersonServiceTestSuite) TestUpdatePerson_NotFound() {
	suite.mockRepo.On("FindPersonByCode", suite.ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	person, err := suite.service.UpdatePerson(suite.ctx, 99, dto.UpdatePersonRequest{IDNumber: "x"})

	suite.Nil(person)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PersonServiceTestSuite) TestDeletePerson_OpenAccountsRejected() {
	wrapped := errors.Join(apperrors.ErrValidation)
	suite.mockRepo.On("DeletePerson", suite.ctx, int64(5)).Return(wrapped).Once()

	err := suite.service.DeletePerson(suite.ctx, 5)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PersonServiceTestSuite) TestDeletePerson_Success() {
	suite.mockRepo.On("DeletePerson", suite.ctx, int64(5)).Return(nil).Once()

	suite.NoError(suite.service.DeletePerson(suite.ctx, 5))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPersonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonServiceTestSuite))
}
