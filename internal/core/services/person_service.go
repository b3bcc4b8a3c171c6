package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/traqbank/backoffice/internal/apperrors"
	"github.com/traqbank/backoffice/internal/core/domain"
	portsrepo "github.com/traqbank/backoffice/internal/core/ports/repositories"
	portssvc "github.com/traqbank/backoffice/internal/core/ports/services"
	"github.com/traqbank/backoffice/internal/dto"
	"github.com/traqbank/backoffice/internal/middleware"
)

// personPageSize is the fixed page size of the person listing.
const personPageSize = 10

type PersonService struct {
	personRepo portsrepo.PersonRepositoryFacade
}

func NewPersonService(personRepo portsrepo.PersonRepositoryFacade) *PersonService {
	return &PersonService{personRepo: personRepo}
}

var _ portssvc.PersonSvcFacade = (*PersonService)(nil)

// GetPersonByCode retrieves a person by primary key.
func (s *PersonService) GetPersonByCode(ctx context.Context, code int64) (*domain.Person, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	person, err := s.personRepo.FindPersonByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find person in repository", slog.String("error", err.Error()), slog.Int64("person_code", code))
		}
		return nil, err
	}
	return person, nil
}

// ListPersons retrieves one page of persons matching the search term together
// with the total page count. Page numbering starts at 1.
func (s *PersonService) ListPersons(ctx context.Context, search string, page int) ([]domain.Person, int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * personPageSize

	persons, total, err := s.personRepo.ListPersons(ctx, search, personPageSize, offset)
	if err != nil {
		logger.Error("Failed to list persons from repository", slog.String("error", err.Error()), slog.Int("page", page))
		return nil, 0, fmt.Errorf("failed to list persons: %w", err)
	}

	totalPages := int((total + personPageSize - 1) / personPageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	return persons, totalPages, nil
}

// CreatePerson creates a person. The ID number must not already be in use.
func (s *PersonService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	exists, err := s.personRepo.IDNumberExists(ctx, req.IDNumber, 0)
	if err != nil {
		logger.Error("Failed to check ID number uniqueness", slog.String("error", err.Error()))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: ID number %s already exists", apperrors.ErrDuplicate, req.IDNumber)
	}

	person := domain.Person{
		Name:     req.Name,
		Surname:  req.Surname,
		IDNumber: req.IDNumber,
	}
	if err := s.personRepo.SavePerson(ctx, &person); err != nil {
		logger.Error("Failed to save person in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Person created", slog.Int64("person_code", person.Code))
	return &person, nil
}

// UpdatePerson edits a person. The ID number uniqueness check excludes the
// person being edited.
func (s *PersonService) UpdatePerson(ctx context.Context, code int64, req dto.UpdatePersonRequest) (*domain.Person, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	person, err := s.personRepo.FindPersonByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	exists, err := s.personRepo.IDNumberExists(ctx, req.IDNumber, code)
	if err != nil {
		logger.Error("Failed to check ID number uniqueness", slog.String("error", err.Error()))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: ID number %s already exists", apperrors.ErrDuplicate, req.IDNumber)
	}

	person.Name = req.Name
	person.Surname = req.Surname
	person.IDNumber = req.IDNumber
	if err := s.personRepo.UpdatePerson(ctx, *person); err != nil {
		logger.Error("Failed to update person in repository", slog.String("error", err.Error()), slog.Int64("person_code", code))
		return nil, err
	}

	logger.Info("Person updated", slog.Int64("person_code", code))
	return person, nil
}

// DeletePerson removes a person together with their closed accounts and those
// accounts' transactions. A person with any open account cannot be deleted.
func (s *PersonService) DeletePerson(ctx context.Context, code int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.personRepo.DeletePerson(ctx, code); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to delete person in repository", slog.String("error", err.Error()), slog.Int64("person_code", code))
		}
		return err
	}

	logger.Info("Person deleted", slog.Int64("person_code", code))
	return nil
}
