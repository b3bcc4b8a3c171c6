package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/traqbank/backoffice/internal/apperrors"
	portssvc "github.com/traqbank/backoffice/internal/core/ports/services"
	"github.com/traqbank/backoffice/internal/dto"
	"github.com/traqbank/backoffice/internal/middleware"
)

// personHandler handles HTTP requests related to persons.
type personHandler struct {
	personService  portssvc.PersonSvcFacade
	accountService portssvc.AccountSvcFacade
}

// newPersonHandler creates a new personHandler.
func newPersonHandler(ps portssvc.PersonSvcFacade, as portssvc.AccountSvcFacade) *personHandler {
	return &personHandler{
		personService:  ps,
		accountService: as,
	}
}

// registerPersonRoutes registers routes related to persons.
func registerPersonRoutes(rg *gin.RouterGroup, personService portssvc.PersonSvcFacade, accountService portssvc.AccountSvcFacade) {
	h := newPersonHandler(personService, accountService)

	persons := rg.Group("/persons")
	{
		persons.GET("", h.listPersons)
		persons.POST("", h.createPerson)
		persons.GET("/:personID", h.getPersonByCode)
		persons.PUT("/:personID", h.updatePerson)
		persons.DELETE("/:personID", h.deletePerson)
	}
}

// parseCodeParam reads a numeric path parameter shared by all entity handlers.
func parseCodeParam(c *gin.Context, name string) (int64, bool) {
	code, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return 0, false
	}
	return code, true
}

// listPersons godoc
// @Summary List persons
// @Description Retrieves one page of persons, optionally filtered by a substring of surname or ID number
// @Tags persons
// @Produce  json
// @Param   search query string false "Substring to match against surname or ID number"
// @Param   page query int false "Page number, starting at 1"
// @Success 200 {object} dto.ListPersonsResponse
// @Failure 500 {object} map[string]string "Failed to list persons"
// @Security BearerAuth
// @Router /persons [get]
func (h *personHandler) listPersons(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPersonsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	persons, totalPages, err := h.personService.ListPersons(c.Request.Context(), params.Search, params.Page)
	if err != nil {
		logger.Error("Failed to list persons in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list persons"})
		return
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	res := dto.ListPersonsResponse{
		Persons:    make([]dto.PersonResponse, len(persons)),
		Page:       page,
		TotalPages: totalPages,
	}
	for i := range persons {
		res.Persons[i] = dto.ToPersonResponse(&persons[i])
	}
	c.JSON(http.StatusOK, res)
}

// createPerson godoc
// @Summary Create a new person
// @Description Registers a new person; the ID number must be unique
// @Tags persons
// @Accept  json
// @Produce  json
// @Param   person body dto.CreatePersonRequest true "Person details"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "ID number already exists"
// @Failure 500 {object} map[string]string "Failed to create person"
// @Security BearerAuth
// @Router /persons [post]
func (h *personHandler) createPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePerson", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create person in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create person"})
		}
		return
	}

	logger.Info("Person created successfully", slog.Int64("person_code", person.Code))
	c.JSON(http.StatusCreated, dto.ToPersonResponse(person))
}

// getPersonByCode godoc
// @Summary Get a person by code
// @Description Retrieves a person together with their accounts
// @Tags persons
// @Produce  json
// @Param   personID path int true "Person code"
// @Success 200 {object} dto.PersonDetailResponse
// @Failure 404 {object} map[string]string "Person not found"
// @Failure 500 {object} map[string]string "Failed to retrieve person"
// @Security BearerAuth
// @Router /persons/{personID} [get]
func (h *personHandler) getPersonByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c, "personID")
	if !ok {
		return
	}

	person, err := h.personService.GetPersonByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		} else {
			logger.Error("Failed to get person from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve person"})
		}
		return
	}

	accounts, err := h.accountService.ListAccountsByPerson(c.Request.Context(), code)
	if err != nil {
		logger.Error("Failed to list person accounts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve person"})
		return
	}

	res := dto.PersonDetailResponse{
		PersonResponse: dto.ToPersonResponse(person),
		Accounts:       dto.ToListAccountResponse(accounts),
	}
	c.JSON(http.StatusOK, res)
}

// updatePerson godoc
// @Summary Update a person
// @Description Edits a person's name, surname and ID number
// @Tags persons
// @Accept  json
// @Produce  json
// @Param   personID path int true "Person code"
// @Param   person body dto.UpdatePersonRequest true "Person details"
// @Success 200 {object} dto.PersonResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Person not found"
// @Failure 409 {object} map[string]string "ID number already exists"
// @Failure 500 {object} map[string]string "Failed to update person"
// @Security BearerAuth
// @Router /persons/{personID} [put]
func (h *personHandler) updatePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c, "personID")
	if !ok {
		return
	}

	var req dto.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePerson", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	person, err := h.personService.UpdatePerson(c.Request.Context(), code, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update person in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update person"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}

// deletePerson godoc
// @Summary Delete a person
// @Description Removes a person; allowed only when they own no accounts or every account is closed
// @Tags persons
// @Produce  json
// @Param   personID path int true "Person code"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Person still owns open accounts"
// @Failure 404 {object} map[string]string "Person not found"
// @Failure 500 {object} map[string]string "Failed to delete person"
// @Security BearerAuth
// @Router /persons/{personID} [delete]
func (h *personHandler) deletePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c, "personID")
	if !ok {
		return
	}

	if err := h.personService.DeletePerson(c.Request.Context(), code); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to delete person in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete person"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
