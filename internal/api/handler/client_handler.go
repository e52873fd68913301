package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mtorfit/evolution-api/internal/core/domain"
	"github.com/mtorfit/evolution-api/internal/core/ports"
)

type ClientHandler struct {
	clientService ports.ClientService
}

func NewClientHandler(clientService ports.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List returns a page of clients, optionally filtered by a search term.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Param        page    query     int     false  "Page number (zero-based)"
// @Param        size    query     int     false  "Page size"
// @Param        search  query     string  false  "Match against name or email"
// @Success      200     {object}  ports.ClientPage
// @Security     BearerAuth
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	result, err := h.clientService.List(c.Request().Context(), page, size, c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Get returns a single client by id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.clientService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Create adds a new client to the roster.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      clientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Security     BearerAuth
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	input, err := bindClientInput(c)
	if err != nil {
		return err
	}

	client, err := h.clientService.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Update replaces the writable fields of a client.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Client id"
// @Param        body  body      clientRequest  true  "Client details"
// @Success      200   {object}  domain.Client
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	input, err := bindClientInput(c)
	if err != nil {
		return err
	}

	client, err := h.clientService.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Delete removes a client.
//
// @Summary      Delete a client
// @Tags         clients
// @Param        id  path  string  true  "Client id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.clientService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateStatus activates or deactivates a client.
//
// @Summary      Update client status
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Client id"
// @Param        body  body      clientStatusRequest  true  "New status"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /clients/{id}/status [patch]
func (h *ClientHandler) UpdateStatus(c echo.Context) error {
	var req clientStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.clientService.UpdateStatus(c.Request().Context(), c.Param("id"), domain.ClientStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

func bindClientInput(c echo.Context) (ports.ClientInput, error) {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return ports.ClientInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.ClientInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return ports.ClientInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Gender:    domain.Gender(req.Gender),
		Modality:  req.Modality,
		Goal:      req.Goal,
		Status:    domain.ClientStatus(req.Status),
	}, nil
}
