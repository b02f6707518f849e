// directory.go
//
// An authenticated directory service over read-only staff rosters
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of staffdir.
// staffdir is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// staffdir is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with staffdir.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/staffdir/internal/config"
	"github.com/localnerve/staffdir/internal/dataset"
	"github.com/localnerve/staffdir/internal/models"
	"github.com/localnerve/staffdir/internal/services"
	"github.com/localnerve/staffdir/internal/utils"
)

// DirectoryHandler handles directory search and profile routes
type DirectoryHandler struct {
	Store *dataset.Store
	Cfg   *config.Config
}

// GetEmployees handles GET /api/directory
// @Summary Search the directory
// @Description Filter the roster by name substring, company, division and project
// @Tags Directory
// @Produce json
// @Param name query string false "Case-insensitive displayName substring"
// @Param company query string false "Company filter, 'all' disables"
// @Param division query string false "Division filter, 'all' disables"
// @Param project query string false "Project filter, 'all' disables"
// @Success 200 {array} models.EmployeeRow
// @Success 204 "No matching employees"
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /directory [get]
func (h *DirectoryHandler) GetEmployees(c *fiber.Ctx) error {
	rows := services.FilterEmployees(h.Store, parseDirectoryQuery(c))

	if len(rows) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusOK).JSON(rows)
}

// GetOptions handles GET /api/directory/options
// @Summary Filter dropdown options
// @Description Distinct company, division and project values for the search dropdowns
// @Tags Directory
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /directory/options [get]
func (h *DirectoryHandler) GetOptions(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"all":       services.FilterAll,
		"companies": h.Store.Companies(),
		"divisions": h.Store.DivisionNames(),
		"projects":  h.Store.ProjectNames(),
	})
}

// GetProfileByEmail handles GET /api/directory/profile/:email
// @Summary Employee profile
// @Description Build the derived profile for an employee and select them for the session
// @Tags Directory
// @Produce json
// @Param email path string true "Employee email"
// @Success 200 {object} models.Profile
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /directory/profile/{email} [get]
func (h *DirectoryHandler) GetProfileByEmail(c *fiber.Ctx) error {
	return h.profileFor(c, c.Params("email"))
}

// PostSelect handles POST /api/directory/select
// @Summary Pivot to a peer
// @Description Replace the session's selected employee and return the new profile
// @Tags Directory
// @Accept json
// @Produce json
// @Param body body object true "Peer email"
// @Success 200 {object} models.Profile
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /directory/select [post]
func (h *DirectoryHandler) PostSelect(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}

	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "directory.validation.input")
	}

	return h.profileFor(c, body.Email)
}

// GetProfile handles GET /api/directory/profile
// @Summary Currently selected profile
// @Description Profile of the session's selected employee
// @Tags Directory
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /directory/profile [get]
func (h *DirectoryHandler) GetProfile(c *fiber.Ctx) error {
	session := sessionFrom(c)
	selected, ok := session.Selected()
	if !ok {
		return utils.NotFoundResponse(c, "No employee selected")
	}
	return h.profileFor(c, selected.Email)
}

// GetAvatar handles GET /api/avatar/:employeeCode
// @Summary Avatar redirect
// @Description Redirect to the registered photo path or the generated placeholder
// @Tags Directory
// @Param employeeCode path string true "Employee code"
// @Success 302 "Redirect to avatar"
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /avatar/{employeeCode} [get]
func (h *DirectoryHandler) GetAvatar(c *fiber.Ctx) error {
	return c.Redirect(
		services.AvatarURL(h.Store, h.Cfg.AvatarFallbackURL, c.Params("employeeCode")),
		fiber.StatusFound,
	)
}

// profileFor resolves an email against the roster, updates the session's
// one-slot selection and returns the full profile. Detail clicks and peer
// pivots both land here, so repeated navigation never stacks state.
func (h *DirectoryHandler) profileFor(c *fiber.Ctx, email string) error {
	employee, ok := h.Store.EmployeeByEmail(email)
	if !ok {
		return utils.NotFoundResponse(c, fmt.Sprintf("Employee '%s' not found", email))
	}

	if session := sessionFrom(c); session != nil {
		session.Select(models.EmployeeRef{
			Email:        employee.Email,
			EmployeeCode: employee.EmployeeCode,
			Name:         employee.DisplayName,
		})
	}

	profile := services.BuildProfile(h.Store, h.Cfg.AvatarFallbackURL, employee)
	return c.Status(fiber.StatusOK).JSON(profile)
}
