// common.go
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
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/staffdir/internal/services"
)

// parseDirectoryQuery extracts the search predicates from query parameters.
// The dropdown sentinel "all" and an empty value both disable a predicate;
// that mapping lives in the service layer.
func parseDirectoryQuery(c *fiber.Ctx) services.DirectoryQuery {
	return services.DirectoryQuery{
		Name:     c.Query("name"),
		Company:  c.Query("company"),
		Division: c.Query("division"),
		Project:  c.Query("project"),
	}
}

// sessionFrom returns the authenticated session stored by the auth
// middleware, or nil when the route ran unguarded.
func sessionFrom(c *fiber.Ctx) *services.Session {
	if session, ok := c.Locals("session").(*services.Session); ok {
		return session
	}
	return nil
}
