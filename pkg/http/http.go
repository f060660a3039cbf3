/*
Copyright 2026 The nagare media authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package http

import (
	"github.com/gofiber/fiber/v2"
)

const (
	RequestIDKey = "playback.nagare.media/request-id"
)

var (
	NextHandler = func(c *fiber.Ctx) error {
		return c.Next()
	}

	NoContentHandler = func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	}
)

// RequestID returns the request ID assigned by the requestid middleware, or
// "" outside of a request scope.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDKey).(string)
	return id
}
