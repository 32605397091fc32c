// Package jsonapi renders the subset of the JSON:API document format this
// service speaks: a data envelope around typed resources, an optional meta
// block, and error objects whose source pointer names the offending
// attribute ("/data/attributes/<field>", with "base" for record-level
// errors).
package jsonapi

import "github.com/gofiber/fiber/v2"

type Resource struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Attributes interface{} `json:"attributes"`
}

type Meta map[string]interface{}

type ErrorSource struct {
	Pointer string `json:"pointer"`
}

type ErrorObject struct {
	Status int         `json:"status"`
	Source ErrorSource `json:"source"`
	Detail string      `json:"detail"`
}

func AttributeError(status int, field, detail string) ErrorObject {
	return ErrorObject{
		Status: status,
		Source: ErrorSource{Pointer: "/data/attributes/" + field},
		Detail: detail,
	}
}

func Data(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{"data": data})
}

func DataWithMeta(c *fiber.Ctx, status int, data interface{}, meta Meta) error {
	return c.Status(status).JSON(fiber.Map{"data": data, "meta": meta})
}

func Errors(c *fiber.Ctx, status int, errs []ErrorObject) error {
	return c.Status(status).JSON(fiber.Map{"errors": errs})
}

// Error renders a single document-level error not tied to an attribute.
func Error(c *fiber.Ctx, status int, detail string) error {
	return Errors(c, status, []ErrorObject{{
		Status: status,
		Source: ErrorSource{Pointer: "/data"},
		Detail: detail,
	}})
}
