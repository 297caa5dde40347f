// Package customer exposes the customer operations over HTTP.
package customer

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	customersvc "github.com/novinbank/ledger/pkg/service/customer"
	"github.com/novinbank/ledger/webapi/common"
)

// Routes registers the customer endpoints:
//
//   - POST   /customer                 : Register a new customer.
//   - GET    /customer                 : List all customers.
//   - GET    /customer/:id             : Retrieve one customer.
//   - PUT    /customer/:id             : Update name and contact details.
//   - DELETE /customer/:id             : Remove a customer.
//   - POST   /customer/:id/activate   : Move the customer to active.
//   - POST   /customer/:id/deactivate : Move the customer to inactive.
//   - POST   /customer/:id/suspend    : Move the customer to suspended.
func Routes(app *fiber.App, svc *customersvc.Service) {
	app.Post("/customer", Create(svc))
	app.Get("/customer", List(svc))
	app.Get("/customer/:id", Get(svc))
	app.Put("/customer/:id", Update(svc))
	app.Delete("/customer/:id", Delete(svc))
	app.Post("/customer/:id/activate", setStatus(svc.ActivateCustomer, "Customer activated"))
	app.Post("/customer/:id/deactivate", setStatus(svc.DeactivateCustomer, "Customer deactivated"))
	app.Post("/customer/:id/suspend", setStatus(svc.SuspendCustomer, "Customer suspended"))
}

// Create returns a handler that registers a new customer.
func Create(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateCustomerRequest](c)
		if input == nil {
			return err
		}
		created, err := svc.CreateCustomer(c.UserContext(), customersvc.CreateCommand{
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			NationalCode: input.NationalCode,
			Email:        input.Email,
			Phone:        input.Phone,
			DateOfBirth:  input.DateOfBirth,
		})
		if err != nil {
			log.Errorf("Failed to create customer: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create customer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Customer created", toDTO(created))
	}
}

// Get returns a handler that fetches one customer by ID.
func Get(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid customer ID", err, "Customer ID must be a valid UUID", fiber.StatusBadRequest)
		}
		found, err := svc.GetCustomer(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get customer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customer retrieved", toDTO(found))
	}
}

// List returns a handler that lists all customers.
func List(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		found, err := svc.ListCustomers(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list customers", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customers retrieved", toDTOs(found))
	}
}

// Update returns a handler that updates a customer's details.
func Update(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid customer ID", err, "Customer ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateCustomerRequest](c)
		if input == nil {
			return err
		}
		updated, err := svc.UpdateCustomer(c.UserContext(), id, customersvc.UpdateCommand{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			Phone:     input.Phone,
		})
		if err != nil {
			log.Errorf("Failed to update customer %s: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to update customer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customer updated", toDTO(updated))
	}
}

// Delete returns a handler that removes a customer.
func Delete(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid customer ID", err, "Customer ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := svc.DeleteCustomer(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete customer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customer deleted", nil)
	}
}

func setStatus(op func(ctx context.Context, id uuid.UUID) error, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid customer ID", err, "Customer ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := op(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to change customer status", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, message, nil)
	}
}
