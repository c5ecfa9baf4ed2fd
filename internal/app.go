package internal

import (
	"github.com/rios0rios0/depscope/internal/domain/entities"
)

// AppInternal aggregates everything the CLI entrypoint needs from the
// container.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application aggregate from the injected
// controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns every registered CLI controller.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
