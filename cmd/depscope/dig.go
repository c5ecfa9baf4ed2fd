package main

import (
	"github.com/rios0rios0/depscope/internal"
	"github.com/rios0rios0/depscope/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectAnalyzeController() *controllers.AnalyzeController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var analyzeController *controllers.AnalyzeController
	if err := container.Invoke(func(ac *controllers.AnalyzeController) {
		analyzeController = ac
	}); err != nil {
		panic(err)
	}

	return analyzeController
}
