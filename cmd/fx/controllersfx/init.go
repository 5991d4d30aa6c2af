package controllersfx

import (
	"go.uber.org/fx"

	"itinera/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewRecommendationsController),
	fx.Provide(controllers.NewAnalysisController),
	fx.Provide(controllers.NewPreferencesController),
	fx.Provide(controllers.NewStatusController),
)
