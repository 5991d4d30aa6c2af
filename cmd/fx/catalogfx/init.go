package catalogfx

import (
	"go.uber.org/fx"

	"itinera/internal/repositories"
)

var Module = fx.Provide(
	repositories.NewDestinationRepository,
	repositories.NewActivityRepository,
)
