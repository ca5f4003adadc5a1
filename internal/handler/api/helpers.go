package api

import (
	"hall-booking/internal/infra"
)

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
