package handler

import (
	catalogdomain "garments-api/internal/domain/catalog"
	identitydomain "garments-api/internal/domain/identity"
	measurementdomain "garments-api/internal/domain/measurement"
	ordersdomain "garments-api/internal/domain/orders"
	"garments-api/pkg/logger"
)

type Handlers struct {
	Identity     *identitydomain.Service
	Catalog      *catalogdomain.Service
	Measurements *measurementdomain.Service
	Orders       *ordersdomain.Service
	log          logger.Logger
}

func New(identity *identitydomain.Service, catalog *catalogdomain.Service, measurements *measurementdomain.Service, orders *ordersdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Identity:     identity,
		Catalog:      catalog,
		Measurements: measurements,
		Orders:       orders,
		log:          log,
	}
}
