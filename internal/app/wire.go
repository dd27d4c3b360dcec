//go:build wireinject
// +build wireinject

package app

import (
	courier_get "dispatch/internal/handlers/rest/courier_get"
	courier_post "dispatch/internal/handlers/rest/courier_post"
	couriers_get "dispatch/internal/handlers/rest/couriers_get"
	order_complete_post "dispatch/internal/handlers/rest/order_complete_post"
	order_get "dispatch/internal/handlers/rest/order_get"
	order_post "dispatch/internal/handlers/rest/order_post"

	courierRepo "dispatch/internal/repository/courier"
	districtRepo "dispatch/internal/repository/district"
	orderRepo "dispatch/internal/repository/order"
	courierService "dispatch/internal/service/courier"
	dispatchService "dispatch/internal/service/dispatch"
	districtService "dispatch/internal/service/district"
	orderService "dispatch/internal/service/order"

	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceCourier  ServiceCourier
	ServiceDispatch ServiceDispatch
	ServiceOrder    ServiceOrder
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	couriers_get.Service
}

type ServiceDispatch interface {
	order_post.Service
}

type ServiceOrder interface {
	order_get.Service
	order_complete_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDistrictRepository,
		provideCourierRepository,
		provideOrderRepository,

		provideDistrictRegistry,
		provideServiceCourier,
		provideServiceDispatch,
		provideServiceOrder,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(districtService.Repository), new(*districtRepo.Repository)),
		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(courierService.DistrictRegistry), new(*districtService.Registry)),
		wire.Bind(new(dispatchService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.DistrictRegistry), new(*districtService.Registry)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CourierService), new(*courierService.Courier)),

		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDistrictRepository,
		provideCourierRepository,
		provideOrderRepository,

		provideDistrictRegistry,
		provideServiceCourier,
		provideServiceOrder,

		wire.Bind(new(districtService.Repository), new(*districtRepo.Repository)),
		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(courierService.DistrictRegistry), new(*districtService.Registry)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CourierService), new(*courierService.Courier)),

		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDistrictRepository(querier *querier.Querier) *districtRepo.Repository {
	return districtRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDistrictRegistry(repository districtService.Repository) *districtService.Registry {
	return districtService.New(repository)
}

func provideServiceCourier(
	repository courierService.Repository,
	orderRepository courierService.OrderRepository,
	districtRegistry courierService.DistrictRegistry,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, orderRepository, districtRegistry, txManager)
}

func provideServiceDispatch(
	courierRepository dispatchService.CourierRepository,
	orderRepository dispatchService.OrderRepository,
	districtRegistry dispatchService.DistrictRegistry,
	txManager dispatchService.TxManager,
) *dispatchService.Dispatch {
	return dispatchService.New(courierRepository, orderRepository, districtRegistry, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	courierService orderService.CourierService,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, courierService, txManager)
}
