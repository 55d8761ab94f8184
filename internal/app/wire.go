//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	geminiGateway "dispatch/internal/gateway/ai/gemini"
	customer_post "dispatch/internal/handlers/rest/customer_post"
	customers_get "dispatch/internal/handlers/rest/customers_get"
	driver_get "dispatch/internal/handlers/rest/driver_get"
	driver_offline_post "dispatch/internal/handlers/rest/driver_offline_post"
	driver_post "dispatch/internal/handlers/rest/driver_post"
	driver_put "dispatch/internal/handlers/rest/driver_put"
	drivers_get "dispatch/internal/handlers/rest/drivers_get"
	ride_assign_post "dispatch/internal/handlers/rest/ride_assign_post"
	ride_cancel_post "dispatch/internal/handlers/rest/ride_cancel_post"
	ride_complete_post "dispatch/internal/handlers/rest/ride_complete_post"
	ride_get "dispatch/internal/handlers/rest/ride_get"
	ride_intake_post "dispatch/internal/handlers/rest/ride_intake_post"
	ride_post "dispatch/internal/handlers/rest/ride_post"
	ride_suggest_post "dispatch/internal/handlers/rest/ride_suggest_post"
	rides_get "dispatch/internal/handlers/rest/rides_get"
	session_delete "dispatch/internal/handlers/rest/session_delete"
	session_post "dispatch/internal/handlers/rest/session_post"
	store_post "dispatch/internal/handlers/rest/store_post"
	stores_get "dispatch/internal/handlers/rest/stores_get"
	"dispatch/internal/handlers/tasks/ride_progress"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/ride_start_delay"

	customerRepo "dispatch/internal/repository/customer"
	driverRepo "dispatch/internal/repository/driver"
	rideRepo "dispatch/internal/repository/ride"
	sessionRepo "dispatch/internal/repository/session"
	storeRepo "dispatch/internal/repository/store"
	assignmentService "dispatch/internal/service/assignment"
	customerService "dispatch/internal/service/customer"
	driverService "dispatch/internal/service/driver"
	intakeService "dispatch/internal/service/intake"
	rideService "dispatch/internal/service/ride"
	sessionService "dispatch/internal/service/session"
	storeService "dispatch/internal/service/store"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/scheduler"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/generative-ai-go/genai"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	RideProgressInterval time.Duration
)

type Application struct {
	ServiceRide       ServiceRide
	ServiceDriver     ServiceDriver
	ServiceAssignment ServiceAssignment
	ServiceIntake     ServiceIntake
	ServiceCustomer   ServiceCustomer
	ServiceStore      ServiceStore
	ServiceSession    ServiceSession
	Scheduler         *scheduler.Scheduler
	BackgroundWorkers *background.Worker
}

type ServiceRide interface {
	ride_post.Service
	ride_get.Service
	rides_get.Service
	ride_complete_post.Service
	ride_cancel_post.Service
}

type ServiceDriver interface {
	driver_post.Service
	driver_put.Service
	driver_get.Service
	drivers_get.Service
	driver_offline_post.Service
}

type ServiceAssignment interface {
	ride_assign_post.Service
	ride_suggest_post.Service
}

type ServiceIntake interface {
	ride_intake_post.Service
}

type ServiceCustomer interface {
	customer_post.Service
	customers_get.Service
}

type ServiceStore interface {
	store_post.Service
	stores_get.Service
}

type ServiceSession interface {
	session_post.Service
	session_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	model *genai.GenerativeModel,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRideProgressInterval,

		provideRideRepository,
		provideDriverRepository,
		provideCustomerRepository,
		provideStoreRepository,
		provideSessionRepository,

		provideScheduler,
		provideStartDelayFactory,
		provideGeminiGateway,

		provideServiceRide,
		provideServiceDriver,
		provideServiceAssignment,
		provideServiceIntake,
		provideServiceCustomer,
		provideServiceStore,
		provideServiceSession,

		provideRideProgressTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceRide), new(*rideService.Ride)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceIntake), new(*intakeService.Intake)),
		wire.Bind(new(ServiceCustomer), new(*customerService.Customer)),
		wire.Bind(new(ServiceStore), new(*storeService.Store)),
		wire.Bind(new(ServiceSession), new(*sessionService.Session)),

		wire.Bind(new(rideService.Repository), new(*rideRepo.Repository)),
		wire.Bind(new(rideService.DriverCoordinator), new(*driverService.Driver)),
		wire.Bind(new(rideService.Scheduler), new(*scheduler.Scheduler)),
		wire.Bind(new(rideService.StartDelayFactory), new(*ride_start_delay.StartDelayFactory)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(customerService.Repository), new(*customerRepo.Repository)),
		wire.Bind(new(storeService.Repository), new(*storeRepo.Repository)),
		wire.Bind(new(sessionService.Repository), new(*sessionRepo.Repository)),

		wire.Bind(new(assignmentService.RideService), new(*rideService.Ride)),
		wire.Bind(new(assignmentService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(assignmentService.MatchingGateway), new(*geminiGateway.Gateway)),
		wire.Bind(new(intakeService.IntakeGateway), new(*geminiGateway.Gateway)),
		wire.Bind(new(intakeService.RideService), new(*rideService.Ride)),

		wire.Bind(new(rideService.TxManager), new(*tx.Manager)),
		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),

		wire.Bind(new(ride_progress.Service), new(*rideService.Ride)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	IntakeService *intakeService.Intake
	Scheduler     *scheduler.Scheduler
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-ride-intake)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	model *genai.GenerativeModel,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideRideRepository,
		provideDriverRepository,

		provideScheduler,
		provideStartDelayFactory,
		provideGeminiGateway,

		provideServiceRide,
		provideServiceDriver,
		provideServiceIntake,

		wire.Bind(new(rideService.Repository), new(*rideRepo.Repository)),
		wire.Bind(new(rideService.DriverCoordinator), new(*driverService.Driver)),
		wire.Bind(new(rideService.Scheduler), new(*scheduler.Scheduler)),
		wire.Bind(new(rideService.StartDelayFactory), new(*ride_start_delay.StartDelayFactory)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),

		wire.Bind(new(intakeService.IntakeGateway), new(*geminiGateway.Gateway)),
		wire.Bind(new(intakeService.RideService), new(*rideService.Ride)),

		wire.Bind(new(rideService.TxManager), new(*tx.Manager)),
		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),

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

func provideRideRepository(querier *querier.Querier) *rideRepo.Repository {
	return rideRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideStoreRepository(querier *querier.Querier) *storeRepo.Repository {
	return storeRepo.New(querier)
}

func provideSessionRepository(client *redis.Client, cfg *config.Config) *sessionRepo.Repository {
	return sessionRepo.New(client, cfg.Redis.SessionTTL)
}

func provideScheduler(log logger.Logger) *scheduler.Scheduler {
	return scheduler.New(log)
}

func provideStartDelayFactory(cfg *config.Config) *ride_start_delay.StartDelayFactory {
	return ride_start_delay.New(cfg.Dispatch.AckDelay)
}

func provideGeminiGateway(model *genai.GenerativeModel) *geminiGateway.Gateway {
	return geminiGateway.New(model)
}

func provideServiceRide(
	repository rideService.Repository,
	drivers rideService.DriverCoordinator,
	sched rideService.Scheduler,
	delays rideService.StartDelayFactory,
	txManager rideService.TxManager,
) *rideService.Ride {
	return rideService.New(
		repository,
		drivers,
		sched,
		delays,
		txManager,
	)
}

func provideServiceDriver(
	repository driverService.Repository,
	txManager driverService.TxManager,
) *driverService.Driver {
	return driverService.New(repository, txManager)
}

func provideServiceAssignment(
	log logger.Logger,
	rides assignmentService.RideService,
	drivers assignmentService.DriverService,
	matcher assignmentService.MatchingGateway,
	cfg *config.Config,
) *assignmentService.Assignment {
	return assignmentService.New(log, rides, drivers, matcher, cfg.AI.SuggestTimeout)
}

func provideServiceIntake(
	gateway intakeService.IntakeGateway,
	rides intakeService.RideService,
	cfg *config.Config,
) *intakeService.Intake {
	return intakeService.New(gateway, rides, cfg.AI.ParseTimeout)
}

func provideServiceCustomer(repository customerService.Repository) *customerService.Customer {
	return customerService.New(repository)
}

func provideServiceStore(repository storeService.Repository) *storeService.Store {
	return storeService.New(repository)
}

func provideServiceSession(repository sessionService.Repository) *sessionService.Session {
	return sessionService.New(repository)
}

func provideRideProgressInterval(cfg *config.Config) RideProgressInterval {
	return RideProgressInterval(cfg.Tasks.RideProgressInterval)
}

func provideRideProgressTask(
	log logger.Logger,
	rideService ride_progress.Service,
	interval RideProgressInterval,
) *ride_progress.RideProgress {
	return ride_progress.NewRideProgress(log, rideService, time.Duration(interval))
}

func provideTaskList(
	rideProgressTask *ride_progress.RideProgress,
) []background.Task {
	return []background.Task{
		rideProgressTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
