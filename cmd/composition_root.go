package cmd

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"partner/internal/adapters/out/assignmenthttp"
	"partner/internal/adapters/out/postgres/historyrepo"
	"partner/internal/core/application/usecases/commands"
	"partner/internal/core/application/usecases/queries"
	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/services"
	"partner/internal/core/ports"

	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires the application together: one lifecycle store, one
// assignment-service client and one optional delivered-order archive shared
// by every handler.
type CompositionRoot struct {
	partnerID kernel.UUID
	store     *services.LifecycleStore
	client    ports.AssignmentClient
	archiver  ports.OrderArchiver
	logger    *slog.Logger
}

// NewCompositionRoot builds the object graph from configuration. The history
// database is optional: with no DB host configured the application runs with
// archiving disabled.
func NewCompositionRoot(configs Config) (*CompositionRoot, error) {
	partnerID, err := kernel.UUIDFromString(configs.PartnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid PARTNER_ID: %w", err)
	}

	timeout, err := time.ParseDuration(configs.AssignmentAPITimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid ASSIGNMENT_API_TIMEOUT: %w", err)
	}

	client, err := assignmenthttp.NewClient(configs.AssignmentAPIBaseURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment client: %w", err)
	}

	root := &CompositionRoot{
		partnerID: partnerID,
		store:     services.NewLifecycleStore(),
		client:    client,
		logger:    slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	if configs.DBHost != "" {
		archiver, dbErr := createHistoryArchiver(configs)
		if dbErr != nil {
			return nil, dbErr
		}
		root.archiver = archiver
	}

	return root, nil
}

// createHistoryArchiver opens the history database through lib/pq and hands
// the connection to GORM.
func createHistoryArchiver(configs Config) (*historyrepo.GormHistoryRepository, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	if err := gormDB.AutoMigrate(&historyrepo.DeliveredOrderDTO{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history schema: %w", err)
	}

	return historyrepo.NewGormHistoryRepository(gormDB), nil
}

func (c *CompositionRoot) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateFetchOrdersCommandHandler() commands.FetchOrdersCommandHandler {
	return commands.NewFetchOrdersCommandHandler(c.client, c.store)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.client, c.store)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.client, c.store)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.client, c.store, c.archiver)
}

func (c *CompositionRoot) CreateAddNewOrderCommandHandler() commands.AddNewOrderCommandHandler {
	return commands.NewAddNewOrderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetCompletedOrdersQueryHandler() queries.GetCompletedOrdersQueryHandler {
	return queries.NewGetCompletedOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOperationStateQueryHandler() queries.GetOperationStateQueryHandler {
	return queries.NewGetOperationStateQueryHandler(c.store)
}
