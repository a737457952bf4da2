package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"book-management/internal/config"
	"book-management/internal/infrastructure/database"
	"book-management/internal/shared/i18n"
	txdb "book-management/pkg/database"
	"book-management/pkg/logger"

	authorHandler "book-management/internal/domains/author/handler"
	authorRepo "book-management/internal/domains/author/repository"
	authorService "book-management/internal/domains/author/service"
	bookHandler "book-management/internal/domains/book/handler"
	bookRepo "book-management/internal/domains/book/repository"
	bookService "book-management/internal/domains/book/service"
)

// Database is the lifecycle shared by the pgx pool and the database/sql handle.
type Database interface {
	HealthCheck(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close() error
}

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application.
// Thứ tự initialization: Config -> Database -> Repositories -> Services -> Handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         Database
	TxManager  txdb.TxManager
	Translator *i18n.Translator

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// NewContainer connects to the database selected by cfg.Database.Driver and builds the
// dependency graph on top of it.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Str("driver", cfg.Database.Driver).Msg("Initializing DI container")

	c := &Container{Config: cfg}

	translator, err := i18n.New(cfg.App.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("failed to init translator: %w", err)
	}
	c.Translator = translator

	// ========================================
	// STEP 1: DATABASE + REPOSITORIES
	// ========================================
	if err := c.initStorage(ctx); err != nil {
		return nil, err
	}

	if err := c.DB.HealthCheck(ctx); err != nil {
		_ = c.DB.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	// ========================================
	// STEP 2: SERVICES
	// ========================================
	c.initServices()

	// ========================================
	// STEP 3: HANDLERS
	// ========================================
	c.initHandlers()

	log.Info().Msg("DI container initialized")
	return c, nil
}

// OpenDatabase connects to the database selected by cfg without building the rest of the graph.
func OpenDatabase(ctx context.Context, cfg *config.Config) (Database, error) {
	c := &Container{Config: cfg}
	if err := c.initStorage(ctx); err != nil {
		return nil, err
	}
	return c.DB, nil
}

// initStorage opens the database and picks the repository implementations matching the driver:
// pgx gets the native pool, postgres and sqlite3 go through database/sql.
func (c *Container) initStorage(ctx context.Context) error {
	dbCfg := c.Config.Database

	switch dbCfg.Driver {
	case config.DriverPgx:
		db := database.NewPostgresDB(dbCfg.PostgresConfig())
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
		c.TxManager = txdb.NewPgxTxManager(db.Pool)
		c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
		c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)

	case config.DriverPostgres, config.DriverSQLite:
		var (
			db  *database.SQLDB
			err error
		)
		if dbCfg.Driver == config.DriverSQLite {
			db, err = database.OpenSQLite(ctx, dbCfg.SQLitePath)
		} else {
			db, err = database.OpenPostgres(ctx, dbCfg.PostgresConfig())
		}
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
		c.TxManager = txdb.NewSQLXTxManager(db.DB)
		c.AuthorRepo = authorRepo.NewSQLRepository(db.DB)
		c.BookRepo = bookRepo.NewSQLRepository(db.DB)

	default:
		return fmt.Errorf("unsupported database driver %q", dbCfg.Driver)
	}

	logger.Info("Database connected", map[string]interface{}{"driver": dbCfg.Driver})
	return nil
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.TxManager)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, c.TxManager)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

// HealthCheck reports whether the database answers.
func (c *Container) HealthCheck(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("database is not initialized")
	}
	return c.DB.HealthCheck(ctx)
}

// Cleanup releases resources held by the container.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("Failed to close database", err)
		}
	}
}
