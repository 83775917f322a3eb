package cli

import (
	"fmt"

	"github.com/atelierhq/atelier/internal/core/repository"
	"github.com/atelierhq/atelier/internal/core/service"
	"github.com/atelierhq/atelier/internal/infrastructure/sqlite"
	"github.com/atelierhq/atelier/internal/infrastructure/storage"
	"github.com/atelierhq/atelier/internal/logging"
	"github.com/atelierhq/atelier/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	cfg        *config.Config
	logCleanup func()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "Atelier - small business back-office and marketing API",
	Long: `Atelier is the backend for a small service business: a client book,
a service history, a public price list and a marketing slideshow.

It provides:
- A public read API for prices, slides and uploaded assets
- An admin API for clients, services, prices, slides and a dashboard
- JWT authentication with an admin claim
- Local object storage for photos and slide images`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logCleanup, err = logging.Setup(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			logCleanup()
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/atelier/config.yml)")
}

// initServices wires the repositories and services behind the CLI commands
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	objects, err := storage.NewLocalStore(cfg.AssetsDir, cfg.BaseURL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize object store: %w", err)
	}

	store := sqlite.NewDocumentStore(db)

	userRepo := sqlite.NewUserRepository(db)
	clientRepo := sqlite.NewClientRepository(store)
	serviceRepo := sqlite.NewServiceRepository(store, objects)
	priceRepo := sqlite.NewPriceRepository(store, objects)
	slideRepo := sqlite.NewSlideRepository(store, objects)

	authService := service.NewAuthService(userRepo, cfg.JWTSecretKey, cfg.JWTAlgorithm)
	dashboardService := service.NewDashboardService(clientRepo, serviceRepo)

	return &Services{
		DB:               db,
		UserRepo:         userRepo,
		ClientRepo:       clientRepo,
		ServiceRepo:      serviceRepo,
		PriceRepo:        priceRepo,
		SlideRepo:        slideRepo,
		AuthService:      authService,
		DashboardService: dashboardService,
	}, nil
}

// Services holds all initialized repositories and services
type Services struct {
	DB               *sqlite.DB
	UserRepo         repository.UserRepository
	ClientRepo       repository.ClientRepository
	ServiceRepo      repository.ServiceRepository
	PriceRepo        repository.PriceRepository
	SlideRepo        repository.SlideRepository
	AuthService      *service.AuthService
	DashboardService *service.DashboardService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
