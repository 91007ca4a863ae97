package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/hr-management/api"
	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/access"
	accessPostgres "github.com/frahmantamala/hr-management/internal/access/postgres"
	"github.com/frahmantamala/hr-management/internal/analytics"
	analyticsPostgres "github.com/frahmantamala/hr-management/internal/analytics/postgres"
	"github.com/frahmantamala/hr-management/internal/attendance"
	attendanceMongo "github.com/frahmantamala/hr-management/internal/attendance/mongodb"
	"github.com/frahmantamala/hr-management/internal/auth"
	authPostgres "github.com/frahmantamala/hr-management/internal/auth/postgres"
	"github.com/frahmantamala/hr-management/internal/cache"
	"github.com/frahmantamala/hr-management/internal/catalog"
	catalogPostgres "github.com/frahmantamala/hr-management/internal/catalog/postgres"
	"github.com/frahmantamala/hr-management/internal/contract"
	contractPostgres "github.com/frahmantamala/hr-management/internal/contract/postgres"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/core/events"
	"github.com/frahmantamala/hr-management/internal/department"
	departmentPostgres "github.com/frahmantamala/hr-management/internal/department/postgres"
	"github.com/frahmantamala/hr-management/internal/employee"
	employeePostgres "github.com/frahmantamala/hr-management/internal/employee/postgres"
	"github.com/frahmantamala/hr-management/internal/extrahours"
	extrahoursMongo "github.com/frahmantamala/hr-management/internal/extrahours/mongodb"
	"github.com/frahmantamala/hr-management/internal/leave"
	leavePostgres "github.com/frahmantamala/hr-management/internal/leave/postgres"
	"github.com/frahmantamala/hr-management/internal/payroll"
	payrollPostgres "github.com/frahmantamala/hr-management/internal/payroll/postgres"
	"github.com/frahmantamala/hr-management/internal/role"
	rolePostgres "github.com/frahmantamala/hr-management/internal/role/postgres"
	"github.com/frahmantamala/hr-management/internal/schedule"
	scheduleMongo "github.com/frahmantamala/hr-management/internal/schedule/mongodb"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/frahmantamala/hr-management/internal/transport/rest"
	"github.com/frahmantamala/hr-management/internal/transport/swagger"
	"github.com/frahmantamala/hr-management/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	Stores *stores
	Cache  *cache.PermissionCache
	Bus    *events.EventBus
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		deps.Bus.Wait()
		if err := deps.Cache.Close(); err != nil {
			deps.Logger.Error("Cache close error", "error", err)
		}
		if err := deps.Stores.Close(ctx); err != nil {
			deps.Logger.Error("Store close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func initializeDependencies(ctx context.Context) (*Dependencies, error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	lg := logger.Init(config.AppEnv, config.Logging.Level)

	if _, err := swagger.Load(ctx, api.OpenAPI); err != nil {
		return nil, err
	}

	st, err := openStores(ctx, config, lg)
	if err != nil {
		return nil, err
	}

	permCache := cache.NewPermissionCache(ctx, cache.Options{
		Addr:       config.Redis.Addr,
		Password:   config.Redis.Password,
		DB:         config.Redis.DB,
		TTLSeconds: config.Redis.PermissionTTL,
	}, lg)
	bus := events.NewEventBus(lg)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, buildHandlers(config, st, permCache, bus, lg), config.Server.AllowedOrigins, lg)

	return &Dependencies{
		Config: config,
		Stores: st,
		Cache:  permCache,
		Bus:    bus,
		Router: router,
		Logger: lg,
	}, nil
}

func buildHandlers(cfg *internal.Config, st *stores, permCache *cache.PermissionCache, bus *events.EventBus, lg *slog.Logger) rest.Handlers {
	base := transport.NewBaseHandler(lg)

	authRepo := authPostgres.NewAuthRepository(st.Gorm)
	resolver := auth.NewPermissionResolver(authRepo, permCache, lg)
	resolver.Subscribe(bus)
	tokens := auth.NewJWTTokenGenerator(cfg.Security.JWTSecret, cfg.Security.RefreshSecret, cfg.Security.AccessTokenDuration, cfg.Security.RefreshTokenDuration)
	authService := auth.NewService(authRepo, tokens, resolver, lg)

	employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(st.Gorm), bus, cfg.Security.BCryptCost, lg)

	return rest.Handlers{
		Health: rest.NewHealthHandler(map[string]rest.Pinger{
			"postgres": st.SQL,
			"mongo": rest.PingFunc(func(ctx context.Context) error {
				return st.Mongo.Client().Ping(ctx, nil)
			}),
		}),
		Auth: auth.NewHandler(base, authService),
		Gate: auth.NewGate(resolver, cfg.Security.PermissionBypass, lg),
		Catalogs: []rest.CatalogRoutes{
			catalogHandler[hr.ContractType, catalog.ContractTypeDTO](st.Gorm, catalog.ContractTypes, base, lg),
			catalogHandler[hr.ContractState, catalog.ContractStateDTO](st.Gorm, catalog.ContractStates, base, lg),
			catalogHandler[hr.CertificateType, catalog.CertificateTypeDTO](st.Gorm, catalog.CertificateTypes, base, lg),
			catalogHandler[hr.PaymentMethod, catalog.PaymentMethodDTO](st.Gorm, catalog.PaymentMethods, base, lg),
			catalogHandler[hr.TrainingType, catalog.TrainingTypeDTO](st.Gorm, catalog.TrainingTypes, base, lg),
			catalogHandler[hr.BenefitType, catalog.BenefitTypeDTO](st.Gorm, catalog.BenefitTypes, base, lg),
			catalogHandler[hr.LeaveType, catalog.LeaveTypeDTO](st.Gorm, catalog.LeaveTypes, base, lg),
		},
		Departments: department.NewHandler(base, department.NewService(departmentPostgres.NewDepartmentRepository(st.Gorm), lg)),
		Roles:       role.NewHandler(base, role.NewService(rolePostgres.NewRoleRepository(st.Gorm), lg)),
		Employees:   employee.NewHandler(base, employeeService, authService),
		Contracts:   contract.NewHandler(base, contract.NewService(contractPostgres.NewContractRepository(st.Gorm), lg)),
		Payroll:     payroll.NewHandler(base, payroll.NewService(payrollPostgres.NewPayrollRepository(st.Gorm), lg)),
		Leave:       leave.NewHandler(base, leave.NewService(leavePostgres.NewLeaveRepository(st.Gorm), lg)),
		Access:      access.NewHandler(base, access.NewService(accessPostgres.NewAccessRepository(st.Gorm), bus, lg)),
		Analytics:   analytics.NewHandler(base, analytics.NewService(analyticsPostgres.NewAnalyticsRepository(st.SQL), lg)),
		Attendance: attendance.NewHandler(base, attendance.NewService(
			attendanceMongo.NewAttendanceRepository(st.Mongo), cfg.Attendance.CheckinDedupWindow, lg)),
		Schedules:  schedule.NewHandler(base, schedule.NewService(scheduleMongo.NewScheduleRepository(st.Mongo), lg)),
		ExtraHours: extrahours.NewHandler(base, extrahours.NewService(extrahoursMongo.NewExtraHoursRepository(st.Mongo), lg)),
		OpenAPI:    api.OpenAPI,
	}
}

func catalogHandler[T any, D catalog.Payload[T]](db *gorm.DB, def catalog.Definition, base *transport.BaseHandler, lg *slog.Logger) rest.CatalogRoutes {
	repo := catalogPostgres.NewCatalogRepository[T](db, def)
	return catalog.NewHandler[T, D](base, catalog.NewService[T, D](def, repo, lg))
}
