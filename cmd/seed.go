package cmd

import (
	"context"
	"fmt"

	attendanceMongo "github.com/frahmantamala/hr-management/internal/attendance/mongodb"
	scheduleMongo "github.com/frahmantamala/hr-management/internal/schedule/mongodb"
	"github.com/frahmantamala/hr-management/internal/seed"
	"github.com/frahmantamala/hr-management/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	seedQuantity int
	seederName   string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the stores with reference data and sample records",
	Long:  `Run every seeder in order, or only the one named by --seeder. Quantity is clamped to 10..10000.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withRunner(cmd.Context(), func(ctx context.Context, r *seed.Runner) error {
			return r.Seed(ctx, seedQuantity, seederName)
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Purge the rows the seeders own",
	Long:  `Run every seeder in reverse order and delete what it created, or only the one named by --seeder.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withRunner(cmd.Context(), func(ctx context.Context, r *seed.Runner) error {
			return r.Purge(ctx, seederName)
		})
	},
}

func init() {
	seedCmd.Flags().IntVarP(&seedQuantity, "quantity", "q", seed.DefaultQuantity, "records per populating seeder")
	seedCmd.Flags().StringVarP(&seederName, "seeder", "s", "", "run only this seeder")
	deleteCmd.Flags().StringVarP(&seederName, "seeder", "s", "", "purge only this seeder")
}

func withRunner(ctx context.Context, fn func(context.Context, *seed.Runner) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	lg := logger.Init(cfg.AppEnv, cfg.Logging.Level)

	st, err := openStores(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	runner := seed.Default(seed.Env{
		DB:         st.Gorm,
		Attendance: attendanceMongo.NewAttendanceRepository(st.Mongo),
		Schedules:  scheduleMongo.NewScheduleRepository(st.Mongo),
		BCryptCost: cfg.Security.BCryptCost,
		Logger:     lg,
	})
	if err := fn(ctx, runner); err != nil {
		return fmt.Errorf("%w (seeders: %v)", err, runner.Names())
	}
	return nil
}
