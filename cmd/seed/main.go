package main

import (
	"fmt"
	"os"

	"github.com/dujiao-next/estore/internal/config"
	"github.com/dujiao-next/estore/internal/logger"
	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/seed"

	"github.com/spf13/cobra"
)

var (
	adminUsername string
	adminPassword string
	adminSuper    bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "写入演示数据或初始化管理员",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
		if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
			MaxOpenConns: cfg.Database.Pool.MaxOpenConns,
			MaxIdleConns: cfg.Database.Pool.MaxIdleConns,
		}); err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		return models.AutoMigrate()
	},
	SilenceUsage: true,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "写入演示分类与商品（按 slug/sku 幂等）",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := seed.Catalog(models.DB)
		if err != nil {
			return err
		}
		cmd.Printf("catalog seeded: created=%d skipped=%d\n", result.Created, result.Skipped)
		return nil
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "创建管理员账号",
	RunE: func(cmd *cobra.Command, args []string) error {
		password := adminPassword
		if password == "" {
			password = os.Getenv("ESTORE_DEFAULT_ADMIN_PASSWORD")
		}
		created, err := seed.Admin(models.DB, adminUsername, password, adminSuper)
		if err != nil {
			return err
		}
		if created {
			cmd.Printf("admin %s created\n", adminUsername)
		} else {
			cmd.Printf("admin %s already exists\n", adminUsername)
		}
		return nil
	},
}

func init() {
	adminCmd.Flags().StringVar(&adminUsername, "username", "admin", "管理员账号")
	adminCmd.Flags().StringVar(&adminPassword, "password", "", "管理员密码，留空读取 ESTORE_DEFAULT_ADMIN_PASSWORD")
	adminCmd.Flags().BoolVar(&adminSuper, "super", true, "是否为超级管理员")
	rootCmd.AddCommand(catalogCmd, adminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
