package main

import (
	"fmt"
	"os"

	"contactdesk/internal/cli"
	"contactdesk/internal/database"
	"contactdesk/pkg/factory"
)

func main() {
	appFactory, err := factory.NewFactory()
	if err != nil {
		fmt.Printf("Uygulama başlatılamadı: %v\n", err)
		os.Exit(1)
	}

	log := appFactory.GetLogger()
	cfg := appFactory.GetConfig()
	db := appFactory.GetDB()

	defer db.Close()

	log.Info("Uygulama başlatılıyor", map[string]interface{}{"env": cfg.AppEnv, "db": cfg.Database.Path})

	migrationService := database.NewMigrationService(db, log)
	if err := migrationService.RunMigrations(); err != nil {
		log.Fatal("Migrationlar uygulanamadı", map[string]interface{}{"error": err.Error()})
	}

	if err := database.SeedAdminUser(db, appFactory.GetPasswordHasher(), cfg.Seed, log); err != nil {
		log.Fatal("Başlangıç kullanıcısı oluşturulamadı", map[string]interface{}{"error": err.Error()})
	}

	app := cli.NewApp(
		appFactory.GetContactService(),
		appFactory.GetUserService(),
		appFactory.GetAuthService(),
		appFactory.GetStatisticsService(),
		appFactory.GetAuditLogService(),
		log,
		os.Stdin,
		os.Stdout,
	)

	if err := app.Run(); err != nil {
		log.Fatal("Uygulama hatayla sonlandı", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Uygulama kapatıldı", map[string]interface{}{})
}
