package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "scrapcar-backend/internal/adapter/http"
	"scrapcar-backend/internal/adapter/middleware"
	"scrapcar-backend/internal/adapter/repository/mysql"
	"scrapcar-backend/internal/config"
	"scrapcar-backend/internal/infrastructure/cache"
	"scrapcar-backend/internal/infrastructure/db"
	"scrapcar-backend/internal/infrastructure/registry"
	adminUC "scrapcar-backend/internal/usecase/admin"
	quoteUC "scrapcar-backend/internal/usecase/quote"
	reviewUC "scrapcar-backend/internal/usecase/review"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// DVLA lookups go through a redis memo so a registration is only
	// fetched upstream once per TTL.
	ves := registry.NewVESClient(cfg.DVLAAPIURL, cfg.DVLAAPIKey, time.Duration(cfg.DVLATimeoutSecs)*time.Second)
	lookups := registry.NewCached(ves, rdb, time.Duration(cfg.RegistryCacheTTLSecs)*time.Second)

	quotes := mysql.NewQuoteRepository(gdb)
	collections := mysql.NewCollectionRepository(gdb)
	quotas := mysql.NewQuotaRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	quoteSvc := quoteUC.NewUsecase(quotes, collections, lookups, tx, cfg.RatePerKg, cfg.DefaultChecks)
	reviewSvc := reviewUC.NewUsecase(quotes, tx)
	adminSvc := adminUC.NewUsecase(quotes, collections, quotas, tx)

	h := httpadp.NewHandler()
	qh := httpadp.NewQuoteHandler(quoteSvc)
	ah := httpadp.NewAdminHandler(adminSvc, reviewSvc)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	e.GET("/health", h.Health)

	// client surface, mutations deduplicated by Ax-* headers
	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	v1 := e.Group("/api/v1")
	v1.POST("/quotes", qh.SubmitQuote, idemp)
	v1.POST("/quotes/manual", qh.SubmitManualValuation, idemp)
	v1.GET("/quotes/:quote_id", qh.GetQuote)
	v1.POST("/quotes/:quote_id/confirm", qh.ConfirmQuote, idemp)
	v1.POST("/quotes/:quote_id/reject", qh.RejectQuote, idemp)

	// admin surface
	adm := v1.Group("/admin")
	adm.GET("/quotes", ah.ListQuotes)
	adm.POST("/quotes/:quote_id/review", ah.ReviewQuote)
	adm.POST("/quotes/:quote_id/collect", ah.MarkCollected)
	adm.DELETE("/quotes/:quote_id", ah.DeleteQuote)
	adm.POST("/users/:user_id/quota/refill", ah.RefillQuota)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
