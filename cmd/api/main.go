package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"arogya-ai/internal/config"
	"arogya-ai/internal/db"
	apihttp "arogya-ai/internal/http"
	"arogya-ai/internal/llm"
	"arogya-ai/internal/random"
	"arogya-ai/internal/repository"
	"arogya-ai/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	store, closeStore, err := db.NewKVStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("kv store", zap.Error(err))
	}
	defer closeStore()

	conditions, err := loadConditions(cfg)
	if err != nil {
		logger.Fatal("condition table", zap.Error(err))
	}

	reportCatalog, err := service.DefaultReportCatalog()
	if err != nil {
		logger.Fatal("report catalog", zap.Error(err))
	}
	doctors, err := service.DefaultDoctorDirectory()
	if err != nil {
		logger.Fatal("doctor directory", zap.Error(err))
	}

	rnd := random.New(cfg.RandomSeed)
	modelSvc := llm.NewSimulatedService(
		cfg.ModelVersion,
		cfg.ModelFailureRate,
		time.Duration(cfg.ModelLatencyMinMS)*time.Millisecond,
		time.Duration(cfg.ModelLatencyMaxMS)*time.Millisecond,
		rnd,
		logger,
	)

	wellnessRepo := repository.NewKVWellnessRepository(store)
	moodAnalyzer := service.NewMoodAnalyzer()
	symptomSvc := service.NewSymptomService(modelSvc, conditions, logger)
	dietSvc := service.NewDietService(rnd, logger)
	companionSvc := service.NewCompanionService(moodAnalyzer, rnd, logger)
	wellnessSvc := service.NewWellnessService(wellnessRepo, rnd, logger)
	reportSvc := service.NewReportService(modelSvc, reportCatalog, rnd, logger)
	prescriptionSvc := service.NewPrescriptionService(modelSvc, rnd, logger)
	appointmentSvc := service.NewAppointmentService(wellnessRepo, doctors, logger)

	var (
		limiter     service.RateLimiter
		tokenStore  service.SessionStore
		redisClient *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, 10*time.Minute, 5)
			tokenStore = service.NewRedisSessionStore(redisClient)
		}
		cancel()
	}
	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	userSvc := service.NewUserService(logger, wellnessRepo, jwtSvc, limiter)
	router := apihttp.NewRouter(
		logger,
		jwtSvc,
		apihttp.NewUserHandler(logger, userSvc),
		apihttp.NewAnalysisHandler(logger, moodAnalyzer, symptomSvc, dietSvc, companionSvc, wellnessSvc, modelSvc),
		apihttp.NewWellnessHandler(logger, wellnessSvc, moodAnalyzer),
		apihttp.NewClinicHandler(logger, reportSvc, prescriptionSvc, doctors, appointmentSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("store", cfg.StoreDriver))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

// loadConditions usa CONDITIONS_FILE si está definido y la tabla embebida en otro caso.
func loadConditions(cfg *config.Config) (*service.ConditionTable, error) {
	if cfg.ConditionsFile != "" {
		return service.LoadConditionFile(cfg.ConditionsFile)
	}
	return service.DefaultConditionTable()
}
