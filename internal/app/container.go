package app

import (
	"context"
	"log"
	"time"

	"member-profile/internal/config"
	"member-profile/internal/database"
	"member-profile/internal/database/migration"
	dbpostgres "member-profile/internal/database/postgres"
	"member-profile/internal/infrastructure/cache"
	"member-profile/internal/infrastructure/jobs"
	"member-profile/internal/infrastructure/proxycurl"
	"member-profile/internal/repository"
	"member-profile/internal/usecase"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Queue  *jobs.RedisQueue

	Members     repository.MemberRepository
	Companies   repository.CompanyRepository
	Experiences repository.WorkExperienceRepository

	Profiles        usecase.ProfileUsecase
	WorkExperiences usecase.WorkExperienceUsecase

	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migration.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	queue := jobs.NewRedisQueue(redisCache.Client(), cfg.Redis.JobStream, logger)

	client := proxycurl.NewClient(cfg.Proxycurl, logger)

	members := repository.NewPostgresMemberRepository(db)
	companies := repository.NewPostgresCompanyRepository(db)
	experiences := repository.NewPostgresWorkExperienceRepository(db)

	profiles := usecase.NewProfileUsecase(redisCache, members, client, logger)
	resolver := usecase.NewCompanyResolver(companies, redisCache, client, logger)
	workExperiences := usecase.NewWorkExperienceUsecase(db, profiles, resolver, experiences, queue, logger)

	return &Container{
		Config:          cfg,
		DB:              db,
		Cache:           redisCache,
		Queue:           queue,
		Members:         members,
		Companies:       companies,
		Experiences:     experiences,
		Profiles:        profiles,
		WorkExperiences: workExperiences,
		Logger:          logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
