package initialize

import (
	"fmt"
	"net/http"
	"time"

	"coursehub/app/cache"
	"coursehub/app/controllers"
	"coursehub/app/db"
	jwtutil "coursehub/app/jwt"
	"coursehub/app/middleware"
	"coursehub/app/models"
	"coursehub/app/repo"
	"coursehub/app/services"
	"coursehub/config"
	"coursehub/global"
	"coursehub/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler

	Auth        *services.AuthService
	Courses     *services.CourseService
	Enrollments *services.EnrollmentService
	Assessments *services.AssessmentService
	Payments    *services.PaymentService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = *cfg

	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
		Path:     cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(
		&models.User{}, &models.Counter{}, &models.Course{},
		&models.Enrollment{}, &models.Assessment{}, &models.Submission{},
		&models.Payment{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var courseCache *cache.CourseCache
	if cfg.Redis.Enabled {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		courseCache = cache.NewCourseCache(global.Rdb, time.Duration(cfg.Redis.CacheTTLSec)*time.Second)
	}

	// Repositories
	users := repo.NewUserRepository(gdb)
	counters := repo.NewCounterRepository(gdb)
	courses := repo.NewCourseRepository(gdb)
	enrollments := repo.NewEnrollmentRepository(gdb)
	assessments := repo.NewAssessmentRepository(gdb)
	submissions := repo.NewSubmissionRepository(gdb)
	payments := repo.NewPaymentRepository(gdb)

	// Services
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	authSvc := services.NewAuthService(users, counters, signer)
	courseSvc := services.NewCourseService(courses, counters, courseCache)
	enrollSvc := services.NewEnrollmentService(enrollments, courses, counters)
	assessSvc := services.NewAssessmentService(assessments, submissions, counters)
	paySvc := services.NewPaymentService(payments, courses, counters)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	courseCtrl := controllers.NewCourseController(courseSvc)
	enrollCtrl := controllers.NewEnrollmentController(enrollSvc)
	assessCtrl := controllers.NewAssessmentController(assessSvc)
	payCtrl := controllers.NewPaymentController(paySvc)

	mw := &middleware.Auth{Signer: signer, Users: authSvc}
	h := router.NewRouter(authCtrl, courseCtrl, enrollCtrl, assessCtrl, payCtrl, mw)
	h = middleware.Logging(h)

	return &App{
		Cfg:    cfg,
		DB:     gdb,
		Router: h,

		Auth:        authSvc,
		Courses:     courseSvc,
		Enrollments: enrollSvc,
		Assessments: assessSvc,
		Payments:    paySvc,
	}, nil
}
