package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"reflect"
	"strings"

	careers_api "github.com/agricom-careers/careers-api/pkg/careers_api"
	"github.com/agricom-careers/careers-api/pkg/careers_api/config"
	"github.com/agricom-careers/careers-api/pkg/careers_api/database"
	"github.com/agricom-careers/careers-api/pkg/careers_api/handler"
	"github.com/agricom-careers/careers-api/pkg/careers_api/helpers/problem"
	"github.com/agricom-careers/careers-api/pkg/careers_api/middleware"
	"github.com/agricom-careers/careers-api/pkg/careers_api/models"
	"github.com/agricom-careers/careers-api/pkg/careers_api/repositories"
	"github.com/agricom-careers/careers-api/pkg/careers_api/services"
	"github.com/agricom-careers/careers-api/pkg/jobs"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/loopfz/gadgeto/tonic"
)

const apiVersion = "1.0.0"

func invalidParamsFromBinding(err error, sample any) []problem.InvalidParam {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []problem.InvalidParam{{Name: "body", Reason: err.Error()}}
	}

	t := reflect.TypeOf(sample)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	out := make([]problem.InvalidParam, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		// StructField -> json tag
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
				name = strings.Split(tag, ",")[0]
			}
		}
		out = append(out, problem.InvalidParam{
			Name:   name,
			Reason: humanReason(fe),
		})
	}
	return out
}

func humanReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return fe.Error()
	}
}

func init() {
	tonic.SetErrorHook(func(c *gin.Context, err error) (int, interface{}) {
		// 1) Bind/validate errors → 400 with field-level details
		var be tonic.BindError
		if errors.As(err, &be) || isValidationErr(err) {
			invalids := invalidParamsFromBinding(err, models.UpdateStatusInput{})
			apiErr := problem.NewBadRequest("Invalid input", invalids...)
			return apiErr.Status, apiErr
		}

		// 2) Our own APIError → pass-through
		if apiErr, ok := err.(problem.APIError); ok {
			return apiErr.Status, apiErr
		}

		// 3) Everything else → generic 500; the real cause is logged, never
		// sent to the client.
		log.Printf("[ERROR] unhandled: %v", err)
		internal := problem.NewInternalServerError("Internal server error")
		return internal.Status, internal
	})
}

func isValidationErr(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg.DSN(), database.PoolConfig{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		ConnMaxIdle:  cfg.DBConnMaxIdle,
	})
	if err != nil {
		log.Printf("[WARN] no database connection: %v", err)
		log.Println("[INFO] API starts without database functionality")
	}

	reconciler := database.NewReconciler(db)
	if db != nil {
		if err := reconciler.Reconcile(context.Background()); err != nil {
			log.Printf("[WARN] schema reconciliation failed: %v", err)
		}
		jobs.ScheduleNightlyReconcile(context.Background(), reconciler)
	}

	repo := repositories.NewApplicationRepository(db)
	svc := services.NewApplicationService(repo, reconciler)
	controller := handler.NewApplicationsAPIController(svc, reconciler)
	controller.Port = cfg.HTTPPort

	router := careers_api.NewRouter(apiVersion, careers_api.RouterConfig{
		Admin: middleware.AdminCredentials{
			Login:    cfg.AdminLogin,
			Password: cfg.AdminPassword,
		},
		AuthFailureLimit:  cfg.AuthFailureLimit,
		AuthFailureWindow: cfg.AuthFailureWindow,
		CORSAllowOrigins:  cfg.CORSAllowOrigins,
	}, controller)

	log.Println("Server is running on port " + cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, router))
}
